package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func TestExtractCommandJSON(t *testing.T) {
	input := writeInput(t, "- Vintage typewriter, hero prop, scenes 1-3")
	dbFile := filepath.Join(t.TempDir(), "scorch.db")

	out := runCommand(t, "extract", "props", input,
		"--db", dbFile, "--format", "json", "--no-save=true")

	var res records.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if res.Domain != records.DomainProps || len(res.Props) != 1 {
		t.Errorf("result = %+v", res)
	}
	if res.Props[0].Importance != records.Hero {
		t.Errorf("Importance = %q, want hero", res.Props[0].Importance)
	}
}

func TestExtractThenRunsAndShow(t *testing.T) {
	input := writeInput(t, "Location 1: Coffee Shop\nScenes: 1-3")
	dbFile := filepath.Join(t.TempDir(), "scorch.db")

	runCommand(t, "extract", "location", input,
		"--db", dbFile, "--format", "text", "--no-save=false")

	list := runCommand(t, "runs", "--db", dbFile)
	if !strings.Contains(list, "location") || !strings.Contains(list, "1 records") {
		t.Fatalf("runs output = %q", list)
	}

	id := strings.Fields(list)[0]
	shown := runCommand(t, "show", id, "--db", dbFile)
	if !strings.Contains(shown, "Coffee Shop") {
		t.Errorf("show output = %q", shown)
	}
}

func TestDetectCommand(t *testing.T) {
	input := writeInput(t, "INT. OFFICE - DAY")
	out := runCommand(t, "detect", input, "--db", filepath.Join(t.TempDir(), "x.db"))

	var sig struct {
		HasScreenplayHeadings bool `json:"has_screenplay_headings"`
	}
	if err := json.Unmarshal([]byte(out), &sig); err != nil {
		t.Fatalf("decoding signature: %v\n%s", err, out)
	}
	if !sig.HasScreenplayHeadings {
		t.Errorf("signature = %s", out)
	}
}

func TestNormalizeCommand(t *testing.T) {
	input := writeInput(t, "Sure, here's the scene:\n**INT. LAB - NIGHT**")
	out := runCommand(t, "normalize", input, "--db", filepath.Join(t.TempDir(), "x.db"))
	if strings.TrimSpace(out) != "INT. LAB - NIGHT" {
		t.Errorf("normalized = %q", out)
	}
}

func TestUnknownDomainFails(t *testing.T) {
	rootCmd.SetArgs([]string{"extract", "screenplay", "--db", filepath.Join(t.TempDir(), "x.db")})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown domain")
	}
}
