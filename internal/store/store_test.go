package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scorch.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() records.Result {
	return records.Result{
		Domain: records.DomainProps,
		Props:  []records.Prop{records.NewProp("revolver"), records.NewProp("ashtray")},
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveRun(ctx, "- revolver\n- ashtray", sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if saved.ID == "" || saved.RecordCount != 2 {
		t.Fatalf("saved run incomplete: %+v", saved)
	}

	got, err := s.GetRun(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Domain != records.DomainProps {
		t.Errorf("Domain = %q", got.Domain)
	}
	if len(got.Result.Props) != 2 || got.Result.Props[0].Name != "revolver" {
		t.Errorf("result did not round-trip: %+v", got.Result)
	}
	if got.SourceExcerpt != "- revolver\n- ashtray" {
		t.Errorf("SourceExcerpt = %q", got.SourceExcerpt)
	}
}

func TestGetRunMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetRun(context.Background(), "no-such-id"); err == nil {
		t.Fatal("expected error for missing run")
	}
}

func TestListRunsNewestFirstWithDomainFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveRun(ctx, "first", sampleResult()); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	scriptRes := records.Result{
		Domain: records.DomainScript,
		Script: []records.ScriptElement{{Type: records.Action, Text: "She runs."}},
	}
	second, err := s.SaveRun(ctx, "second", scriptRes)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	all, err := s.ListRuns(ctx, "", 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d runs, want 2", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("newest run not first: %+v", all[0])
	}

	scripts, err := s.ListRuns(ctx, records.DomainScript, 10)
	if err != nil {
		t.Fatalf("ListRuns(script): %v", err)
	}
	if len(scripts) != 1 || scripts[0].Domain != records.DomainScript {
		t.Errorf("domain filter failed: %+v", scripts)
	}
}

func TestDeleteRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveRun(ctx, "text", sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.DeleteRun(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	if err := s.DeleteRun(ctx, saved.ID); err == nil {
		t.Fatal("expected error deleting twice")
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.SaveRun(ctx, "text", sampleResult()); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Runs != 3 || st.Records != 6 {
		t.Errorf("stats = %+v, want 3 runs, 6 records", st)
	}
	if st.Domains[records.DomainProps] != 3 {
		t.Errorf("domain count = %d, want 3", st.Domains[records.DomainProps])
	}
}

func TestSourceExcerptTruncated(t *testing.T) {
	s := openTestStore(t)
	long := make([]byte, maxSourceExcerpt*2)
	for i := range long {
		long[i] = 'x'
	}

	saved, err := s.SaveRun(context.Background(), string(long), sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if len(saved.SourceExcerpt) != maxSourceExcerpt {
		t.Errorf("excerpt length = %d, want %d", len(saved.SourceExcerpt), maxSourceExcerpt)
	}
	if saved.SourceChars != maxSourceExcerpt*2 {
		t.Errorf("SourceChars = %d, want %d", saved.SourceChars, maxSourceExcerpt*2)
	}
}

func TestSourceExcerptCutsAtRuneBoundary(t *testing.T) {
	s := openTestStore(t)
	// Three bytes per rune, so the byte limit lands mid-rune.
	long := strings.Repeat("傘", maxSourceExcerpt)

	saved, err := s.SaveRun(context.Background(), long, sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if !utf8.ValidString(saved.SourceExcerpt) {
		t.Errorf("excerpt is not valid UTF-8: %q...", saved.SourceExcerpt[:12])
	}
	if len(saved.SourceExcerpt) > maxSourceExcerpt {
		t.Errorf("excerpt length = %d, want at most %d", len(saved.SourceExcerpt), maxSourceExcerpt)
	}
}
