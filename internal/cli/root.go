// Package cli wires the scorch commands: extraction and text inspection
// on stdin or files, the run catalog, and the MCP server.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/config"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/extract"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/store"
)

var (
	configPath string
	dbPath     string
	format     string
	maxItems   string
	vocabPath  string
	verbose    bool

	cfg config.ResolvedConfig
)

var rootCmd = &cobra.Command{
	Use:   "scorch",
	Short: "Turn unreliable generated text into typed production records",
	Long: `Scorch extracts typed film-production records (script elements,
storyboard shots, locations, props, wardrobe) from loosely structured
generated text. Extraction never fails: malformed input degrades through
pattern tiers down to plain chunking.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.ResolveConfig(config.ResolveOptions{
			ConfigPath:   configPath,
			CLIDBPath:    dbPath,
			CLIFormat:    format,
			CLIMaxItems:  maxItems,
			CLIVocabPath: vocabPath,
		})
		if err != nil {
			return fmt.Errorf("resolving config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file (default ~/.scorch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the run-catalog database")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Output format: text or json")
	rootCmd.PersistentFlags().StringVar(&maxItems, "max-items", "", "Cap on records surfaced per extraction (0 = unlimited)")
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocab", "", "Extra vocabulary YAML merged into the built-in tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func Execute() error {
	return rootCmd.Execute()
}

func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// newEngine builds the extraction engine with any configured vocabulary
// extensions.
func newEngine() *extract.Engine {
	return extract.NewEngine(
		extract.WithExtraColors(cfg.ExtraColors...),
		extract.WithExtraStyles(cfg.ExtraStyles...),
		extract.WithExtraClothing(cfg.ExtraClothing...),
	)
}

func newGovernor() *extract.Governor {
	return extract.NewGovernor(extract.GovernorConfig{
		MaxItems:           cfg.MaxItemsValue(),
		DropFormattingJunk: true,
	})
}

func openStore() (*store.Store, error) {
	return store.Open(cfg.DBPath.Value)
}

// readInput reads the positional file argument, or stdin when no file
// is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}
