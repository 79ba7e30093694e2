package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/content"
)

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Report the structure signature of raw text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args)
		if err != nil {
			return err
		}
		sig := content.Detect(content.Normalize(raw))

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sig)
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Strip conversational and markdown artifacts from raw text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), content.Normalize(raw))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration with value provenance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(configCmd)
}
