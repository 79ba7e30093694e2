package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

var extractNoSave bool

var extractCmd = &cobra.Command{
	Use:   "extract <domain> [file]",
	Short: "Extract typed records from raw text (file or stdin)",
	Long: `Extract runs the engine for one domain (script, storyboard, location,
props) over the given file or stdin and prints the records. Every run is
catalogued in the database unless --no-save is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, err := records.ParseDomain(args[0])
		if err != nil {
			return err
		}
		raw, err := readInput(args[1:])
		if err != nil {
			return err
		}

		res := newGovernor().Apply(newEngine().Extract(domain, raw))
		logVerbose("extracted %d records from %d chars", res.Count(), len(raw))

		if !extractNoSave {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			run, err := s.SaveRun(ctx, raw, res)
			if err != nil {
				return fmt.Errorf("cataloging run: %w", err)
			}
			logVerbose("catalogued run %s", run.ID)
		}

		return printResult(cmd.OutOrStdout(), res)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractNoSave, "no-save", false, "Skip cataloging this run in the database")
	rootCmd.AddCommand(extractCmd)
}

func printResult(w io.Writer, res records.Result) error {
	if cfg.Format.Value == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, el := range res.Script {
		if el.Type == records.Dialogue {
			fmt.Fprintf(w, "%-14s %s: %s\n", el.Type, el.Character, el.Text)
		} else {
			fmt.Fprintf(w, "%-14s %s\n", el.Type, el.Text)
		}
	}
	for _, s := range res.Storyboard {
		fmt.Fprintf(w, "shot %d [%s, %s] %s\n", s.Number, s.ShotType, s.CameraAngle, s.Description)
	}
	for _, l := range res.Locations {
		fmt.Fprintf(w, "%s (%s)", l.Name, l.Type)
		if len(l.Scenes) > 0 {
			fmt.Fprintf(w, " scenes %v", l.Scenes)
		}
		if len(l.TimesOfDay) > 0 {
			fmt.Fprintf(w, " %v", l.TimesOfDay)
		}
		fmt.Fprintf(w, " permit: %s\n", l.Requirements.PermitStatus)
	}
	for _, p := range res.Props {
		fmt.Fprintf(w, "prop: %s x%d [%s, %s]", p.Name, p.Quantity, p.Category, p.Importance)
		if len(p.Scenes) > 0 {
			fmt.Fprintf(w, " scenes %v", p.Scenes)
		}
		fmt.Fprintln(w)
	}
	for _, wr := range res.Wardrobe {
		fmt.Fprintf(w, "wardrobe: %s for %s [%s, %s] pieces %v", wr.Outfit, wr.Character, wr.Color, wr.Style, wr.Pieces)
		if len(wr.Scenes) > 0 {
			fmt.Fprintf(w, " scenes %v", wr.Scenes)
		}
		fmt.Fprintln(w)
	}
	if res.Count() == 0 {
		fmt.Fprintln(w, "no records")
	}
	return nil
}
