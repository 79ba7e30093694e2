package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

var (
	runsDomain string
	runsLimit  int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List catalogued extraction runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		var domain records.Domain
		if runsDomain != "" {
			var err error
			domain, err = records.ParseDomain(runsDomain)
			if err != nil {
				return err
			}
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(ctx, domain, runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no runs catalogued")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s  %4d records  %s\n",
				r.ID, r.Domain, r.RecordCount, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the records of one catalogued run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		run, err := s.GetRun(ctx, args[0])
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), run.Result)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog totals per domain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := s.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "runs: %d\nrecords: %d\n", st.Runs, st.Records)
		for _, d := range records.Domains {
			if n := st.Domains[d]; n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %d\n", d, n)
			}
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsDomain, "domain", "", "Only list runs for one domain")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum runs to list")
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
}
