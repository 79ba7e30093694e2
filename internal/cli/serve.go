package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/mcp"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction engine over MCP on stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		srv := mcp.NewServer(mcp.ServerConfig{
			Engine:   newEngine(),
			Governor: newGovernor(),
			Store:    s,
			Version:  Version,
		})

		fmt.Fprintf(os.Stderr, "scorch MCP server on stdio (db: %s)\n", cfg.DBPath.Value)
		return mcp.ServeStdio(srv)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
