package cli

import (
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool-call interface over stdio",
		Long: "Run the MCP server on stdin/stdout. Logs go to stderr so stdout\n" +
			"stays clean for the JSON-RPC stream.",
		Run: runServe,
	}

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	slog.SetDefault(cfg.NewLogger())

	srv, cleanup, err := server.New(cfg)
	if err != nil {
		exitErr("start server", err)
	}
	defer cleanup()

	slog.Info("memkeep serving on stdio", "db", cfg.DBPath, "version", server.Version)
	if err := mcpserver.ServeStdio(srv); err != nil {
		exitErr("serve", err)
	}
}
