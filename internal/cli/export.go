package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/export"
	"github.com/rcliao/memkeep/internal/sanitize"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export memories as sanitized JSON",
		Long: "Export all memories to a JSON document with embedded secrets redacted.\n" +
			"The export is safe to sync across machines or version control.",
		Run: runExport,
	}

	cmd.Flags().StringP("project", "p", "", "Filter by project")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	project, _ := cmd.Flags().GetString("project")

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		path = fmt.Sprintf("memories_export_%s.json", time.Now().Format("20060102_150405"))
	}

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	exporter := export.NewExporter(s, sanitize.NewDefault(), cfg.DBPath)
	doc, err := exporter.WriteFile(cmd.Context(), project, path)
	if err != nil {
		exitErr("export", err)
	}

	fmt.Printf("exported %d memories to %s (%d secrets redacted)\n",
		doc.TotalMemories, path, doc.TotalRedactions)
}
