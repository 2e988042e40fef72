package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/export"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import memories from an export file",
		Long: "Import a JSON export document. Merge mode (default) skips memories\n" +
			"that already exist; --replace wipes the database first.",
		Args: cobra.ExactArgs(1),
		Run:  runImport,
	}

	cmd.Flags().Bool("replace", false, "Clear the database before importing")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	replace, _ := cmd.Flags().GetBool("replace")

	doc, err := export.ReadFile(args[0])
	if err != nil {
		exitErr("import", err)
	}

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	mode := export.Merge
	if replace {
		mode = export.Replace
	}

	res, err := export.Import(cmd.Context(), s, doc, mode)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf("imported %d memories, skipped %d\n", res.Imported, res.Skipped)
}
