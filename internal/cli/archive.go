package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	archiveCmd := &cobra.Command{
		Use:   "archive <id>...",
		Short: "Archive one or more memories",
		Long:  "Archive memories by id. Missing ids are skipped; the count reflects actual transitions.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runArchive,
	}
	archiveCmd.Flags().StringP("reason", "r", "", "Reason for archiving")
	RootCmd.AddCommand(archiveCmd)

	unarchiveCmd := &cobra.Command{
		Use:   "unarchive <id>...",
		Short: "Unarchive one or more memories",
		Args:  cobra.MinimumNArgs(1),
		Run:   runUnarchive,
	}
	RootCmd.AddCommand(unarchiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) {
	reason, _ := cmd.Flags().GetString("reason")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	archived, err := s.Archive(cmd.Context(), args, reason)
	if err != nil {
		exitErr("archive", err)
	}
	fmt.Printf(`{"ok":true,"archived":%d}`+"\n", len(archived))
}

func runUnarchive(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	unarchived, err := s.Unarchive(cmd.Context(), args)
	if err != nil {
		exitErr("unarchive", err)
	}
	fmt.Printf(`{"ok":true,"unarchived":%d}`+"\n", len(unarchived))
}
