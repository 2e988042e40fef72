package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/store"
	"github.com/rcliao/memkeep/internal/summarize"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summary <project>",
		Short: "Render a project digest",
		Long:  "Render the prioritized project digest: category summaries, recent highlights, most referenced.",
		Args:  cobra.ExactArgs(1),
		Run:   runSummary,
	}

	cmd.Flags().Bool("archived", false, "Include archived memories")

	RootCmd.AddCommand(cmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	archived, _ := cmd.Flags().GetBool("archived")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	memories, err := s.List(cmd.Context(), store.ListParams{
		Project:         args[0],
		IncludeArchived: archived,
	})
	if err != nil {
		exitErr("summary", err)
	}

	fmt.Println(summarize.New().CreateProjectSummary(memories, args[0]))
}
