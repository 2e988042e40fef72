package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search memories",
		Long: "Search memories by keyword, ordered by importance then recency.\n" +
			"Returned memories have their access bookkeeping updated.",
		Run: runSearch,
	}

	cmd.Flags().StringP("project", "p", "", "Filter by project")
	cmd.Flags().StringP("category", "c", "", "Filter by category")
	cmd.Flags().IntP("limit", "l", 0, "Max results (default: configured search limit)")
	cmd.Flags().Bool("archived", false, "Include archived memories")
	cmd.Flags().Bool("no-touch", false, "Skip access bookkeeping")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	project, _ := cmd.Flags().GetString("project")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")
	archived, _ := cmd.Flags().GetBool("archived")
	noTouch, _ := cmd.Flags().GetBool("no-touch")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	memories, err := s.Search(cmd.Context(), store.SearchParams{
		Query:           strings.Join(args, " "),
		Project:         project,
		Category:        category,
		Limit:           limit,
		IncludeArchived: archived,
		Touch:           !noTouch,
	})
	if err != nil {
		exitErr("search", err)
	}

	if len(memories) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(memories, "", "  ")
	fmt.Println(string(b))
}
