package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Archive old, unused memories",
		Long: "Automated archival pass over memories older than --days with importance\n" +
			"at or below --max-importance. Dry run by default; pass --apply to mutate.",
		Run: runCleanup,
	}

	cmd.Flags().StringP("project", "p", "", "Project to clean up (default: all)")
	cmd.Flags().Int("days", 180, "Archive memories older than this many days")
	cmd.Flags().Int("max-importance", 3, "Only archive memories with importance <= this value")
	cmd.Flags().Bool("apply", false, "Perform the archival instead of a dry run")

	RootCmd.AddCommand(cmd)
}

func runCleanup(cmd *cobra.Command, args []string) {
	project, _ := cmd.Flags().GetString("project")
	days, _ := cmd.Flags().GetInt("days")
	maxImportance, _ := cmd.Flags().GetInt("max-importance")
	apply, _ := cmd.Flags().GetBool("apply")

	if days <= 0 {
		exitErr("cleanup", fmt.Errorf("--days must be positive"))
	}

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	res, err := s.Cleanup(cmd.Context(), store.CleanupParams{
		Project:       project,
		DaysOld:       days,
		MaxImportance: maxImportance,
		DryRun:        !apply,
	})
	if err != nil {
		exitErr("cleanup", err)
	}

	now := time.Now().UTC()
	type row struct {
		ID          string `json:"id"`
		Project     string `json:"project"`
		Category    string `json:"category"`
		Importance  int    `json:"importance"`
		AccessCount int    `json:"access_count"`
		AgeDays     int    `json:"age_days"`
	}
	rows := make([]row, 0, len(res.Candidates))
	for _, m := range res.Candidates {
		rows = append(rows, row{
			ID:          m.ID,
			Project:     m.ProjectName,
			Category:    m.Category,
			Importance:  m.Importance,
			AccessCount: m.AccessCount,
			AgeDays:     m.AgeDays(now),
		})
	}

	out := map[string]any{
		"dry_run":    !apply,
		"performed":  res.Performed,
		"candidates": rows,
	}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
