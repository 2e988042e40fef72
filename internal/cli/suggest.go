package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/advisor"
	"github.com/rcliao/memkeep/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest memories to archive",
		Long:  "Score memories against the archival eligibility rules and print candidates with reasons.",
		Run:   runSuggest,
	}

	cmd.Flags().StringP("project", "p", "", "Project to analyze (default: all)")

	RootCmd.AddCommand(cmd)
}

func runSuggest(cmd *cobra.Command, args []string) {
	project, _ := cmd.Flags().GetString("project")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	memories, err := s.List(cmd.Context(), store.ListParams{Project: project, IncludeArchived: true})
	if err != nil {
		exitErr("suggest", err)
	}

	candidates := advisor.SuggestArchival(memories, time.Now().UTC())
	if len(candidates) == 0 {
		fmt.Println("[]")
		return
	}

	type row struct {
		ID         string `json:"id"`
		Project    string `json:"project"`
		Category   string `json:"category"`
		Importance int    `json:"importance"`
		Reason     string `json:"reason"`
	}
	rows := make([]row, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, row{
			ID:         c.Memory.ID,
			Project:    c.Memory.ProjectName,
			Category:   c.Memory.Category,
			Importance: c.Memory.Importance,
			Reason:     c.Reason,
		})
	}

	b, _ := json.MarshalIndent(rows, "", "  ")
	fmt.Println(string(b))
}
