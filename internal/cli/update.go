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
		Use:   "update <id>",
		Short: "Update a memory",
		Long:  "Update a memory's content, tags, or importance. Unset flags leave fields unchanged.",
		Args:  cobra.ExactArgs(1),
		Run:   runUpdate,
	}

	cmd.Flags().String("content", "", "New content")
	cmd.Flags().StringP("tags", "t", "", "New comma-separated tags")
	cmd.Flags().IntP("importance", "i", 0, "New importance level (1-10)")

	RootCmd.AddCommand(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	p := store.UpdateParams{ID: args[0]}

	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		if strings.TrimSpace(content) == "" {
			exitErr("update", fmt.Errorf("content cannot be empty"))
		}
		p.Content = &content
	}
	if cmd.Flags().Changed("tags") {
		tagsStr, _ := cmd.Flags().GetString("tags")
		tags := []string{}
		for _, t := range strings.Split(tagsStr, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		p.Tags = tags
	}
	if cmd.Flags().Changed("importance") {
		importance, _ := cmd.Flags().GetInt("importance")
		if importance < 1 || importance > 10 {
			exitErr("update", fmt.Errorf("importance must be between 1 and 10"))
		}
		p.Importance = &importance
	}

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	m, err := s.Update(cmd.Context(), p)
	if err != nil {
		exitErr("update", err)
	}

	b, _ := json.MarshalIndent(m, "", "  ")
	fmt.Println(string(b))
}
