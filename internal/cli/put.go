package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put [content]",
		Short: "Store a memory",
		Long:  "Store a memory. Content can be a positional arg or piped via stdin.",
		Run:   runPut,
	}

	cmd.Flags().StringP("project", "p", "", "Project name (default: configured default project)")
	cmd.Flags().StringP("category", "c", "general", "Category: architecture, setup, bug_fix, todo, pattern, command, general")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().IntP("importance", "i", 5, "Importance level (1-10)")

	RootCmd.AddCommand(cmd)
}

func runPut(cmd *cobra.Command, args []string) {
	project, _ := cmd.Flags().GetString("project")
	category, _ := cmd.Flags().GetString("category")
	tagsStr, _ := cmd.Flags().GetString("tags")
	importance, _ := cmd.Flags().GetInt("importance")

	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}
	if strings.TrimSpace(content) == "" {
		exitErr("put", fmt.Errorf("content is required (positional arg or stdin)"))
	}
	if importance < 1 || importance > 10 {
		exitErr("put", fmt.Errorf("importance must be between 1 and 10"))
	}

	var tags []string
	if tagsStr != "" {
		for _, t := range strings.Split(tagsStr, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	m, err := s.Create(cmd.Context(), store.CreateParams{
		Project:    project,
		Category:   category,
		Content:    strings.TrimSpace(content),
		Tags:       tags,
		Importance: importance,
	})
	if err != nil {
		exitErr("put", err)
	}

	b, _ := json.Marshal(m)
	fmt.Println(string(b))
}
