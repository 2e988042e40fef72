package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List all projects with memories",
		Run:   runProjects,
	}

	RootCmd.AddCommand(cmd)
}

func runProjects(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	projects, err := s.ListProjects(cmd.Context())
	if err != nil {
		exitErr("projects", err)
	}

	if len(projects) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(projects, "", "  ")
	fmt.Println(string(b))
}
