package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a memory by ID",
		Long:  "Retrieve a memory by ID. Updates access bookkeeping like search.",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	m, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}
	if err := s.TouchAccess(cmd.Context(), []string{m.ID}); err != nil {
		exitErr("get", err)
	}
	m.AccessCount++

	b, _ := json.MarshalIndent(m, "", "  ")
	fmt.Println(string(b))
}
