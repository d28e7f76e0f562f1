package cmd

import (
	"os"

	"github.com/brogergvhs/teamx/internal/config"

	"github.com/spf13/cobra"
)

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available configs",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := config.ListConfigs()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(list))
		for _, c := range list {
			activeMark := ""
			if c.Active {
				activeMark = "yes"
			}
			rows = append(rows, []string{c.Label, c.Path, activeMark})
		}

		return writeTable(os.Stdout, []string{"Label", "Path", "Active"}, rows)
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
}
