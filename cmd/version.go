package cmd

import (
	"fmt"

	"github.com/brogergvhs/teamx/internal/providers/team1x1"

	"github.com/spf13/cobra"
)

var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the teamx version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("teamx version:", Version)
		fmt.Printf("source: %s (%s) %s\n", team1x1.SourceName, team1x1.Lang, team1x1.BaseURL)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
