package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/teamx/internal/config"

	"github.com/spf13/cobra"
)

var flagYes bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultPath := config.ConfigPathByLabel("Default")

		if _, err := os.Stat(defaultPath); err == nil {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", defaultPath)
			fmt.Println("Use `teamx config reset` to recreate it.")
			return nil
		}

		if !flagYes {
			fmt.Println("Default configuration:")
			config.DefaultConfig().Print()
			fmt.Println()

			reader := bufio.NewReader(os.Stdin)
			fmt.Printf("Create Default config at %s? [y/N]: ", defaultPath)
			resp, _ := reader.ReadString('\n')
			resp = strings.TrimSpace(strings.ToLower(resp))

			if resp != "y" && resp != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		path, err := config.InitDefaultConfig()
		if errors.Is(err, os.ErrExist) {
			fmt.Println("Configuration already exists at:", path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", path)
		fmt.Println("This config is now active (label: Default).")

		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "create without asking")
	configCmd.AddCommand(configInitCmd)
}
