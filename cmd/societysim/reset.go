package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/high-society/internal/config"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved game",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if !force {
				return fmt.Errorf("refusing to delete %s without --force", cfg.DBPath)
			}

			if err := os.Remove(cfg.DBPath); err != nil {
				if os.IsNotExist(err) {
					fmt.Println("No saved game to delete.")
					return nil
				}
				return err
			}
			fmt.Printf("Deleted %s\n", cfg.DBPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Actually delete the saved game")
	return cmd
}
