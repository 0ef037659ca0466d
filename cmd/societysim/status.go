package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/high-society/internal/config"
	"github.com/talgya/high-society/internal/persistence"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print a summary of the saved game",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			db, err := persistence.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if !db.HasState() {
				fmt.Println("No saved game. Start one with 'societysim run'.")
				return nil
			}

			saved, err := db.LoadState()
			if err != nil {
				return err
			}

			st := saved.Engine
			live := 0
			reserved := 0
			for _, ev := range st.Events {
				if ev.Attended {
					continue
				}
				live++
				if ev.Reserved {
					reserved++
				}
			}

			fmt.Printf("Game time: %s\n", saved.GameTime.Format("Mon, 02 Jan 2006 15:04"))
			fmt.Printf("Wealth: $%s\n", humanize.Comma(saved.Wealth))
			fmt.Printf("Social capital: %d  Networking level: %d\n", st.Capital, st.NetworkingLevel)
			fmt.Printf("Connections (%d):\n", len(st.Connections))
			for _, c := range st.Connections {
				unused := 0
				for _, b := range c.Benefits {
					if !b.Used {
						unused++
					}
				}
				fmt.Printf("  %-22s %-16s %-12s level %3d  %d unused benefit(s), last seen %s\n",
					c.Name, c.Category, c.Status, c.Level, unused,
					humanize.RelTime(c.LastInteraction, saved.GameTime, "ago", "from now"))
			}
			fmt.Printf("Events: %d live (%d reserved), %d attended\n",
				live, reserved, len(st.Events)-live)
			return nil
		},
	}
}
