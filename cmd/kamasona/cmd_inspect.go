package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/kama-sona/internal/config"
	"github.com/talgya/kama-sona/internal/engine"
	"github.com/talgya/kama-sona/internal/persistence"
)

func newInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the saved mind snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			db, err := persistence.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			if !db.HasMind() {
				return fmt.Errorf("no saved mind in %s", cfg.DBPath)
			}
			st, err := db.LoadMind()
			if err != nil {
				return fmt.Errorf("load mind: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}

			agentID, err := db.AgentID()
			if err != nil {
				return err
			}
			fmt.Printf("agent      %s\n", agentID)
			fmt.Printf("tick       %d (%s)\n", st.Tick, engine.SimTime(st.Tick))
			fmt.Printf("mood       %.3f\n", st.Mood)
			fmt.Printf("traits     %+v\n", st.Traits)
			fmt.Printf("baseline   %+v\n", st.Baseline)
			fmt.Printf("memories   %d\n", len(st.Experiences))
			fmt.Printf("norms      %d\n", len(st.Norms))
			for id, rule := range st.Norms {
				fmt.Printf("  %-30s weight %+.3f confidence %.3f (%d obs)\n",
					id, rule.Weight, rule.Confidence, rule.Observations)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
