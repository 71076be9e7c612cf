// Command kamasona runs the Kama Sona embodied-agent simulation: a
// single mind in a small 2D world, speaking Toki Pona.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "kamasona",
		Short: "Kama Sona - an embodied agent with a layered mind",
		Long: `kamasona simulates a single embodied agent whose mind is a layered
pipeline: Subconscious impulses, Superego norms, and an Ego arbiter
that speaks only grammatically valid Toki Pona.

The agent's mind state persists across runs; stop and restart to
resume the same agent.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newInspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("kamasona", version)
		},
	}
}
