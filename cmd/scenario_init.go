package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomohr/internal/config"
	"github.com/spf13/cobra"
)

var (
	initFile  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a starter scenario file",
	Long: `Write a scenario YAML file pre-filled with the reference example
state (σx=-89, σy=20, τxy=40 at θ=67°), ready to edit and feed to
'gomohr report'.

Examples:
  gomohr init
  gomohr init --file lab3.yaml`,
	Run: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFile, "file", "f", "scenario.yaml", "Output scenario file")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) {
	if err := config.WriteTemplate(initFile, initForce); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Scenario template written to %s\n", initFile)
	fmt.Printf("Run it with: gomohr report -f %s\n", initFile)
}
