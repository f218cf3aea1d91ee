package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomohr/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomohr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gomohr v%s\n", version.Version)
		fmt.Println("Plane Stress Transformation & Mohr's Circle Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
