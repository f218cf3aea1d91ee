package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gomohr/internal/version"
	"github.com/spf13/cobra"
)

// bannerWidth is the interior width of the banner box in display columns.
const bannerWidth = 59

// bannerLine frames text inside the banner box, padding by rune count so
// glyphs like © keep the right border aligned.
func bannerLine(text string) string {
	pad := bannerWidth - 3 - utf8.RuneCountInString(text)
	if pad < 0 {
		pad = 0
	}
	return "  ║   " + text + strings.Repeat(" ", pad) + "║"
}

var rootCmd = &cobra.Command{
	Use:   "gomohr",
	Short: "Plane Stress Transformation & Mohr's Circle Tool",
	Long: `gomohr - Go Mohr's Circle Calculator

A CLI tool for 2D plane-stress transformation and Mohr's Circle
construction, for mechanical and civil engineering coursework.

This tool helps engineers and students perform:
  - Stress transformation at any rotation angle
  - Principal stress and maximum shear calculation
  - Mohr's Circle construction and plotting
  - Transformation curve plotting over a full period

All calculations use the double-angle convention (period 180°).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Println(bannerLine(fmt.Sprintf("gomohr v%s", version.Version)))
		fmt.Println(bannerLine("Go Mohr's Circle Calculator"))
		fmt.Println(bannerLine(fmt.Sprintf("%s ©  %s", version.Author, version.Year)))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for 2D plane-stress transformation and")
		fmt.Println("  Mohr's Circle construction.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Transformed stresses (σx', σy', τx'y') at any angle")
		fmt.Println("    • Principal stresses, maximum shear and their planes")
		fmt.Println("    • Terminal diagrams and PNG/SVG/PDF chart export")
		fmt.Println("    • YAML scenario files with env overrides")
		fmt.Println()
		fmt.Println("  Use 'gomohr --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
