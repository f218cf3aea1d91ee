package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gomohr/internal/config"
	"github.com/alexiusacademia/gomohr/internal/diagram"
	"github.com/alexiusacademia/gomohr/internal/stress"
	"github.com/spf13/cobra"
)

var (
	reportFile        string
	reportShowDiagram bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full stress report from a scenario file",
	Long: `Run the full analysis for a scenario defined in a YAML file:
transformed stresses at the scenario angle, principal stresses, Mohr's
Circle geometry, and chart exports when output files are configured.

Any scenario value can be overridden through environment variables with
the GOMOHR__ prefix and __ as the level separator, e.g.:

  GOMOHR__ROTATION__THETA=45 gomohr report -f scenario.yaml

Use 'gomohr init' to generate a starter scenario file.

Examples:
  gomohr report --file scenario.yaml
  gomohr report -f scenario.yaml --diagram`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to scenario YAML file [required]")
	reportCmd.MarkFlagRequired("file")

	reportCmd.Flags().BoolVar(&reportShowDiagram, "diagram", false, "Show ASCII diagrams")
}

func runReport(cmd *cobra.Command, args []string) {
	sc, err := config.Load(reportFile)
	if err != nil {
		fmt.Printf("Error loading scenario: %v\n", err)
		return
	}

	s := sc.State()
	theta := sc.Rotation.Theta
	p := stress.Transform(s, theta)
	c := stress.Principal(s)
	curve := stress.SampleCurve(s, sc.Plot.Samples, sc.Plot.Start, sc.Plot.End)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PLANE STRESS REPORT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sc.Name != "" {
		fmt.Printf("  Scenario: %s\n", sc.Name)
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Normal Stress (σx):\t%.2f\n", s.SigmaX)
	fmt.Fprintf(w, "  Normal Stress (σy):\t%.2f\n", s.SigmaY)
	fmt.Fprintf(w, "  Shear Stress (τxy):\t%.2f\n", s.TauXY)
	fmt.Fprintf(w, "  Rotation Angle (θ):\t%.2f°\n", theta)
	fmt.Fprintf(w, "  Curve Samples:\t%d over [%.0f°, %.0f°]\n",
		sc.Plot.Samples, sc.Plot.Start, sc.Plot.End)
	w.Flush()
	fmt.Println()

	fmt.Println("ROTATED ELEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Normal Stress (σx'):\t%.2f\n", p.SigmaX1)
	fmt.Fprintf(w, "  Normal Stress (σy'):\t%.2f\n", p.SigmaY1)
	fmt.Fprintf(w, "  Shear Stress (τx'y'):\t%.2f\n", p.TauX1Y1)
	w.Flush()
	fmt.Println()

	fmt.Println("MOHR'S CIRCLE & PRINCIPAL STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Center (σavg):\t%.2f\n", c.Center)
	fmt.Fprintf(w, "  Radius (R):\t%.2f\n", c.Radius)
	fmt.Fprintf(w, "  Maximum (σ1):\t%.2f\n", c.Sigma1)
	fmt.Fprintf(w, "  Minimum (σ2):\t%.2f\n", c.Sigma2)
	fmt.Fprintf(w, "  Maximum Shear (τmax):\t%.2f\n", c.TauMax)
	fmt.Fprintf(w, "  Principal Plane (θp):\t%.2f°\n", c.ThetaPDeg)
	fmt.Fprintf(w, "  Max-Shear Plane (θs):\t%.2f°\n", c.ThetaSDeg)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox(
		fmt.Sprintf("CURRENT STATE (θ = %.1f°)", theta),
		[]string{
			fmt.Sprintf("σx'   = %.2f", p.SigmaX1),
			fmt.Sprintf("τx'y' = %.2f", p.TauX1Y1),
			fmt.Sprintf("σ1 = %.2f | σ2 = %.2f | τmax = %.2f", c.Sigma1, c.Sigma2, c.TauMax),
		}))
	fmt.Println()

	data := diagram.DiagramData{
		State:  s,
		Theta:  theta,
		Point:  p,
		Circle: c,
		Curve:  curve,
	}

	if reportShowDiagram {
		fmt.Print(diagram.DrawASCIICurve(data))
		fmt.Println()
		fmt.Print(diagram.DrawASCIIMohrCircle(data))
		fmt.Println()
	}

	if sc.Plot.CurveFile != "" {
		if err := diagram.ExportCurveDiagram(data, sc.Plot.CurveFile); err != nil {
			fmt.Printf("Error exporting curve chart: %v\n", err)
			return
		}
		fmt.Printf("  Curve chart exported to: %s\n", sc.Plot.CurveFile)
	}
	if sc.Plot.MohrFile != "" {
		if err := diagram.ExportMohrDiagram(data, sc.Plot.MohrFile); err != nil {
			fmt.Printf("Error exporting Mohr's Circle chart: %v\n", err)
			return
		}
		fmt.Printf("  Mohr's Circle chart exported to: %s\n", sc.Plot.MohrFile)
	}
	if sc.Plot.CurveFile != "" || sc.Plot.MohrFile != "" {
		fmt.Println()
	}
}
