package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gomohr/internal/diagram"
	"github.com/alexiusacademia/gomohr/internal/stress"
	"github.com/spf13/cobra"
)

var (
	// Transformation inputs
	transformSigmaX float64
	transformSigmaY float64
	transformTauXY  float64
	transformTheta  float64

	// Diagram options
	transformSamples     int
	transformShowDiagram bool
	transformExportFile  string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform a plane-stress state to a rotated element",
	Long: `Calculate the stresses (σx', σy', τx'y') on an element rotated by
an angle θ from the given plane-stress state.

The transformation uses the double-angle convention:
  σx'   = σavg + σdiff·cos(2θ) + τxy·sin(2θ)
  τx'y' = -σdiff·sin(2θ) + τxy·cos(2θ)

Examples:
  # Rotate the reference state by 67 degrees
  gomohr transform --sx -89 --sy 20 --txy 40 --theta 67

  # With a terminal plot of the full transformation curve
  gomohr transform --sx -89 --sy 20 --txy 40 --theta 67 --diagram

  # Export the curve chart to a file
  gomohr transform --sx -89 --sy 20 --txy 40 --theta 67 -o curve.png`,
	Run: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	// Stress state flags
	transformCmd.Flags().Float64Var(&transformSigmaX, "sx", 0, "Normal stress σx [required]")
	transformCmd.Flags().Float64Var(&transformSigmaY, "sy", 0, "Normal stress σy [required]")
	transformCmd.Flags().Float64Var(&transformTauXY, "txy", 0, "Shear stress τxy [required]")

	// Rotation flag
	transformCmd.Flags().Float64VarP(&transformTheta, "theta", "t", 0, "Rotation angle θ in degrees [required]")

	// Mark required flags
	transformCmd.MarkFlagRequired("sx")
	transformCmd.MarkFlagRequired("sy")
	transformCmd.MarkFlagRequired("txy")
	transformCmd.MarkFlagRequired("theta")

	// Diagram options
	transformCmd.Flags().IntVar(&transformSamples, "samples", stress.DefaultSamples, "Curve sample count")
	transformCmd.Flags().BoolVar(&transformShowDiagram, "diagram", false, "Show ASCII transformation curves")
	transformCmd.Flags().StringVarP(&transformExportFile, "output", "o", "", "Export curve chart to file (png, svg, pdf)")
}

func runTransform(cmd *cobra.Command, args []string) {
	s := stress.State{SigmaX: transformSigmaX, SigmaY: transformSigmaY, TauXY: transformTauXY}
	p := stress.Transform(s, transformTheta)
	c := stress.Principal(s)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PLANE STRESS TRANSFORMATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Normal Stress (σx):\t%.2f\n", s.SigmaX)
	fmt.Fprintf(w, "  Normal Stress (σy):\t%.2f\n", s.SigmaY)
	fmt.Fprintf(w, "  Shear Stress (τxy):\t%.2f\n", s.TauXY)
	fmt.Fprintf(w, "  Rotation Angle (θ):\t%.2f°\n", transformTheta)
	w.Flush()
	fmt.Println()

	fmt.Println("DERIVED QUANTITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Average Stress (σavg):\t%.2f\n", c.Center)
	fmt.Fprintf(w, "  Half Difference (σdiff):\t%.2f\n", (s.SigmaX-s.SigmaY)/2)
	fmt.Fprintf(w, "  Double Angle (2θ):\t%.2f°\n", 2*transformTheta)
	w.Flush()
	fmt.Println()

	fmt.Println("ROTATED ELEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Normal Stress (σx'):\t%.2f\n", p.SigmaX1)
	fmt.Fprintf(w, "  Normal Stress (σy'):\t%.2f\n", p.SigmaY1)
	fmt.Fprintf(w, "  Shear Stress (τx'y'):\t%.2f\n", p.TauX1Y1)
	fmt.Fprintf(w, "  Trace (σx'+σy'):\t%.2f\n", p.SigmaX1+p.SigmaY1)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox(
		fmt.Sprintf("CURRENT STATE (θ = %.1f°)", transformTheta),
		[]string{
			fmt.Sprintf("σx'   = %.2f", p.SigmaX1),
			fmt.Sprintf("τx'y' = %.2f", p.TauX1Y1),
		}))
	fmt.Println()

	if transformShowDiagram || transformExportFile != "" {
		data := diagram.DiagramData{
			State:  s,
			Theta:  transformTheta,
			Point:  p,
			Circle: c,
			Curve:  stress.SampleCurve(s, transformSamples, stress.DomainStartDeg, stress.DomainEndDeg),
		}

		if transformShowDiagram {
			fmt.Print(diagram.DrawASCIICurve(data))
			fmt.Println()
		}

		if transformExportFile != "" {
			if err := diagram.ExportCurveDiagram(data, transformExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
				return
			}
			fmt.Printf("  Curve chart exported to: %s\n", transformExportFile)
			fmt.Println()
		}
	}
}
