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
	mohrSigmaX float64
	mohrSigmaY float64
	mohrTauXY  float64
	mohrTheta  float64

	mohrShowDiagram bool
	mohrExportFile  string
)

var mohrCmd = &cobra.Command{
	Use:   "mohr",
	Short: "Construct the Mohr's Circle for a plane-stress state",
	Long: `Construct the Mohr's Circle for a plane-stress state: center,
radius, principal points, the θ=0 reference face and (optionally) the
face rotated by θ.

On the circle a rotation of θ in the physical element appears as 2θ,
so the full circle corresponds to 180° of element rotation.

Examples:
  # Circle geometry with terminal sketch
  gomohr mohr --sx -89 --sy 20 --txy 40 --diagram

  # Mark the element rotated by 67° and export a chart
  gomohr mohr --sx -89 --sy 20 --txy 40 --theta 67 -o mohr.png`,
	Run: runMohr,
}

func init() {
	rootCmd.AddCommand(mohrCmd)

	mohrCmd.Flags().Float64Var(&mohrSigmaX, "sx", 0, "Normal stress σx [required]")
	mohrCmd.Flags().Float64Var(&mohrSigmaY, "sy", 0, "Normal stress σy [required]")
	mohrCmd.Flags().Float64Var(&mohrTauXY, "txy", 0, "Shear stress τxy [required]")
	mohrCmd.Flags().Float64VarP(&mohrTheta, "theta", "t", 0, "Rotation angle θ in degrees")

	mohrCmd.MarkFlagRequired("sx")
	mohrCmd.MarkFlagRequired("sy")
	mohrCmd.MarkFlagRequired("txy")

	mohrCmd.Flags().BoolVar(&mohrShowDiagram, "diagram", false, "Show ASCII Mohr's Circle sketch")
	mohrCmd.Flags().StringVarP(&mohrExportFile, "output", "o", "", "Export circle chart to file (png, svg, pdf)")
}

func runMohr(cmd *cobra.Command, args []string) {
	s := stress.State{SigmaX: mohrSigmaX, SigmaY: mohrSigmaY, TauXY: mohrTauXY}
	c := stress.Principal(s)
	p := stress.Transform(s, mohrTheta)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MOHR'S CIRCLE CONSTRUCTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Normal Stress (σx):\t%.2f\n", s.SigmaX)
	fmt.Fprintf(w, "  Normal Stress (σy):\t%.2f\n", s.SigmaY)
	fmt.Fprintf(w, "  Shear Stress (τxy):\t%.2f\n", s.TauXY)
	fmt.Fprintf(w, "  Rotation Angle (θ):\t%.2f°\n", mohrTheta)
	w.Flush()
	fmt.Println()

	fmt.Println("CIRCLE GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Center (σavg, 0):\t(%.2f, 0)\n", c.Center)
	fmt.Fprintf(w, "  Radius (R):\t%.2f\n", c.Radius)
	fmt.Fprintf(w, "  σ1 - σ2:\t%.2f (= 2R)\n", c.Sigma1-c.Sigma2)
	w.Flush()
	fmt.Println()

	fmt.Println("POINTS OF INTEREST:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Original Face (θ=0):\t(%.2f, %.2f)\n", s.SigmaX, s.TauXY)
	fmt.Fprintf(w, "  Rotated Face (θ=%.1f°):\t(%.2f, %.2f)\n", mohrTheta, p.SigmaX1, p.TauX1Y1)
	fmt.Fprintf(w, "  Principal (σ1):\t(%.2f, 0)\tat θp = %.2f°\n", c.Sigma1, c.ThetaPDeg)
	fmt.Fprintf(w, "  Principal (σ2):\t(%.2f, 0)\tat θp = %.2f°\n", c.Sigma2, c.ThetaPDeg+90)
	fmt.Fprintf(w, "  Max Shear:\t(%.2f, ±%.2f)\tat θs = %.2f°\n", c.Center, c.TauMax, c.ThetaSDeg)
	w.Flush()
	fmt.Println()

	data := diagram.DiagramData{
		State:  s,
		Theta:  mohrTheta,
		Point:  p,
		Circle: c,
	}

	if mohrShowDiagram {
		fmt.Print(diagram.DrawASCIIMohrCircle(data))
		fmt.Println()
	}

	if mohrExportFile != "" {
		if err := diagram.ExportMohrDiagram(data, mohrExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Mohr's Circle chart exported to: %s\n", mohrExportFile)
		fmt.Println()
	}
}
