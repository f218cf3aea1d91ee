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
	principalSigmaX float64
	principalSigmaY float64
	principalTauXY  float64
)

var principalCmd = &cobra.Command{
	Use:   "principal",
	Short: "Calculate principal stresses and maximum shear",
	Long: `Calculate the principal stresses (σ1, σ2), the maximum in-plane
shear stress (τmax), and the angles of the principal and maximum-shear
planes for a plane-stress state.

The principal stresses are the extreme normal stresses reachable by
rotating the element; they occur on planes of zero shear.

Examples:
  gomohr principal --sx -89 --sy 20 --txy 40`,
	Run: runPrincipal,
}

func init() {
	rootCmd.AddCommand(principalCmd)

	principalCmd.Flags().Float64Var(&principalSigmaX, "sx", 0, "Normal stress σx [required]")
	principalCmd.Flags().Float64Var(&principalSigmaY, "sy", 0, "Normal stress σy [required]")
	principalCmd.Flags().Float64Var(&principalTauXY, "txy", 0, "Shear stress τxy [required]")

	principalCmd.MarkFlagRequired("sx")
	principalCmd.MarkFlagRequired("sy")
	principalCmd.MarkFlagRequired("txy")
}

func runPrincipal(cmd *cobra.Command, args []string) {
	s := stress.State{SigmaX: principalSigmaX, SigmaY: principalSigmaY, TauXY: principalTauXY}
	c := stress.Principal(s)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PRINCIPAL STRESS ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Normal Stress (σx):\t%.2f\n", s.SigmaX)
	fmt.Fprintf(w, "  Normal Stress (σy):\t%.2f\n", s.SigmaY)
	fmt.Fprintf(w, "  Shear Stress (τxy):\t%.2f\n", s.TauXY)
	w.Flush()
	fmt.Println()

	fmt.Println("MOHR'S CIRCLE GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Center (σavg):\t%.2f\n", c.Center)
	fmt.Fprintf(w, "  Radius (R):\t%.2f\n", c.Radius)
	if c.Radius == 0 {
		fmt.Fprintf(w, "  Note:\thydrostatic state, circle degenerates to a point\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PRINCIPAL STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Maximum (σ1):\t%.2f\n", c.Sigma1)
	fmt.Fprintf(w, "  Minimum (σ2):\t%.2f\n", c.Sigma2)
	fmt.Fprintf(w, "  Maximum Shear (τmax):\t%.2f\n", c.TauMax)
	fmt.Fprintf(w, "  Principal Plane (θp):\t%.2f°\n", c.ThetaPDeg)
	fmt.Fprintf(w, "  Max-Shear Plane (θs):\t%.2f°\n", c.ThetaSDeg)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("PRINCIPAL STRESSES", []string{
		fmt.Sprintf("σ1 (Max): %.2f", c.Sigma1),
		fmt.Sprintf("σ2 (Min): %.2f", c.Sigma2),
		fmt.Sprintf("τ_max:    %.2f", c.TauMax),
	}))
	fmt.Println()
}
