package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/nebulae/pkg/app/styles"
	"github.com/kerbaras/nebulae/pkg/diagnostics"
)

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Run the line-ratio physical-conditions demonstration",
	Long:  "Compute electron temperatures and density from fixed illustrative emission-line fluxes",
	Run: func(cmd *cobra.Command, args []string) {
		cond := diagnostics.Estimate()

		fmt.Println(styles.TitleStyle.Render("🌡  Physical conditions (fixed demonstration fluxes)"))
		printCondition("Te[O III]", cond.TempOIII, "K")
		printCondition("Te[N II]", cond.TempNII, "K")
		printCondition("Ne[S II]", cond.Density, "cm^-3")
	},
}

func printCondition(label string, value float64, unit string) {
	if value <= 0 {
		fmt.Printf("  %-10s unavailable\n", label)
		return
	}
	fmt.Printf("  %-10s %.0f %s\n", label, value, unit)
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)
}
