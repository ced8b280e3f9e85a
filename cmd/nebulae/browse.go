package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/nebulae/pkg/app"
	"github.com/kerbaras/nebulae/pkg/catalog"
	"github.com/kerbaras/nebulae/pkg/data"
	"github.com/kerbaras/nebulae/pkg/log"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a nebula and images interactively",
	Long:  "Run the pipeline with a full-screen picker for the catalog and the image selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := app.PickNebula(catalog.Menu)
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Println("Nothing selected.")
			return nil
		}

		conditions, _ := cmd.Flags().GetBool("conditions")
		pipeline := buildPipeline(conditions)
		pipeline.Select = func(cands []data.ImageCandidate) []int {
			indices, err := app.SelectImages(cands)
			if err != nil {
				log.Warn("image selection aborted", "error", err)
				return nil
			}
			return indices
		}
		return pipeline.Run(name)
	},
}

func init() {
	browseCmd.Flags().Bool("conditions", false, "include the physical-conditions section in the report")
	rootCmd.AddCommand(browseCmd)
}
