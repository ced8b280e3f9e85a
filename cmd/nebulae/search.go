package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kerbaras/nebulae/pkg/sources"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the NASA image archive",
	Long:  "Search the NASA image archive and display results in a table, without downloading",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		archive := sources.NewNASA(viper.GetString("nasa_url"))

		results, err := archive.Search(query, viper.GetInt("max_results"))
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		if len(results) == 0 {
			fmt.Println("No images found.")
			return
		}

		var (
			blue = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(blue).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(blue)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Created", "Description")

		for i, cand := range results {
			t.Row(fmt.Sprintf("%d", i+1), truncateString(cand.Title, 40), cand.DateCreated, truncateString(cand.Description, 60))
		}

		fmt.Println(t)
	},
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
