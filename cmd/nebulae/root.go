package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kerbaras/nebulae/pkg/app/styles"
	"github.com/kerbaras/nebulae/pkg/catalog"
	"github.com/kerbaras/nebulae/pkg/report"
	"github.com/kerbaras/nebulae/pkg/services"
	"github.com/kerbaras/nebulae/pkg/sources"
)

// maxPromptAttempts bounds the re-prompt loop on invalid menu input.
const maxPromptAttempts = 5

var rootCmd = &cobra.Command{
	Use:   "nebulae",
	Short: "Interactive nebula lookup, image fetch and report CLI",
	Long:  "Look up a nebula, fetch its astrometric data and NASA images, and write a combined text report",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := chooseNebula(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		conditions, _ := cmd.Flags().GetBool("conditions")
		return buildPipeline(conditions).Run(name)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("config", "", "config file (default .nebulae.yaml)")
	rootCmd.Flags().Bool("conditions", false, "include the physical-conditions section in the report")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".nebulae")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("NEBULAE")
	viper.AutomaticEnv()

	viper.SetDefault("max_results", 10)
	viper.SetDefault("download_dir", ".")
	viper.SetDefault("simbad_url", sources.DefaultSimbadURL)
	viper.SetDefault("vizier_url", sources.DefaultVizierURL)
	viper.SetDefault("nasa_url", sources.DefaultNASAURL)

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// buildPipeline wires the services from config. The static tables stay
// compiled in; only endpoints and limits are configurable.
func buildPipeline(conditions bool) *services.Pipeline {
	dir := viper.GetString("download_dir")
	return &services.Pipeline{
		Astrometry:  services.NewAstrometryService(sources.NewSimbad(viper.GetString("simbad_url"))),
		Composition: services.NewCompositionService(sources.NewVizier(viper.GetString("vizier_url"))),
		Archive:     sources.NewNASA(viper.GetString("nasa_url")),
		Downloader:  services.NewDownloader(dir),
		Report:      report.NewWriter(dir),
		MaxResults:  viper.GetInt("max_results"),
		Conditions:  conditions,
		In:          os.Stdin,
		Out:         os.Stdout,
	}
}

// chooseNebula shows the numbered catalog and reads a choice, re-prompting
// on invalid input a bounded number of times.
func chooseNebula(in io.Reader, out io.Writer) (string, error) {
	scanner := bufio.NewScanner(in)

	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		fmt.Fprintln(out, styles.TitleStyle.Render("📚 Available nebulae:"))
		for i, name := range catalog.Menu {
			fmt.Fprintf(out, " %2d. %s\n", i+1, name)
		}
		fmt.Fprintln(out, "  0. Search by another name")
		fmt.Fprint(out, "\nEnter the number of a nebula, or 0 to type a name: ")

		if !scanner.Scan() {
			return "", fmt.Errorf("no input")
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			if choice == 0 {
				fmt.Fprint(out, "Enter the name of the nebula to search for: ")
				if !scanner.Scan() {
					return "", fmt.Errorf("no input")
				}
				if name := strings.TrimSpace(scanner.Text()); name != "" {
					return name, nil
				}
			} else if choice >= 1 && choice <= len(catalog.Menu) {
				return catalog.Menu[choice-1], nil
			}
		}
		fmt.Fprintln(out, styles.ErrorStyle.Render("❌ Invalid option. Try again."))
	}
	return "", fmt.Errorf("no valid selection after %d attempts", maxPromptAttempts)
}
