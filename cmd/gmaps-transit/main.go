package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/PowerX-NOT/gmaps-script/internal"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "gmaps-transit",
	Short: "Scrape internal transit payloads and extract stop data",
	Long: `gmaps-transit downloads the raw transit payloads a maps session sees
(place preview and transit lines) and recovers structured data from them:
an ordered stop sequence with times and coordinates, or a per-place bus
schedule. Fetching needs a logged-in session cookie in the environment;
extraction works offline on previously saved responses.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; the cookie can come from the real environment.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.yml")
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(extractCmd)
}

func main() {
	internal.InitLogging()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
