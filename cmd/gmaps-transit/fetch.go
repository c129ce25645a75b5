package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PowerX-NOT/gmaps-script/config"
	"github.com/PowerX-NOT/gmaps-script/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download raw payloads from the transit endpoints",
}

var fetchPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Fetch the place-preview payload",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runFetch(fetch.Place)
	},
}

var fetchLinesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Fetch the transit-lines payload",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runFetch(fetch.Lines)
	},
}

func init() {
	fetchCmd.AddCommand(fetchPlaceCmd, fetchLinesCmd)
}

func runFetch(v fetch.Variant) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	out, err := fetch.New(cfg.Fetch).FetchToFile(v)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
