package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PowerX-NOT/gmaps-script/config"
	"github.com/PowerX-NOT/gmaps-script/extract"
	"github.com/PowerX-NOT/gmaps-script/payload"
	"github.com/PowerX-NOT/gmaps-script/report"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Recover structured data from saved payloads",
}

var extractStopsCmd = &cobra.Command{
	Use:   "stops <input_json> <output_json> [clean_json]",
	Short: "Recover the ordered stop sequence from a transit-lines payload",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runExtractStops(args)
	},
}

var extractScheduleCmd = &cobra.Command{
	Use:   "schedule <input_json> <output_txt> [clean_json] [schedule_json]",
	Short: "Recover the bus schedule from a place payload",
	Args:  cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runExtractSchedule(args)
	},
}

func init() {
	extractCmd.AddCommand(extractStopsCmd, extractScheduleCmd)
}

func runExtractStops(args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	doc, err := payload.Parse(raw)
	if err != nil {
		return err
	}

	x := extract.New(tuningFrom(cfg.Extract))
	seq, ok := x.FindStopSequence(doc)
	if !ok {
		return fmt.Errorf("%s: %w", args[0], extract.ErrNoStopSequence)
	}
	pair, _ := x.FindEndpoints(doc)
	x.Warnings().LogAll(args[0])

	if err := writeOutput(args[1], report.BuildStopSequence(seq, pair).JSON()); err != nil {
		return err
	}
	if len(args) > 2 {
		clean, err := payload.CleanJSON(raw)
		if err != nil {
			return err
		}
		if err := writeOutput(args[2], clean); err != nil {
			return err
		}
	}
	return nil
}

func runExtractSchedule(args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	doc, err := payload.Parse(raw)
	if err != nil {
		return err
	}

	x := extract.New(tuningFrom(cfg.Extract))
	records := x.ScheduleRecords(doc)
	sections := x.SectionRoutes(doc)
	if len(records) == 0 && len(sections) == 0 {
		return fmt.Errorf("%s: %w", args[0], extract.ErrNoSchedule)
	}
	place, _ := x.FindPlace(doc)
	x.Warnings().LogAll(args[0])

	rep := report.BuildSchedule(place.Name, sections, records)
	if err := writeOutput(args[1], rep.Text()); err != nil {
		return err
	}
	if len(args) > 2 {
		clean, err := payload.CleanJSON(raw)
		if err != nil {
			return err
		}
		if err := writeOutput(args[2], clean); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		if err := writeOutput(args[3], rep.JSON()); err != nil {
			return err
		}
	}
	return nil
}

func tuningFrom(c config.ExtractConfig) extract.Tuning {
	return extract.Tuning{
		TimezoneLiteral:      c.TimezoneLiteral,
		MinSequenceLen:       c.MinSequenceLen,
		MinSequenceMatches:   c.MinSequenceMatches,
		SequenceMatchDensity: c.SequenceMatchDensity,
		MinEndpointPairLen:   c.MinEndpointPairLen,
		TimeBlockMaxDepth:    c.TimeBlockMaxDepth,
		MaxAbsLatitude:       c.MaxAbsLatitude,
		MaxAbsLongitude:      c.MaxAbsLongitude,
		BusIconMarker:        c.BusIconMarker,
		BusModeMarker:        c.BusModeMarker,
		BusSectionHeader:     c.BusSectionHeader,
	}
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
