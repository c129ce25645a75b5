package extract

import (
	"log"
	"strings"
)

// WarningType identifies a category of extraction anomaly.
type WarningType string

const (
	// WarningNoRouteBadge means a stop sequence was found but no route
	// badge could be resolved near it; the output carries a null route.
	WarningNoRouteBadge WarningType = "no_route_badge"

	// WarningStopNoCoordinates means a stop entry held no plausible
	// coordinate pair; the output carries null lat/lng.
	WarningStopNoCoordinates WarningType = "stop_no_coordinates"

	// WarningNoPlaceName means a schedule payload held no recognizable
	// place entry; the output names the place with an empty string.
	WarningNoPlaceName WarningType = "no_place_name"
)

type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects extraction anomalies and logs aggregated
// summaries instead of one line per occurrence.
type WarningAggregator struct {
	warnings    map[WarningType]*warningInfo
	maxExamples int
}

// NewWarningAggregator creates an aggregator keeping up to 5 examples per
// warning type.
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings:    make(map[WarningType]*warningInfo),
		maxExamples: 5,
	}
}

// Add records one occurrence of a warning with an example identifier
// (a stop name, a tree path) for the log summary.
func (wa *WarningAggregator) Add(warningType WarningType, example string) {
	info, ok := wa.warnings[warningType]
	if !ok {
		info = &warningInfo{}
		wa.warnings[warningType] = info
	}
	info.count++
	if len(info.examples) < wa.maxExamples {
		info.examples = append(info.examples, example)
	}
}

// Count returns how many occurrences of warningType were recorded.
func (wa *WarningAggregator) Count(warningType WarningType) int {
	info, ok := wa.warnings[warningType]
	if !ok {
		return 0
	}
	return info.count
}

// LogAll writes one summary line per warning type recorded for source.
func (wa *WarningAggregator) LogAll(source string) {
	for warningType, info := range wa.warnings {
		var description, action string
		switch warningType {
		case WarningNoRouteBadge:
			description = "stop sequences without a resolvable route badge"
			action = "Writing output with null route"
		case WarningStopNoCoordinates:
			description = "stop entries without a coordinate pair"
			action = "Writing stops with null lat/lng"
		case WarningNoPlaceName:
			description = "no recognizable place entry"
			action = "Writing output with empty place name"
		default:
			description = string(warningType)
			action = "Continuing"
		}

		examples := strings.Join(info.examples, ", ")
		if info.count > len(info.examples) {
			examples += ", ..."
		}

		log.Printf("Document %s has %s (%d occurrences). %s. Examples: %s",
			source, description, info.count, action, examples)
	}
}
