package extract

import "errors"

// Defaults for the matcher thresholds in Tuning. The values mirror the
// payloads the extractor was calibrated against: Bengaluru metropolitan bus
// data served with IST timestamps.
const (
	DefaultTimezoneLiteral      = "Asia/Calcutta"
	DefaultMinSequenceLen       = 5
	DefaultMinSequenceMatches   = 5
	DefaultSequenceMatchDensity = 0.6
	DefaultMinEndpointPairLen   = 3
	DefaultTimeBlockMaxDepth    = 4
	DefaultMaxAbsLatitude       = 90
	DefaultMaxAbsLongitude      = 180
	DefaultBusIconMarker        = "bus2.png"
	DefaultBusModeMarker        = "Bus"
	DefaultBusSectionHeader     = "Buses"
)

// Tuning collects the empirically derived constants the structural matchers
// compare against. Zero fields fall back to the package defaults, so a
// partially populated value from configuration is safe to use.
type Tuning struct {
	// TimezoneLiteral is the timezone string a time block carries in
	// position 1. It doubles as the strongest signal that a list is
	// schedule data at all.
	TimezoneLiteral string

	// MinSequenceLen is the minimum element count for a stop-sequence
	// candidate list.
	MinSequenceLen int

	// MinSequenceMatches is the minimum number of timed stop entries a
	// candidate must contain.
	MinSequenceMatches int

	// SequenceMatchDensity is the fraction of a candidate's elements that
	// must be timed stop entries. The match count must strictly exceed
	// density times length.
	SequenceMatchDensity float64

	// MinEndpointPairLen is the minimum element count for an
	// origin/destination pair candidate.
	MinEndpointPairLen int

	// TimeBlockMaxDepth bounds how many first-element steps the schedule
	// walker descends when digging a time block out of a stop row.
	TimeBlockMaxDepth int

	// MaxAbsLatitude and MaxAbsLongitude bound the coordinate-pair
	// recovery heuristic.
	MaxAbsLatitude  float64
	MaxAbsLongitude float64

	// BusIconMarker marks a subtree as bus schedule data when any string
	// beneath it contains this substring.
	BusIconMarker string

	// BusModeMarker marks a subtree as bus schedule data when any string
	// beneath it equals it exactly.
	BusModeMarker string

	// BusSectionHeader is the literal first element of the list that
	// enumerates a place's bus routes.
	BusSectionHeader string
}

// DefaultTuning returns the thresholds the extractor was calibrated with.
func DefaultTuning() Tuning {
	return Tuning{}.withDefaults()
}

func (t Tuning) withDefaults() Tuning {
	if t.TimezoneLiteral == "" {
		t.TimezoneLiteral = DefaultTimezoneLiteral
	}
	if t.MinSequenceLen == 0 {
		t.MinSequenceLen = DefaultMinSequenceLen
	}
	if t.MinSequenceMatches == 0 {
		t.MinSequenceMatches = DefaultMinSequenceMatches
	}
	if t.SequenceMatchDensity == 0 {
		t.SequenceMatchDensity = DefaultSequenceMatchDensity
	}
	if t.MinEndpointPairLen == 0 {
		t.MinEndpointPairLen = DefaultMinEndpointPairLen
	}
	if t.TimeBlockMaxDepth == 0 {
		t.TimeBlockMaxDepth = DefaultTimeBlockMaxDepth
	}
	if t.MaxAbsLatitude == 0 {
		t.MaxAbsLatitude = DefaultMaxAbsLatitude
	}
	if t.MaxAbsLongitude == 0 {
		t.MaxAbsLongitude = DefaultMaxAbsLongitude
	}
	if t.BusIconMarker == "" {
		t.BusIconMarker = DefaultBusIconMarker
	}
	if t.BusModeMarker == "" {
		t.BusModeMarker = DefaultBusModeMarker
	}
	if t.BusSectionHeader == "" {
		t.BusSectionHeader = DefaultBusSectionHeader
	}
	return t
}

// Extractor applies the shape heuristics against parsed payload trees.
// It is not safe for concurrent use; each document gets its own warnings.
type Extractor struct {
	tuning   Tuning
	warnings *WarningAggregator
}

// New returns an Extractor using t, with zero fields defaulted.
func New(t Tuning) *Extractor {
	return &Extractor{
		tuning:   t.withDefaults(),
		warnings: NewWarningAggregator(),
	}
}

// Warnings exposes the anomalies accumulated so far.
func (x *Extractor) Warnings() *WarningAggregator {
	return x.warnings
}

// Sentinel errors for documents that parse but hold no extractable data.
var (
	ErrNoStopSequence = errors.New("no timed stop sequence found in document")
	ErrNoSchedule     = errors.New("no bus schedule structures found in document")
)

// Stop is one transit stop recovered from a payload subtree. Coordinates and
// the place id are optional; they are recovered as a pair or not at all.
type Stop struct {
	Name    string
	Time    string
	Lat     *float64
	Lng     *float64
	PlaceID *string
}

// StopKey is the composite identity of a stop. Two entries describe the same
// stop only when the name, place id, and both coordinates all agree.
type StopKey struct {
	name    string
	placeID string
	lat     float64
	lng     float64
	located bool
}

// Key returns the composite identity used for deduplication.
func (s Stop) Key() StopKey {
	k := StopKey{name: s.Name}
	if s.PlaceID != nil {
		k.placeID = *s.PlaceID
	}
	if s.Lat != nil && s.Lng != nil {
		k.lat = *s.Lat
		k.lng = *s.Lng
		k.located = true
	}
	return k
}

// RouteBadge is a transit line's short code with its display color.
type RouteBadge struct {
	Code  string
	Color string
}

// ScheduleRecord is one row of a place's bus timetable.
type ScheduleRecord struct {
	Route string
	Stop  string
	Time  string
}

// Place is the named location a place payload describes.
type Place struct {
	Name string
	Lat  float64
	Lng  float64
}
