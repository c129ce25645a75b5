package report

import (
	"encoding/json"

	"github.com/PowerX-NOT/gmaps-script/extract"
)

// StopRecord is one row of the assembled stop sequence. Lat, Lng and PlaceID
// marshal as null when the payload held no value for them.
type StopRecord struct {
	Index   int      `json:"index"`
	Name    string   `json:"name"`
	Time    string   `json:"time"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	PlaceID *string  `json:"place_id"`
}

// StopSequenceReport is the stop-sequence output document. Route is null
// when no badge was resolved. The two path fields record where in the
// payload the data came from, so a result can be re-derived by hand.
type StopSequenceReport struct {
	Route                 *string      `json:"route"`
	StopSequence          []StopRecord `json:"stop_sequence"`
	Count                 int          `json:"count"`
	SourcePath            string       `json:"source_path"`
	OriginDestinationPath string       `json:"origin_destination_path"`
}

// BuildStopSequence merges the origin/destination header into the timed
// sequence and deduplicates the result. The origin is prepended unless it is
// already the first stop, the destination appended unless it is already the
// last; pair may be nil when the payload had no header.
func BuildStopSequence(seq *extract.StopSequence, pair *extract.EndpointPair) *StopSequenceReport {
	merged := make([]extract.Stop, 0, len(seq.Stops)+2)
	if pair != nil && (len(seq.Stops) == 0 || pair.Origin.Key() != seq.Stops[0].Key()) {
		merged = append(merged, pair.Origin)
	}
	merged = append(merged, seq.Stops...)
	if pair != nil && (len(seq.Stops) == 0 || pair.Destination.Key() != seq.Stops[len(seq.Stops)-1].Key()) {
		merged = append(merged, pair.Destination)
	}

	kept := dedupInterior(merged)

	rep := &StopSequenceReport{
		StopSequence: make([]StopRecord, 0, len(kept)),
		SourcePath:   seq.Path.String(),
	}
	if seq.Route != nil {
		code := seq.Route.Code
		rep.Route = &code
	}
	if pair != nil {
		rep.OriginDestinationPath = pair.Path.String()
	}
	for i, s := range kept {
		rep.StopSequence = append(rep.StopSequence, StopRecord{
			Index:   i,
			Name:    s.Name,
			Time:    s.Time,
			Lat:     s.Lat,
			Lng:     s.Lng,
			PlaceID: s.PlaceID,
		})
	}
	rep.Count = len(rep.StopSequence)
	return rep
}

// dedupInterior drops repeats of a composite key while keeping order. The
// first and last entries survive unconditionally; they are the endpoints of
// the journey even when an interior stop shares their key.
func dedupInterior(stops []extract.Stop) []extract.Stop {
	if len(stops) <= 2 {
		return stops
	}
	seen := make(map[extract.StopKey]struct{}, len(stops))
	out := make([]extract.Stop, 0, len(stops))
	last := len(stops) - 1
	for i, s := range stops {
		k := s.Key()
		if i != 0 && i != last {
			if _, dup := seen[k]; dup {
				continue
			}
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

// JSON renders the report indented with a trailing newline.
func (r *StopSequenceReport) JSON() []byte {
	b, _ := json.MarshalIndent(r, "", "  ")
	return append(b, '\n')
}
