package extract

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/PowerX-NOT/gmaps-script/payload"
)

// ScheduleRecords walks a place payload and collects every (route, stop,
// time) row it can assemble. A subtree qualifies when it carries a bus
// marker, resolves a route badge, and holds a stop/time row. Ancestors of a
// qualifying subtree qualify too and reproduce the same triple, so records
// are deduplicated exactly, keeping first-occurrence order.
func (x *Extractor) ScheduleRecords(root gjson.Result) []ScheduleRecord {
	var out []ScheduleRecord
	seen := make(map[ScheduleRecord]struct{})
	payload.Walk(root, func(n gjson.Result, _ payload.Path) bool {
		if !n.IsArray() || !x.hasBusMarker(n) {
			return true
		}
		badge, ok := x.FindRouteBadge(n)
		if !ok {
			return true
		}
		stop, tm, ok := x.findStopTime(n)
		if !ok {
			return true
		}
		rec := ScheduleRecord{Route: badge.Code, Stop: stop, Time: tm}
		if _, dup := seen[rec]; !dup {
			seen[rec] = struct{}{}
			out = append(out, rec)
		}
		return true
	})
	return out
}

// hasBusMarker reports whether any string beneath n contains the bus icon
// marker or equals the bus mode marker.
func (x *Extractor) hasBusMarker(n gjson.Result) bool {
	found := false
	payload.Walk(n, func(m gjson.Result, _ payload.Path) bool {
		if m.Type == gjson.String &&
			(strings.Contains(m.Str, x.tuning.BusIconMarker) || m.Str == x.tuning.BusModeMarker) {
			found = true
			return false
		}
		return true
	})
	return found
}

// findStopTime locates the first stop/time row beneath root in pre-order.
func (x *Extractor) findStopTime(root gjson.Result) (stop, tm string, ok bool) {
	payload.Walk(root, func(n gjson.Result, _ payload.Path) bool {
		if s, t, match := x.matchStopTime(n); match {
			stop, tm, ok = s, t, true
			return false
		}
		return true
	})
	return stop, tm, ok
}

// matchStopTime recognizes the row shape [stop, null, null, timeCell, ...]
// where the time cell resolves to a time block.
func (x *Extractor) matchStopTime(n gjson.Result) (string, string, bool) {
	if !n.IsArray() {
		return "", "", false
	}
	els := n.Array()
	if len(els) < 4 {
		return "", "", false
	}
	if els[0].Type != gjson.String || els[1].Type != gjson.Null || els[2].Type != gjson.Null {
		return "", "", false
	}
	t, ok := x.descendTimeBlock(els[3])
	if !ok {
		return "", "", false
	}
	return els[0].Str, t, true
}

// descendTimeBlock follows first elements down from a row's time cell until
// it reaches a list of 3 or more elements whose third reads as a clock
// time. Descent is bounded by TimeBlockMaxDepth.
func (x *Extractor) descendTimeBlock(n gjson.Result) (string, bool) {
	cur := n
	for depth := 0; depth <= x.tuning.TimeBlockMaxDepth; depth++ {
		if !cur.IsArray() {
			return "", false
		}
		els := cur.Array()
		if len(els) >= 3 && els[2].Type == gjson.String && strings.Contains(els[2].Str, ":") {
			return els[2].Str, true
		}
		if len(els) == 0 {
			return "", false
		}
		cur = els[0]
	}
	return "", false
}

// SectionRoutes returns the badge codes listed beneath the payload's route
// section headers, in pre-order, deduplicated by code. A section is any list
// whose first element equals the configured header literal.
func (x *Extractor) SectionRoutes(root gjson.Result) []string {
	var out []string
	seen := make(map[string]struct{})
	payload.Walk(root, func(n gjson.Result, _ payload.Path) bool {
		if !n.IsArray() {
			return true
		}
		els := n.Array()
		if len(els) == 0 || els[0].Type != gjson.String || els[0].Str != x.tuning.BusSectionHeader {
			return true
		}
		for _, b := range x.collectRouteBadges(n) {
			if _, dup := seen[b.Code]; !dup {
				seen[b.Code] = struct{}{}
				out = append(out, b.Code)
			}
		}
		return true
	})
	return out
}
