package extract

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/PowerX-NOT/gmaps-script/payload"
)

// nonNamePrefixes disqualify a leading string from being a stop name. Hex
// feature ids and URLs open list nodes all over the payload.
var nonNamePrefixes = []string{"0x", "http", "//"}

// placeIDPattern matches the paired hex feature id the service attaches to
// stop entries.
var placeIDPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+:0x[0-9a-fA-F]+$`)

func hasNonNamePrefix(s string) bool {
	for _, p := range nonNamePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// looksLikeAnyStopEntry is the loose gate: a list opening with a string that
// could be a stop name. Origin/destination headers match this but not the
// timed form.
func (x *Extractor) looksLikeAnyStopEntry(n gjson.Result) bool {
	if !n.IsArray() {
		return false
	}
	els := n.Array()
	if len(els) == 0 || els[0].Type != gjson.String {
		return false
	}
	return !hasNonNamePrefix(els[0].Str)
}

// timeBlockValue recognizes a schedule time block and returns its display
// string. A block is a list of at least 3 elements whose second element is
// the expected timezone literal and whose third reads as a clock time.
func (x *Extractor) timeBlockValue(n gjson.Result) (string, bool) {
	if !n.IsArray() {
		return "", false
	}
	els := n.Array()
	if len(els) < 3 {
		return "", false
	}
	if els[1].Type != gjson.String || els[1].Str != x.tuning.TimezoneLiteral {
		return "", false
	}
	if els[2].Type != gjson.String || !strings.Contains(els[2].Str, ":") {
		return "", false
	}
	return els[2].Str, true
}

// looksLikeTimedStopEntry is the strict gate: a loose stop entry carrying a
// time block among its direct elements.
func (x *Extractor) looksLikeTimedStopEntry(n gjson.Result) bool {
	if !x.looksLikeAnyStopEntry(n) {
		return false
	}
	for _, el := range n.Array() {
		if _, ok := x.timeBlockValue(el); ok {
			return true
		}
	}
	return false
}

// timeOf returns the time attached to a stop entry. Direct elements are
// checked first; origin/destination headers bury the block deeper, so the
// whole subtree is searched as a fallback.
func (x *Extractor) timeOf(entry gjson.Result) (string, bool) {
	for _, el := range entry.Array() {
		if t, ok := x.timeBlockValue(el); ok {
			return t, true
		}
	}
	var found string
	ok := false
	payload.Walk(entry, func(n gjson.Result, _ payload.Path) bool {
		if t, match := x.timeBlockValue(n); match {
			found = t
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// parseStop recovers the output fields from a matched stop entry. The name
// is positional; the time, place id, and coordinates are searched for by
// shape because their positions drift between payload variants.
func (x *Extractor) parseStop(entry gjson.Result) Stop {
	els := entry.Array()
	if len(els) == 0 {
		return Stop{}
	}
	s := Stop{Name: els[0].Str}
	if t, ok := x.timeOf(entry); ok {
		s.Time = t
	}
	if id, ok := placeIDIn(entry); ok {
		s.PlaceID = &id
	}
	if lat, lng, ok := x.coordsIn(entry); ok {
		s.Lat = &lat
		s.Lng = &lng
	} else {
		x.warnings.Add(WarningStopNoCoordinates, s.Name)
	}
	return s
}

// placeIDIn returns the first string in the subtree matching the paired hex
// feature id format.
func placeIDIn(entry gjson.Result) (string, bool) {
	var id string
	found := false
	payload.Walk(entry, func(n gjson.Result, _ payload.Path) bool {
		if n.Type == gjson.String && placeIDPattern.MatchString(n.Str) {
			id = n.Str
			found = true
			return false
		}
		return true
	})
	return id, found
}

// coordsIn returns the first two-element all-number list in the subtree
// whose values fit latitude/longitude bounds. Recovery is pair-or-nothing.
func (x *Extractor) coordsIn(entry gjson.Result) (lat, lng float64, ok bool) {
	payload.Walk(entry, func(n gjson.Result, _ payload.Path) bool {
		if !n.IsArray() {
			return true
		}
		els := n.Array()
		if len(els) != 2 || els[0].Type != gjson.Number || els[1].Type != gjson.Number {
			return true
		}
		la, ln := els[0].Num, els[1].Num
		if la < -x.tuning.MaxAbsLatitude || la > x.tuning.MaxAbsLatitude {
			return true
		}
		if ln < -x.tuning.MaxAbsLongitude || ln > x.tuning.MaxAbsLongitude {
			return true
		}
		lat, lng, ok = la, ln, true
		return false
	})
	return lat, lng, ok
}
