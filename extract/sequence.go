package extract

import (
	"github.com/tidwall/gjson"

	"github.com/PowerX-NOT/gmaps-script/payload"
)

// StopSequence is a recovered ordered timetable: the timed stop entries of
// the matched list, the path of that list, and the route badge resolved for
// it. Route is nil when no badge was found anywhere up the ancestor chain.
type StopSequence struct {
	Stops []Stop
	Path  payload.Path
	Route *RouteBadge
}

// FindStopSequence locates the stop-sequence list in a transit-lines
// payload. Candidates are scored by matchStopSequence and the last match in
// pre-order wins; earlier matches are summary fragments of the same data.
func (x *Extractor) FindStopSequence(root gjson.Result) (*StopSequence, bool) {
	var (
		node  gjson.Result
		at    payload.Path
		found bool
	)
	payload.Walk(root, func(n gjson.Result, p payload.Path) bool {
		if x.matchStopSequence(n) {
			node = n
			at = p.Clone()
			found = true
		}
		return true
	})
	if !found {
		return nil, false
	}

	seq := &StopSequence{Path: at}
	for _, el := range node.Array() {
		if x.looksLikeTimedStopEntry(el) {
			seq.Stops = append(seq.Stops, x.parseStop(el))
		}
	}
	seq.Route = x.routeForSequence(root, node, at)
	return seq, true
}

// matchStopSequence decides whether a list is a plausible stop sequence: it
// must be long enough, open with three consecutive timed stop entries, and
// hold enough timed entries both in absolute count and as a fraction of its
// length. Non-matching elements are interleaved metadata and are tolerated
// up to the density threshold.
func (x *Extractor) matchStopSequence(n gjson.Result) bool {
	if !n.IsArray() {
		return false
	}
	els := n.Array()
	if len(els) < x.tuning.MinSequenceLen || len(els) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if !x.looksLikeTimedStopEntry(els[i]) {
			return false
		}
	}
	matches := 0
	for _, el := range els {
		if x.looksLikeTimedStopEntry(el) {
			matches++
		}
	}
	if matches < x.tuning.MinSequenceMatches {
		return false
	}
	return float64(matches) > x.tuning.SequenceMatchDensity*float64(len(els))
}

// routeForSequence resolves the badge for a matched sequence: first inside
// the matched subtree, then widening ancestor by ancestor back to the root.
func (x *Extractor) routeForSequence(root, node gjson.Result, at payload.Path) *RouteBadge {
	if b, ok := x.FindRouteBadge(node); ok {
		return &b
	}
	for i := len(at) - 1; i >= 0; i-- {
		if b, ok := x.FindRouteBadge(payload.Resolve(root, at[:i])); ok {
			return &b
		}
	}
	x.warnings.Add(WarningNoRouteBadge, at.String())
	return nil
}
