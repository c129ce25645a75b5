package extract

import (
	"github.com/tidwall/gjson"

	"github.com/PowerX-NOT/gmaps-script/payload"
)

// EndpointPair is the origin/destination header the payload renders above a
// timetable. Its entries usually carry coordinates the timed sequence lacks.
type EndpointPair struct {
	Origin      Stop
	Destination Stop
	Path        payload.Path
}

// FindEndpoints locates the origin/destination pair in a transit-lines
// payload. The last match in pre-order wins, same policy as the sequence
// finder. Absence is not an error; the pair only enriches the output.
func (x *Extractor) FindEndpoints(root gjson.Result) (*EndpointPair, bool) {
	var (
		node  gjson.Result
		at    payload.Path
		found bool
	)
	payload.Walk(root, func(n gjson.Result, p payload.Path) bool {
		if x.matchEndpointPair(n) {
			node = n
			at = p.Clone()
			found = true
		}
		return true
	})
	if !found {
		return nil, false
	}

	els := node.Array()
	return &EndpointPair{
		Origin:      x.parseStop(els[0]),
		Destination: x.parseStop(els[1]),
		Path:        at,
	}, true
}

// matchEndpointPair decides whether a list is an origin/destination header:
// two loose stop entries that both carry an extractable time, followed by an
// integer discriminator in position 2.
func (x *Extractor) matchEndpointPair(n gjson.Result) bool {
	if !n.IsArray() {
		return false
	}
	els := n.Array()
	if len(els) < x.tuning.MinEndpointPairLen || len(els) < 3 {
		return false
	}
	if !x.looksLikeAnyStopEntry(els[0]) || !x.looksLikeAnyStopEntry(els[1]) {
		return false
	}
	if _, ok := x.timeOf(els[0]); !ok {
		return false
	}
	if _, ok := x.timeOf(els[1]); !ok {
		return false
	}
	return payload.IsInt(els[2])
}
