package extract

import (
	"github.com/tidwall/gjson"

	"github.com/PowerX-NOT/gmaps-script/payload"
)

// FindPlace locates the headline place entry of a place payload. The first
// match in pre-order wins. Absence is recorded as a warning, not an error;
// schedule extraction still works without a place name.
func (x *Extractor) FindPlace(root gjson.Result) (Place, bool) {
	var place Place
	found := false
	payload.Walk(root, func(n gjson.Result, _ payload.Path) bool {
		if p, ok := matchPlace(n); ok {
			place = p
			found = true
			return false
		}
		return true
	})
	if !found {
		x.warnings.Add(WarningNoPlaceName, "document")
	}
	return place, found
}

// matchPlace recognizes the place entry shape: [name, id, null, location,
// ...] where location is a list of 4 or more elements with non-null values
// in positions 2 and 3 (the coordinates).
func matchPlace(n gjson.Result) (Place, bool) {
	if !n.IsArray() {
		return Place{}, false
	}
	els := n.Array()
	if len(els) < 4 {
		return Place{}, false
	}
	if els[0].Type != gjson.String || els[1].Type != gjson.String {
		return Place{}, false
	}
	if els[2].Type != gjson.Null {
		return Place{}, false
	}
	if !els[3].IsArray() {
		return Place{}, false
	}
	loc := els[3].Array()
	if len(loc) < 4 || loc[2].Type == gjson.Null || loc[3].Type == gjson.Null {
		return Place{}, false
	}

	p := Place{Name: els[0].Str}
	if loc[2].Type == gjson.Number && loc[3].Type == gjson.Number {
		p.Lat = loc[2].Num
		p.Lng = loc[3].Num
	}
	return p, true
}
