package extract

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/PowerX-NOT/gmaps-script/payload"
)

// badgeTypeTag is the discriminator the wrapped badge shape opens with.
const badgeTypeTag = 5

// colorPrefix marks a display color string, always #rrggbb on the wire.
const colorPrefix = "#"

// matchRouteBadge classifies a single node. Badges come in two shapes:
//
//	[5, [code, _, "#color", ...], ...]   wrapped
//	[code, int, "#color", ...]           bare
//
// The wrapped shape is tried first. The middle element of its inner list is
// not checked; payloads vary there.
func matchRouteBadge(n gjson.Result) (RouteBadge, bool) {
	if !n.IsArray() {
		return RouteBadge{}, false
	}
	els := n.Array()

	if len(els) >= 2 && payload.IsInt(els[0]) && els[0].Int() == badgeTypeTag && els[1].IsArray() {
		inner := els[1].Array()
		if len(inner) >= 3 && inner[0].Type == gjson.String && isColorString(inner[2]) {
			return RouteBadge{Code: inner[0].Str, Color: inner[2].Str}, true
		}
	}

	if len(els) >= 3 && els[0].Type == gjson.String && payload.IsInt(els[1]) && isColorString(els[2]) {
		return RouteBadge{Code: els[0].Str, Color: els[2].Str}, true
	}

	return RouteBadge{}, false
}

func isColorString(n gjson.Result) bool {
	return n.Type == gjson.String && strings.HasPrefix(n.Str, colorPrefix)
}

// FindRouteBadge returns the first route badge under root in pre-order.
func (x *Extractor) FindRouteBadge(root gjson.Result) (RouteBadge, bool) {
	var badge RouteBadge
	found := false
	payload.Walk(root, func(n gjson.Result, _ payload.Path) bool {
		if b, ok := matchRouteBadge(n); ok {
			badge = b
			found = true
			return false
		}
		return true
	})
	return badge, found
}

// collectRouteBadges returns every badge under root in pre-order,
// deduplicated by code. The wrapped shape contains a list that can match
// the bare shape on its own, so the same badge would otherwise count twice.
func (x *Extractor) collectRouteBadges(root gjson.Result) []RouteBadge {
	var out []RouteBadge
	seen := make(map[string]struct{})
	payload.Walk(root, func(n gjson.Result, _ payload.Path) bool {
		if b, ok := matchRouteBadge(n); ok {
			if _, dup := seen[b.Code]; !dup {
				seen[b.Code] = struct{}{}
				out = append(out, b)
			}
		}
		return true
	})
	return out
}
