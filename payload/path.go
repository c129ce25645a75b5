package payload

import (
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// Path addresses a node inside a parsed document. Segments are array indexes
// or escaped object keys, so String renders a gjson query path that resolves
// back to the same node.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Clone returns an independent copy. Walk reuses its scratch path between
// visits, so a path kept past the visitor call must be cloned.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Resolve returns the node p addresses under root. An empty path is the root
// itself; a path that no longer matches resolves to a non-existent result.
func Resolve(root gjson.Result, p Path) gjson.Result {
	if len(p) == 0 {
		return root
	}
	return root.Get(p.String())
}
