package payload

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	doc := gjson.Parse(`["a",{"k1":[1,2],"k2":"b"},3]`)

	var visited []string
	Walk(doc, func(n gjson.Result, path Path) bool {
		if !n.IsArray() && !n.IsObject() {
			visited = append(visited, path.String()+"="+n.String())
		}
		return true
	})

	want := []string{"0=a", "1.k1.0=1", "1.k1.1=2", "1.k2=b", "2=3"}
	if len(visited) != len(want) {
		t.Fatalf("visited %d leaves, want %d: %v", len(visited), len(want), visited)
	}
	for i, w := range want {
		if visited[i] != w {
			t.Errorf("visit %d = %q, want %q", i, visited[i], w)
		}
	}
	t.Logf("✓ pre-order traversal: array index order, then object key order")
}

func TestWalkStopsWhenVisitorReturnsFalse(t *testing.T) {
	doc := gjson.Parse(`[[1,2],[3,4],[5,6]]`)

	visits := 0
	Walk(doc, func(n gjson.Result, _ Path) bool {
		visits++
		return n.String() != "2"
	})

	// Root, the first pair, 1, 2. Nothing after the stop node.
	if visits != 4 {
		t.Errorf("visited %d nodes after early stop, want 4", visits)
	}
}

func TestWalkPathResolvesBack(t *testing.T) {
	doc := gjson.Parse(`[["x"],{"a.b":[null,"target"]}]`)

	var hits int
	Walk(doc, func(n gjson.Result, path Path) bool {
		if n.Type == gjson.String && n.Str == "target" {
			hits++
			back := Resolve(doc, path.Clone())
			if back.Str != "target" {
				t.Errorf("Resolve(%q) = %q, want %q", path.String(), back.Str, "target")
			}
			if !strings.Contains(path.String(), `a\.b`) {
				t.Errorf("path %q does not escape the dotted key", path.String())
			}
		}
		return true
	})
	if hits != 1 {
		t.Fatalf("found target %d times, want 1", hits)
	}
}

func TestResolveEmptyPathIsRoot(t *testing.T) {
	doc := gjson.Parse(`[1,2]`)
	if got := Resolve(doc, nil); got.Raw != doc.Raw {
		t.Errorf("Resolve with empty path = %s, want root", got.Raw)
	}
}

func TestIsInt(t *testing.T) {
	doc := gjson.Parse(`[5, -3, 5.0, 2.5, 1e3, "5", null, [5]]`)
	els := doc.Array()

	tests := []struct {
		idx  int
		want bool
	}{
		{0, true},   // 5
		{1, true},   // -3
		{2, false},  // 5.0 carries a fraction on the wire
		{3, false},  // 2.5
		{4, false},  // exponent form
		{5, false},  // string
		{6, false},  // null
		{7, false},  // array
	}

	for _, tc := range tests {
		if got := IsInt(els[tc.idx]); got != tc.want {
			t.Errorf("IsInt(%s) = %v, want %v", els[tc.idx].Raw, got, tc.want)
		}
	}
}
