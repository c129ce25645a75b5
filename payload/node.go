package payload

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// IsInt reports whether n is a JSON number written as an integer literal,
// with no fraction or exponent. The upstream format distinguishes 5 from
// 5.0, so the check runs on the raw token rather than the decoded value.
func IsInt(n gjson.Result) bool {
	return n.Type == gjson.Number && !strings.ContainsAny(n.Raw, ".eE")
}

// Walk visits n and every descendant in pre-order: array elements by index,
// object members in document order. The visitor returns false to stop the
// walk. The path passed to the visitor is reused between calls; Clone it
// before retaining.
func Walk(n gjson.Result, visit func(n gjson.Result, path Path) bool) {
	var scratch Path
	walkNode(n, &scratch, visit)
}

func walkNode(n gjson.Result, scratch *Path, visit func(gjson.Result, Path) bool) bool {
	if !visit(n, *scratch) {
		return false
	}
	isArray := n.IsArray()
	if !isArray && !n.IsObject() {
		return true
	}
	cont := true
	i := 0
	n.ForEach(func(k, v gjson.Result) bool {
		var seg string
		if isArray {
			seg = strconv.Itoa(i)
		} else {
			seg = escapeKey(k.Str)
		}
		i++
		*scratch = append(*scratch, seg)
		cont = walkNode(v, scratch, visit)
		*scratch = (*scratch)[:len(*scratch)-1]
		return cont
	})
	return cont
}

var keyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`#`, `\#`,
	`|`, `\|`,
)

func escapeKey(k string) string {
	return keyEscaper.Replace(k)
}
