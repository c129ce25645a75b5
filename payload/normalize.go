package payload

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// antiHijackSentinel is the fixed line the upstream service prepends to JSON
// responses. Only a first line that equals it exactly is stripped.
const antiHijackSentinel = ")]}'"

// ParseError reports a response body that is not valid JSON once the
// anti-hijacking sentinel has been stripped.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "payload: " + e.Reason
}

// Normalize strips the anti-hijacking sentinel line when present and returns
// the remaining document. Input without the sentinel passes through
// unchanged; a sentinel anywhere but the first line is left alone.
func Normalize(raw []byte) []byte {
	head, tail, hasNewline := bytes.Cut(raw, []byte{'\n'})
	head = bytes.TrimSuffix(head, []byte{'\r'})
	if string(head) != antiHijackSentinel {
		return raw
	}
	if !hasNewline {
		return nil
	}
	return tail
}

// Parse normalizes raw and parses the remainder. It returns a *ParseError
// when nothing parseable is left.
func Parse(raw []byte) (gjson.Result, error) {
	doc := Normalize(raw)
	if len(bytes.TrimSpace(doc)) == 0 {
		return gjson.Result{}, &ParseError{Reason: "empty document after sentinel strip"}
	}
	if !gjson.ValidBytes(doc) {
		return gjson.Result{}, &ParseError{Reason: "invalid JSON after sentinel strip"}
	}
	return gjson.ParseBytes(doc), nil
}

// CleanJSON normalizes raw and re-renders it indented, for saving a
// human-readable copy of the payload next to the extracted output.
func CleanJSON(raw []byte) ([]byte, error) {
	doc := Normalize(raw)
	if !gjson.ValidBytes(doc) {
		return nil, &ParseError{Reason: "invalid JSON after sentinel strip"}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
