// Package payload turns a raw endpoint response into a walkable JSON tree.
//
// Responses arrive as UTF-8 text, optionally prefixed with a single
// anti-hijacking sentinel line that must be stripped before parsing. The
// remaining document is an undocumented, deeply nested positional array
// format private to the upstream service; it is parsed with gjson so that
// traversal follows document order exactly (array index order, then object
// key order). The structural matchers in package extract depend on that
// ordering for their first-match and last-match policies.
package payload
