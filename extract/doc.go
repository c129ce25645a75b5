// Package extract recovers transit data from parsed endpoint payloads.
//
// The payload format is positional, unversioned, and private to the upstream
// service, so nothing here decodes by schema. Instead the package walks the
// whole tree and classifies subtrees by shape: a route badge is a small list
// carrying a short code and a #rrggbb color, a timed stop entry is a list
// that opens with a plausible stop name and holds a recognizable time block,
// and so on. The matchers are deliberately heuristic and every comparison
// threshold lives in Tuning so a payload format shift can be absorbed by
// configuration before it needs code.
//
// Matching policies are fixed: the stop-sequence and origin/destination
// finders keep the LAST subtree matched in pre-order, because the service
// renders summary fragments before the full data deeper in the document.
// Badge and place lookups keep the FIRST match.
//
// Extraction anomalies that do not abort a run (a sequence with no
// resolvable route badge, stops without coordinates) are counted by a
// WarningAggregator and logged once per document rather than per occurrence.
package extract
