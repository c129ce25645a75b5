// Package report assembles extraction results into the output documents the
// tool writes: a stop-sequence JSON file and a bus-schedule report in text
// and structured JSON form. Field names and the text layout are stable;
// downstream consumers parse them.
package report
