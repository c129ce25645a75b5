package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PowerX-NOT/gmaps-script/extract"
)

// TimetableEntry is one serialized schedule row. The towords field name is
// the established wire name for the stop column; existing consumers parse
// it, so the spelling stays.
type TimetableEntry struct {
	Mode    string `json:"mode"`
	Route   string `json:"route"`
	Towords string `json:"towords"`
	Time    string `json:"time"`
}

// ScheduleReport is the bus-schedule output document.
type ScheduleReport struct {
	Place     string           `json:"place"`
	Buses     []string         `json:"buses"`
	Timetable []TimetableEntry `json:"timetable"`
}

const busMode = "Bus"

// BuildSchedule assembles the schedule output. The route list opens with the
// payload's own route section in its order; routes known only from timetable
// records follow in first-appearance order.
func BuildSchedule(place string, sectionRoutes []string, records []extract.ScheduleRecord) *ScheduleReport {
	rep := &ScheduleReport{
		Place:     place,
		Buses:     make([]string, 0, len(sectionRoutes)),
		Timetable: make([]TimetableEntry, 0, len(records)),
	}

	known := make(map[string]struct{}, len(sectionRoutes))
	for _, r := range sectionRoutes {
		rep.Buses = append(rep.Buses, r)
		known[r] = struct{}{}
	}

	for _, rec := range records {
		if _, ok := known[rec.Route]; !ok {
			known[rec.Route] = struct{}{}
			rep.Buses = append(rep.Buses, rec.Route)
		}
		rep.Timetable = append(rep.Timetable, TimetableEntry{
			Mode:    busMode,
			Route:   rec.Route,
			Towords: rec.Stop,
			Time:    rec.Time,
		})
	}
	return rep
}

// Text renders the human-readable report: the place name, a Buses header,
// one route per line, then tab-separated timetable rows.
func (r *ScheduleReport) Text() []byte {
	var b strings.Builder
	b.WriteString(r.Place)
	b.WriteByte('\n')
	b.WriteString("Buses\n")
	for _, route := range r.Buses {
		b.WriteString(route)
		b.WriteByte('\n')
	}
	for _, e := range r.Timetable {
		fmt.Fprintf(&b, "%s %s\t%s\t%s\n", e.Mode, e.Route, e.Towords, e.Time)
	}
	return []byte(b.String())
}

// JSON renders the report indented with a trailing newline.
func (r *ScheduleReport) JSON() []byte {
	b, _ := json.MarshalIndent(r, "", "  ")
	return append(b, '\n')
}
