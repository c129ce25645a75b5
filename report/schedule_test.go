package report

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/PowerX-NOT/gmaps-script/extract"
)

func TestBuildScheduleRouteOrder(t *testing.T) {
	sections := []string{"355-A", "600-FC"}
	records := []extract.ScheduleRecord{
		{Route: "BC-3A", Stop: "Jigani APC Circle", Time: "8:10 AM"},
	}

	rep := BuildSchedule("APC Circle Area", sections, records)

	wantBuses := []string{"355-A", "600-FC", "BC-3A"}
	if len(rep.Buses) != len(wantBuses) {
		t.Fatalf("buses = %v, want %v", rep.Buses, wantBuses)
	}
	for i, want := range wantBuses {
		if rep.Buses[i] != want {
			t.Errorf("bus %d = %q, want %q", i, rep.Buses[i], want)
		}
	}
	if len(rep.Timetable) != 1 {
		t.Fatalf("timetable rows = %d, want 1", len(rep.Timetable))
	}
	row := rep.Timetable[0]
	if row.Mode != "Bus" || row.Route != "BC-3A" || row.Towords != "Jigani APC Circle" || row.Time != "8:10 AM" {
		t.Errorf("row = %+v", row)
	}
	t.Logf("✓ section routes listed first, record-only routes appended")
}

func TestBuildScheduleDoesNotRepeatSectionRoutes(t *testing.T) {
	sections := []string{"355-A"}
	records := []extract.ScheduleRecord{
		{Route: "355-A", Stop: "Silk Board", Time: "8:25 AM"},
		{Route: "355-A", Stop: "Jigani APC Circle", Time: "8:40 AM"},
	}

	rep := BuildSchedule("Silk Board", sections, records)
	if len(rep.Buses) != 1 || rep.Buses[0] != "355-A" {
		t.Errorf("buses = %v, want [355-A]", rep.Buses)
	}
	if len(rep.Timetable) != 2 {
		t.Errorf("timetable rows = %d, want 2", len(rep.Timetable))
	}
}

func TestScheduleReportText(t *testing.T) {
	rep := BuildSchedule("APC Circle Area",
		[]string{"355-A", "600-FC"},
		[]extract.ScheduleRecord{
			{Route: "BC-3A", Stop: "Jigani APC Circle", Time: "8:10 AM"},
		})

	want := "APC Circle Area\n" +
		"Buses\n" +
		"355-A\n" +
		"600-FC\n" +
		"BC-3A\n" +
		"Bus BC-3A\tJigani APC Circle\t8:10 AM\n"

	if got := string(rep.Text()); got != want {
		t.Errorf("text report:\n got %q\nwant %q", got, want)
	}
}

func TestScheduleReportTextEmptyPlace(t *testing.T) {
	rep := BuildSchedule("", []string{"355-A"}, nil)

	want := "\nBuses\n355-A\n"
	if got := string(rep.Text()); got != want {
		t.Errorf("text report:\n got %q\nwant %q", got, want)
	}
}

func TestScheduleReportJSON(t *testing.T) {
	rep := BuildSchedule("APC Circle Area",
		[]string{"355-A"},
		[]extract.ScheduleRecord{
			{Route: "BC-3A", Stop: "Jigani APC Circle", Time: "8:10 AM"},
		})

	out := rep.JSON()
	if got := gjson.GetBytes(out, "place").Str; got != "APC Circle Area" {
		t.Errorf("place = %q", got)
	}
	if got := gjson.GetBytes(out, "buses.#").Int(); got != 2 {
		t.Errorf("buses length = %d, want 2", got)
	}
	if got := gjson.GetBytes(out, "timetable.0.towords").Str; got != "Jigani APC Circle" {
		t.Errorf("towords = %q, want Jigani APC Circle", got)
	}
	if got := gjson.GetBytes(out, "timetable.0.mode").Str; got != "Bus" {
		t.Errorf("mode = %q, want Bus", got)
	}
}
