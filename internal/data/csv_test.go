package data

import (
	"math"
	"strings"
	"testing"
)

const fixtureCSV = `Category,Type,Source,LCOE,LCOE Low,LCOE High
Coal,Supercritical,EIA,7.6,6.0,9.1
Solar,Photovoltaics,Lazard,,3.2,4.2
Wind,Onshore Wind,IRENA,4.0,,
Coal,Depreciated Coal,EIA,3.5,,
Nuclear,Nuclear,World Nuclear,,,
Natural Gas,Combined Cycle,EIA,not-a-number,,
`

func TestParseCSV(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(ds.Estimates) != 4 {
		t.Fatalf("got %d estimates, want 4", len(ds.Estimates))
	}
	// The value-less Nuclear row and the unparseable Natural Gas row
	// are skipped and counted.
	if ds.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", ds.Skipped)
	}

	first := ds.Estimates[0]
	if first.Category != "Coal" || first.Type != "Supercritical" || first.Source != "EIA" {
		t.Errorf("unexpected first estimate: %+v", first)
	}
	if first.LCOE != 7.6 || first.LCOELow != 6.0 || first.LCOEHigh != 9.1 {
		t.Errorf("unexpected first estimate values: %+v", first)
	}
}

func TestParseCSVHeaderNormalization(t *testing.T) {
	csv := "category,TYPE,lcoe low,LCOE-High,lcoe\nCoal,Coal,6,9,\n"
	ds, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(ds.Estimates) != 1 {
		t.Fatalf("got %d estimates, want 1", len(ds.Estimates))
	}
	e := ds.Estimates[0]
	if e.LCOELow != 6 || e.LCOEHigh != 9 {
		t.Errorf("header mapping failed: %+v", e)
	}
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	csv := "Source,LCOE\nEIA,7\n"
	if _, err := ParseCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for CSV without category/type columns")
	}
}

func TestPrepare(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	groups := Prepare(ds.Estimates, PrepareOptions{
		ExcludedTypes:   []string{"Depreciated Coal"},
		CategoryRenames: map[string]string{"Photovoltaics": "Solar PV"},
	})

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3: %+v", len(groups), groups)
	}

	// First-appearance order.
	wantOrder := []string{"Coal", "Solar PV", "Wind"}
	for i, w := range wantOrder {
		if groups[i].Name != w {
			t.Errorf("group %d = %q, want %q", i, groups[i].Name, w)
		}
	}

	// Every kept estimate contributes exactly low, central, high.
	for _, g := range groups {
		if len(g.Values) != 3 {
			t.Errorf("group %q has %d values, want 3", g.Name, len(g.Values))
		}
	}

	// Missing central value imputes to the midpoint of low and high.
	solar := groups[1]
	wantMid := (3.2 + 4.2) / 2
	found := false
	for _, v := range solar.Values {
		if math.Abs(v-wantMid) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Errorf("Solar PV values %v missing imputed midpoint %g", solar.Values, wantMid)
	}

	// A single estimate imputes low and high to the central value.
	wind := groups[2]
	for _, v := range wind.Values {
		if v != 4.0 {
			t.Errorf("Wind values %v, want all 4.0", wind.Values)
			break
		}
	}
}

func TestPrepareExcludesType(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	groups := Prepare(ds.Estimates, PrepareOptions{
		ExcludedTypes: []string{"Depreciated Coal"},
	})
	for _, g := range groups {
		if g.Name == "Coal" && len(g.Values) != 3 {
			t.Errorf("excluded type leaked into Coal group: %v", g.Values)
		}
	}
}
