package model

import "testing"

func TestImputedMidpoint(t *testing.T) {
	e := Estimate{Category: "Solar", Type: "Photovoltaics", LCOELow: 3, LCOEHigh: 5}
	got := e.Imputed()
	if got.LCOE != 4 {
		t.Errorf("LCOE = %g, want midpoint 4", got.LCOE)
	}
	if got.LCOELow != 3 || got.LCOEHigh != 5 {
		t.Errorf("range changed: %+v", got)
	}
}

func TestImputedSingleValue(t *testing.T) {
	e := Estimate{Category: "Wind", Type: "Onshore Wind", LCOE: 4.5}
	got := e.Imputed()
	if got.LCOELow != 4.5 || got.LCOEHigh != 4.5 {
		t.Errorf("low/high = %g/%g, want 4.5/4.5", got.LCOELow, got.LCOEHigh)
	}
	vals := got.Values()
	for _, v := range vals {
		if v != 4.5 {
			t.Errorf("Values() = %v, want all 4.5", vals)
			break
		}
	}
}

func TestImputedKeepsReportedValues(t *testing.T) {
	e := Estimate{Category: "Coal", Type: "IGCC", LCOE: 9, LCOELow: 7, LCOEHigh: 12}
	if got := e.Imputed(); got != e {
		t.Errorf("fully-reported estimate changed: %+v", got)
	}
}

func TestUsable(t *testing.T) {
	if (Estimate{Category: "Nuclear", Type: "Nuclear"}).Usable() {
		t.Error("estimate with no values reported as usable")
	}
	if !(Estimate{Category: "Nuclear", Type: "Nuclear", LCOEHigh: 11}).Usable() {
		t.Error("estimate with only a high value reported as unusable")
	}
}
