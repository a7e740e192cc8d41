package locale

import (
	"testing"
	"time"

	"worklog/internal/core"
)

func TestLookupFallback(t *testing.T) {
	unknown := Lookup(core.CountryCode("XX"))
	def := Lookup(DefaultCountry)

	if unknown.Currency != def.Currency {
		t.Errorf("fallback currency = %q, want %q", unknown.Currency, def.Currency)
	}
	if unknown.StandardHours != def.StandardHours {
		t.Errorf("fallback standard hours = %v, want %v", unknown.StandardHours, def.StandardHours)
	}
	if unknown.WeekStart != def.WeekStart {
		t.Errorf("fallback week start = %v, want %v", unknown.WeekStart, def.WeekStart)
	}
	if Known(core.CountryCode("XX")) {
		t.Errorf("XX must not be a known country")
	}
}

func TestWeekStartClassification(t *testing.T) {
	sundayStart := []core.CountryCode{UnitedStates, China, India, SaudiArabia, Mexico, Iran}
	mondayStart := []core.CountryCode{Turkey, Germany, Russia, Indonesia}

	for _, c := range sundayStart {
		if Lookup(c).WeekStart != time.Sunday {
			t.Errorf("%s: expected Sunday start", c)
		}
	}
	for _, c := range mondayStart {
		if Lookup(c).WeekStart != time.Monday {
			t.Errorf("%s: expected Monday start", c)
		}
	}
}

func TestStandardHoursDefaults(t *testing.T) {
	if got := Lookup(Turkey).StandardHours; got != 9 {
		t.Errorf("TR standard hours = %v, want 9", got)
	}
	if got := Lookup(India).StandardHours; got != 9 {
		t.Errorf("IN standard hours = %v, want 9", got)
	}
	if got := Lookup(Germany).StandardHours; got != 8 {
		t.Errorf("DE standard hours = %v, want 8", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(UnitedStates, 1); got != "January" {
		t.Errorf("US month 1 = %q", got)
	}
	if got := MonthLabel(Germany, 3); got != "März" {
		t.Errorf("DE month 3 = %q", got)
	}
	if got := MonthLabel(core.CountryCode("XX"), 1); got != "Ocak" {
		t.Errorf("fallback month 1 = %q, want Turkish label", got)
	}
	if got := MonthLabel(UnitedStates, 0); got != "" {
		t.Errorf("month 0 = %q, want empty", got)
	}
	if got := MonthLabel(UnitedStates, 13); got != "" {
		t.Errorf("month 13 = %q, want empty", got)
	}
}

func TestCodesCoverPolicyTable(t *testing.T) {
	for _, c := range Codes() {
		if !Known(c) {
			t.Errorf("listed code %s has no policy entry", c)
		}
	}
	if len(Codes()) != 10 {
		t.Errorf("expected 10 supported countries, got %d", len(Codes()))
	}
}
