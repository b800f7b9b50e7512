package domain

import (
	"errors"
	"strings"
	"testing"
)

// validUnit returns a unit satisfying all eight count invariants:
// 10 total, 3+7 bedrooms, income split of 10, all counted 10.
func validUnit() *HousingUnit {
	return &HousingUnit{
		ProjectID:                 "44218",
		StreetName:                "3 AVENUE",
		Borough:                   "Brooklyn",
		Postcode:                  10035,
		ConstructionType:          "New Construction",
		TotalUnits:                10,
		CountedRentalUnits:        0,
		OneBRUnits:                3,
		TwoBRUnits:                7,
		CountedHomeownershipUnits: 10,
		AllCountedUnits:           10,
		LowIncomeUnits:            4,
		ModerateIncomeUnits:       6,
	}
}

func TestSanityCheck_Valid(t *testing.T) {
	if err := SanityCheck(validUnit()); err != nil {
		t.Fatalf("expected valid unit to pass, got %v", err)
	}
}

func TestSanityCheck_NilRecord(t *testing.T) {
	err := SanityCheck(nil)
	if err == nil {
		t.Fatal("expected error for nil record")
	}
	var de *Error
	if !errors.As(err, &de) || de.Kind != KindMissingArgument {
		t.Fatalf("expected MissingArgumentError, got %v", err)
	}
}

func TestSanityCheck_RentalUnitsViolation(t *testing.T) {
	h := validUnit()
	h.CountedRentalUnits = 20

	err := SanityCheck(h)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var de *Error
	if !errors.As(err, &de) || de.Kind != KindValidation {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(de.Message, "can't be greater than the counted rental units") {
		t.Fatalf("unexpected message: %q", de.Message)
	}
}

func TestSanityCheck_AggregatesAllViolations(t *testing.T) {
	// total=5 < rental=20 (1), bedrooms=10 > total (2), income=10 > total (6),
	// bedrooms < homeownership=15 (4), income < homeownership (8),
	// bedrooms != all_counted=12 (3), income != all_counted (7).
	h := validUnit()
	h.TotalUnits = 5
	h.CountedRentalUnits = 20
	h.CountedHomeownershipUnits = 15
	h.AllCountedUnits = 12

	err := SanityCheck(h)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error, got %v", err)
	}

	parts := strings.Split(de.Message, ", ")
	if len(parts) != 7 {
		t.Fatalf("expected 7 comma-joined violations, got %d: %q", len(parts), de.Message)
	}
	for _, want := range []string{
		"counted rental units",
		"bedroom units can't be greater than the total units",
		"bedroom units must be equal to the all counted units",
		"bedroom units can't be smaller than the counted homeownership units",
		"income units can't be greater than the total units",
		"income units must be equal to the all counted units",
		"income units can't be smaller than the counted homeownership units",
	} {
		if !strings.Contains(de.Message, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestSanityCheck_IncomeBedroomMismatch(t *testing.T) {
	h := validUnit()
	h.LowIncomeUnits = 2 // income sum 8, bedroom sum 10

	err := SanityCheck(h)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var de *Error
	errors.As(err, &de)
	if !strings.Contains(de.Message, "income units must be equal to the sum of the bedroom units") {
		t.Fatalf("unexpected message: %q", de.Message)
	}
	// income sum 8 != all_counted 10 also fails: two violations total.
	if got := len(strings.Split(de.Message, ", ")); got != 2 {
		t.Fatalf("expected 2 violations, got %d: %q", got, de.Message)
	}
}
