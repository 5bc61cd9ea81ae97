package types

import (
	"testing"
)

func TestCountryGroupsNormalize(t *testing.T) {
	t.Parallel()

	groups := CountryGroups{
		" gulf ": {" ae", "sa ", ""},
		"EU":     {"de", "FR"},
	}

	normalized, err := groups.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(normalized) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(normalized))
	}
	if !normalized.Contains("GULF", "AE") || !normalized.Contains("gulf", "ae") {
		t.Fatal("expected case-insensitive membership")
	}
	if normalized.Contains("EU", "AE") {
		t.Fatal("unexpected membership")
	}
}

func TestCountryGroupsNormalizeRejectsOverlap(t *testing.T) {
	t.Parallel()

	groups := CountryGroups{
		"GULF": {"AE", "SA"},
		"MENA": {"EG", "ae"},
	}

	if _, err := groups.Normalize(); err == nil {
		t.Fatal("expected overlap error")
	}
}

func TestCountryGroupsNormalizeEmpty(t *testing.T) {
	t.Parallel()

	var groups CountryGroups
	normalized, err := groups.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized != nil {
		t.Fatalf("expected nil map, got %v", normalized)
	}
}

func TestCountryGroupsDuplicateWithinGroup(t *testing.T) {
	t.Parallel()

	groups := CountryGroups{"GULF": {"AE", "ae"}}
	normalized, err := groups.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(normalized["GULF"]) != 1 {
		t.Fatalf("expected deduplicated group, got %v", normalized["GULF"])
	}
}
