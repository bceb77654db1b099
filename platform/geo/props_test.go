package geo

import (
	"testing"

	"github.com/paulmach/orb/geojson"
)

func TestStringPropCaseVariants(t *testing.T) {
	props := geojson.Properties{"SECTION": "AB"}
	if got := StringProp(props, "", "section"); got != "AB" {
		t.Fatalf("StringProp = %q, want AB", got)
	}
}

func TestStringPropExactBeforeVariants(t *testing.T) {
	props := geojson.Properties{"section": "lower", "SECTION": "upper"}
	if got := StringProp(props, "", "section"); got != "lower" {
		t.Fatalf("StringProp = %q, want the exact-case value", got)
	}
}

func TestStringPropCandidateOrder(t *testing.T) {
	props := geojson.Properties{"sup_code": "AC1", "suptype": "AC4"}
	if got := StringProp(props, "", "suptype", "sup_code"); got != "AC4" {
		t.Fatalf("StringProp = %q, want first candidate to win", got)
	}
}

func TestStringPropSkipsEmptyValues(t *testing.T) {
	props := geojson.Properties{"code": "", "suptype": "AC4"}
	if got := StringProp(props, "", "code", "suptype"); got != "AC4" {
		t.Fatalf("StringProp = %q, want empty value skipped", got)
	}
}

func TestStringPropDefault(t *testing.T) {
	props := geojson.Properties{"other": "x"}
	if got := StringProp(props, "n/a", "missing"); got != "n/a" {
		t.Fatalf("StringProp = %q, want caller default", got)
	}
}

func TestStringPropNumeric(t *testing.T) {
	props := geojson.Properties{"insee": 75056.0}
	if got := StringProp(props, "", "insee"); got != "75056" {
		t.Fatalf("StringProp = %q, want formatted number", got)
	}
}

func TestIDString(t *testing.T) {
	if got := IDString("zone.1"); got != "zone.1" {
		t.Errorf("IDString(string) = %q", got)
	}
	if got := IDString(12.0); got != "12" {
		t.Errorf("IDString(number) = %q", got)
	}
	if got := IDString(nil); got != "" {
		t.Errorf("IDString(nil) = %q", got)
	}
}
