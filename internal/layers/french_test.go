package layers

import "testing"

func TestLabelClasse(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"Site classé", true},
		{"site classe de la vallée", true},
		{"Sites classés du littoral", true},
		{"Forêt classée", true},
		{"Zones classées", true},
		{"CLASSÉ", true},
		{"classement au titre des sites", false},
		{"déclassement", false},
		{"Site inscrit", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := LabelClasse(tc.label); got != tc.want {
			t.Errorf("LabelClasse(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestLabelInscrit(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"Site inscrit", true},
		{"sites inscrits des coteaux", true},
		{"Butte inscrite", true},
		{"zones inscrites", true},
		{"INSCRIT", true},
		{"inscription sur la liste", false},
		{"Site classé", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := LabelInscrit(tc.label); got != tc.want {
			t.Errorf("LabelInscrit(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}
