package employee

import "testing"

func TestParseType(t *testing.T) {
	cases := []struct {
		input string
		want  Type
	}{
		{"Producción", TypeProduction},
		{"Produccion", TypeProduction},
		{"production", TypeProduction},
		{"  PRODUCCIÓN  ", TypeProduction},
		{"Al Día", TypeDailyRate},
		{"Al Dia", TypeDailyRate},
		{"al_dia", TypeDailyRate},
		{"DailyRate", TypeDailyRate},
		{"contractor", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, c := range cases {
		if got := ParseType(c.input); got != c.want {
			t.Errorf("ParseType(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestTypePredicates(t *testing.T) {
	if !TypeProduction.IsProduction() || TypeProduction.IsDailyRate() {
		t.Error("TypeProduction predicates wrong")
	}
	if !TypeDailyRate.IsDailyRate() || TypeDailyRate.IsProduction() {
		t.Error("TypeDailyRate predicates wrong")
	}
	if TypeUnknown.IsValid() {
		t.Error("TypeUnknown must not be valid")
	}
}
