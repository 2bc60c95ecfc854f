package employee

import (
	"strings"
	"time"
)

// Type is the compensation model of an employee. It decides which
// payroll formula applies; the textual variants coming from clients or
// legacy rows are normalized once, at the data-model boundary, and the
// calculator never compares raw strings.
type Type string

const (
	TypeProduction Type = "Producción"
	TypeDailyRate  Type = "Al Día"
	TypeUnknown    Type = ""
)

// ParseType normalizes the textual type variants seen in the wild
// ("Producción"/"Produccion"/"Production", "Al Día"/"Al Dia"/...) to
// the closed enum. Anything else maps to TypeUnknown.
func ParseType(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "producción", "produccion", "production":
		return TypeProduction
	case "al día", "al dia", "aldia", "al_dia", "dailyrate", "daily_rate":
		return TypeDailyRate
	default:
		return TypeUnknown
	}
}

func (t Type) IsProduction() bool {
	return t == TypeProduction
}

func (t Type) IsDailyRate() bool {
	return t == TypeDailyRate
}

func (t Type) IsValid() bool {
	return t == TypeProduction || t == TypeDailyRate
}

type Employee struct {
	ID            int64
	DNI           string
	Name          string
	Type          Type
	MonthlySalary float64
	PhotoURL      *string
	QRCodeURL     *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
