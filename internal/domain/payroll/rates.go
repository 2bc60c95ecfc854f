package payroll

// Rates carries every monetary constant the calculator uses. Values are
// injected (see config.loadRates); nothing in the formulas is hard-coded.
type Rates struct {
	// Piece-rate unit prices, in lempiras per unit produced.
	DespalilloPrice float64
	EscogidaPrice   float64
	MonadoPrice     float64

	// Statutory supplements, as fractions of piece-rate earnings.
	SaturdayFactor   float64
	SeventhDayFactor float64

	// Al Día parameters.
	OvertimePremium float64
	DaysPerMonth    float64
	HoursPerDay     float64

	// Minimum days worked in a period before the seventh (rest) day
	// is paid to an Al Día employee.
	SeventhDayMinDays int
}

// DefaultRates returns the statutory rates currently in force.
func DefaultRates() Rates {
	return Rates{
		DespalilloPrice:   80,
		EscogidaPrice:     70,
		MonadoPrice:       1,
		SaturdayFactor:    0.090909,
		SeventhDayFactor:  0.181818,
		OvertimePremium:   1.25,
		DaysPerMonth:      30,
		HoursPerDay:       8,
		SeventhDayMinDays: 5,
	}
}
