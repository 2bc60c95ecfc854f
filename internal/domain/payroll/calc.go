// Package payroll implements the pay calculation rules for the two
// compensation models: piece-rate production workers ("Producción") and
// daily-rate employees ("Al Día"). The functions are pure; callers feed
// them attendance figures and employee master data and round the results
// with Round2 at the point of external exposure.
package payroll

import "math"

// ProductionInput is a set of piece counts for the three production tasks.
type ProductionInput struct {
	Despalillo float64
	Escogida   float64
	Monado     float64
}

// ProductionPay is the monetary breakdown for a production employee.
type ProductionPay struct {
	TDespalillo   float64
	TEscogida     float64
	TMonado       float64
	Total         float64
	SaturdayBonus float64
	SeventhDay    float64
	NetPay        float64
}

// ProductionDay converts one day's piece counts into money. The same
// rule is applied at clock-out (derived fields stored on the record)
// and reproduced at report time.
func (r Rates) ProductionDay(in ProductionInput) ProductionPay {
	return r.productionFromTotals(
		in.Despalillo*r.DespalilloPrice,
		in.Escogida*r.EscogidaPrice,
		in.Monado*r.MonadoPrice,
	)
}

// ProductionPeriod computes period pay from task totals that have
// already been summed across records. The Saturday and seventh-day
// supplements are taken on the period total, not per day.
func (r Rates) ProductionPeriod(tDespalillo, tEscogida, tMonado float64) ProductionPay {
	return r.productionFromTotals(tDespalillo, tEscogida, tMonado)
}

func (r Rates) productionFromTotals(tDespalillo, tEscogida, tMonado float64) ProductionPay {
	total := tDespalillo + tEscogida + tMonado
	saturday := total * r.SaturdayFactor
	seventh := total * r.SeventhDayFactor
	return ProductionPay{
		TDespalillo:   tDespalillo,
		TEscogida:     tEscogida,
		TMonado:       tMonado,
		Total:         total,
		SaturdayBonus: saturday,
		SeventhDay:    seventh,
		NetPay:        total + saturday + seventh,
	}
}

// DailyRatePay is the monetary breakdown for an Al Día employee.
type DailyRatePay struct {
	DailySalary       float64
	OvertimeHourValue float64
	OvertimeMoney     float64
	SeventhDay        float64
	BasePay           float64
	NetPay            float64
}

// DailyRatePeriod computes Al Día pay over a period. The seventh-day
// threshold is evaluated against the period's total worked days, so
// weekly aggregation must sum days across records before calling this
// (calling it once per day would award a rest day per record).
func (r Rates) DailyRatePeriod(monthlySalary, hoursExtra float64, daysWorked int) DailyRatePay {
	daily := monthlySalary / r.DaysPerMonth
	hourValue := daily / r.HoursPerDay * r.OvertimePremium
	overtime := hoursExtra * hourValue

	var seventh float64
	if daysWorked >= r.SeventhDayMinDays {
		seventh = daily
	}

	base := float64(daysWorked) * daily
	return DailyRatePay{
		DailySalary:       daily,
		OvertimeHourValue: hourValue,
		OvertimeMoney:     overtime,
		SeventhDay:        seventh,
		BasePay:           base,
		NetPay:            base + overtime + seventh,
	}
}

// DailyRateDay is the single-day case used at clock-out and on the
// daily report (days worked is implicitly 1, so no seventh day).
func (r Rates) DailyRateDay(monthlySalary, hoursExtra float64) DailyRatePay {
	return r.DailyRatePeriod(monthlySalary, hoursExtra, 1)
}

// Round2 rounds a monetary amount to 2 decimal places. Intermediate
// calculations keep full precision; only exposed values are rounded.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
