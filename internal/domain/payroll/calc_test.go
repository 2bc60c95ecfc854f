package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductionDay(t *testing.T) {
	rates := DefaultRates()

	pay := rates.ProductionDay(ProductionInput{Despalillo: 2, Escogida: 3, Monado: 10})

	assert.Equal(t, 160.0, pay.TDespalillo)
	assert.Equal(t, 210.0, pay.TEscogida)
	assert.Equal(t, 10.0, pay.TMonado)
	assert.Equal(t, 380.0, pay.Total)
	assert.InDelta(t, 34.55, Round2(pay.SaturdayBonus), 0.001)
	assert.InDelta(t, 69.09, Round2(pay.SeventhDay), 0.001)
	assert.InDelta(t, pay.Total+pay.SaturdayBonus+pay.SeventhDay, pay.NetPay, 0.0001)
}

func TestProductionDayZeroCounts(t *testing.T) {
	rates := DefaultRates()

	pay := rates.ProductionDay(ProductionInput{})

	assert.Zero(t, pay.Total)
	assert.Zero(t, pay.SaturdayBonus)
	assert.Zero(t, pay.SeventhDay)
	assert.Zero(t, pay.NetPay)
}

func TestProductionPeriodMatchesSummedDays(t *testing.T) {
	rates := DefaultRates()

	day1 := rates.ProductionDay(ProductionInput{Despalillo: 1, Escogida: 2, Monado: 5})
	day2 := rates.ProductionDay(ProductionInput{Despalillo: 3, Escogida: 1, Monado: 0})

	period := rates.ProductionPeriod(
		day1.TDespalillo+day2.TDespalillo,
		day1.TEscogida+day2.TEscogida,
		day1.TMonado+day2.TMonado,
	)

	// Supplements are linear in the total, so summing per-day values
	// and recomputing on the aggregate must agree.
	assert.InDelta(t, day1.NetPay+day2.NetPay, period.NetPay, 0.0001)
}

func TestDailyRatePeriod(t *testing.T) {
	rates := DefaultRates()

	pay := rates.DailyRatePeriod(9000, 4, 6)

	assert.Equal(t, 300.0, pay.DailySalary)
	assert.Equal(t, 46.875, pay.OvertimeHourValue)
	assert.Equal(t, 187.5, pay.OvertimeMoney)
	assert.Equal(t, 300.0, pay.SeventhDay) // 6 days >= threshold
	assert.Equal(t, 1800.0, pay.BasePay)
	assert.Equal(t, 2287.5, pay.NetPay)
}

func TestDailyRatePeriodBelowSeventhDayThreshold(t *testing.T) {
	rates := DefaultRates()

	pay := rates.DailyRatePeriod(9000, 0, 4)

	assert.Zero(t, pay.SeventhDay)
	assert.Equal(t, 1200.0, pay.NetPay)
}

func TestDailyRateDayNeverPaysSeventhDay(t *testing.T) {
	rates := DefaultRates()

	pay := rates.DailyRateDay(9000, 2)

	assert.Zero(t, pay.SeventhDay)
	assert.Equal(t, 300.0+2*46.875, pay.NetPay)
}

func TestDailyRateZeroOvertime(t *testing.T) {
	rates := DefaultRates()

	pay := rates.DailyRateDay(6000, 0)

	assert.Equal(t, 200.0, pay.DailySalary)
	assert.Zero(t, pay.OvertimeMoney)
	assert.Equal(t, 200.0, pay.NetPay)
}

func TestDailyRateZeroSalaryNoNaN(t *testing.T) {
	rates := DefaultRates()

	pay := rates.DailyRatePeriod(0, 3, 6)

	assert.Zero(t, pay.NetPay)
	assert.Zero(t, Round2(pay.NetPay))
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{34.545542, 34.55},
		{69.09084, 69.09},
		{2287.5, 2287.5},
		{0, 0},
		{1.005, 1.0}, // binary representation of 1.005 is just below the midpoint
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Round2(c.in), 0.0001)
	}
}
