package report

import (
	"context"
	"fmt"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/domain/payroll"
	"github.com/gjd78/planilla-backend/internal/domain/report"
	"github.com/gjd78/planilla-backend/internal/pkg/pdf"
)

type ReportServiceImpl struct {
	report.ReportRepository
	rates payroll.Rates
}

func NewReportService(reportRepo report.ReportRepository, rates payroll.Rates) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		rates:            rates,
	}
}

// employeePeriod accumulates one employee's records over the period.
// Components are summed first; the payroll formulas run once on the
// sums, so thresholds like the seventh day apply per period, not per
// record.
type employeePeriod struct {
	rec        attendance.Record // first record, for master data
	days       int
	tDesp      float64
	tEsc       float64
	tMon       float64
	hoursExtra float64
}

// Weekly implements report.ReportService.
func (s *ReportServiceImpl) Weekly(ctx context.Context, req report.WeeklyReportRequest) (report.WeeklyReport, error) {
	start, end, err := req.Validate()
	if err != nil {
		return report.WeeklyReport{}, err
	}

	records, err := s.ReportRepository.AttendanceInRange(ctx, start, end)
	if err != nil {
		return report.WeeklyReport{}, fmt.Errorf("failed to load attendance range: %w", err)
	}

	// Group by employee, keeping the repository's name ordering.
	var order []int64
	periods := make(map[int64]*employeePeriod)
	for i := range records {
		rec := &records[i]
		p, ok := periods[rec.EmployeeID]
		if !ok {
			p = &employeePeriod{rec: *rec}
			periods[rec.EmployeeID] = p
			order = append(order, rec.EmployeeID)
		}
		p.days++
		p.tDesp += rec.TDespalillo
		p.tEsc += rec.TEscogida
		p.tMon += rec.TMonado
		p.hoursExtra += rec.HoursExtra
	}

	rep := report.WeeklyReport{
		Start:      start.Format("2006-01-02"),
		End:        end.Format("2006-01-02"),
		Production: []report.ProductionRow{},
		AlDia:      []report.AlDiaRow{},
	}

	for _, id := range order {
		p := periods[id]
		switch {
		case p.rec.EmployeeType.IsProduction():
			pay := s.rates.ProductionPeriod(p.tDesp, p.tEsc, p.tMon)
			rep.Production = append(rep.Production, report.ProductionRow{
				EmployeeID:    id,
				Employee:      p.rec.EmployeeName,
				EmployeeType:  string(p.rec.EmployeeType),
				DaysWorked:    p.days,
				TDespalillo:   payroll.Round2(pay.TDespalillo),
				TEscogida:     payroll.Round2(pay.TEscogida),
				TMonado:       payroll.Round2(pay.TMonado),
				TotalProduced: payroll.Round2(pay.Total),
				PropSabado:    payroll.Round2(pay.SaturdayBonus),
				SeptimoDia:    payroll.Round2(pay.SeventhDay),
				NetPay:        payroll.Round2(pay.NetPay),
			})
			rep.Summary.TotalProductionEmployees++
			rep.Summary.TotalProductionPayroll += pay.NetPay

		case p.rec.EmployeeType.IsDailyRate():
			pay := s.rates.DailyRatePeriod(p.rec.MonthlySalary, p.hoursExtra, p.days)
			rep.AlDia = append(rep.AlDia, report.AlDiaRow{
				EmployeeID:    id,
				Employee:      p.rec.EmployeeName,
				EmployeeType:  string(p.rec.EmployeeType),
				MonthlySalary: p.rec.MonthlySalary,
				DaysWorked:    p.days,
				HoursExtra:    p.hoursExtra,
				DailySalary:   payroll.Round2(pay.DailySalary),
				OvertimeMoney: payroll.Round2(pay.OvertimeMoney),
				SeptimoDia:    payroll.Round2(pay.SeventhDay),
				NetPay:        payroll.Round2(pay.NetPay),
			})
			rep.Summary.TotalAlDiaEmployees++
			rep.Summary.TotalAlDiaPayroll += pay.NetPay
		}
		// Unrecognized types have no formula and stay out of both
		// partitions.
	}

	rep.Summary.TotalEmployees = rep.Summary.TotalProductionEmployees + rep.Summary.TotalAlDiaEmployees
	rep.Summary.TotalPayroll = payroll.Round2(rep.Summary.TotalProductionPayroll + rep.Summary.TotalAlDiaPayroll)
	rep.Summary.TotalProductionPayroll = payroll.Round2(rep.Summary.TotalProductionPayroll)
	rep.Summary.TotalAlDiaPayroll = payroll.Round2(rep.Summary.TotalAlDiaPayroll)

	return rep, nil
}

// WeeklyPDF implements report.ReportService.
func (s *ReportServiceImpl) WeeklyPDF(ctx context.Context, req report.WeeklyReportRequest) ([]byte, error) {
	rep, err := s.Weekly(ctx, req)
	if err != nil {
		return nil, err
	}
	return pdf.RenderWeekly(rep)
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, req report.DailyReportRequest) ([]report.DailyRow, error) {
	date, err := req.Validate()
	if err != nil {
		return nil, err
	}

	records, err := s.ReportRepository.AttendanceInRange(ctx, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily attendance: %w", err)
	}

	rows := make([]report.DailyRow, 0, len(records))
	for i := range records {
		rows = append(rows, s.toDailyRow(&records[i]))
	}

	return rows, nil
}

func (s *ReportServiceImpl) toDailyRow(rec *attendance.Record) report.DailyRow {
	row := report.DailyRow{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		EmployeeType:  string(rec.EmployeeType),
		MonthlySalary: rec.MonthlySalary,
		Date:          rec.Date.Format("2006-01-02"),
		EntryTime:     rec.EntryTime.Format(time.RFC3339),
		HoursExtra:    rec.HoursExtra,
		TDespalillo:   payroll.Round2(rec.TDespalillo),
		TEscogida:     payroll.Round2(rec.TEscogida),
		TMonado:       payroll.Round2(rec.TMonado),
		PropSabado:    payroll.Round2(rec.PropSabado),
		SeptimoDia:    payroll.Round2(rec.SeptimoDia),
	}
	if rec.ExitTime != nil {
		exit := rec.ExitTime.Format(time.RFC3339)
		row.ExitTime = &exit
	}

	switch {
	case rec.EmployeeType.IsProduction():
		pay := s.rates.ProductionPeriod(rec.TDespalillo, rec.TEscogida, rec.TMonado)
		row.TotalProduced = round2Ptr(pay.Total)
		row.NetPay = round2Ptr(pay.NetPay)

	case rec.EmployeeType.IsDailyRate():
		pay := s.rates.DailyRateDay(rec.MonthlySalary, rec.HoursExtra)
		row.DailySalary = round2Ptr(pay.DailySalary)
		row.OvertimeMoney = round2Ptr(pay.OvertimeMoney)
		row.NetPay = round2Ptr(pay.NetPay)
	}

	return row
}

// Monthly implements report.ReportService. The range is derived with
// AddDate so February and December roll over correctly.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) ([]report.MonthlyRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)

	records, err := s.ReportRepository.AttendanceInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly attendance: %w", err)
	}

	rows := make([]report.MonthlyRow, 0, len(records))
	for i := range records {
		rec := &records[i]
		row := report.MonthlyRow{
			ID:            rec.ID,
			EmployeeID:    rec.EmployeeID,
			EmployeeName:  rec.EmployeeName,
			EmployeeType:  string(rec.EmployeeType),
			MonthlySalary: rec.MonthlySalary,
			Date:          rec.Date.Format("2006-01-02"),
			EntryTime:     rec.EntryTime.Format(time.RFC3339),
			HoursExtra:    rec.HoursExtra,
			Despalillo:    rec.Despalillo,
			Escogida:      rec.Escogida,
			Monado:        rec.Monado,
			TDespalillo:   payroll.Round2(rec.TDespalillo),
			TEscogida:     payroll.Round2(rec.TEscogida),
			TMonado:       payroll.Round2(rec.TMonado),
			PropSabado:    payroll.Round2(rec.PropSabado),
			SeptimoDia:    payroll.Round2(rec.SeptimoDia),
		}
		if rec.ExitTime != nil {
			exit := rec.ExitTime.Format(time.RFC3339)
			row.ExitTime = &exit
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func round2Ptr(v float64) *float64 {
	r := payroll.Round2(v)
	return &r
}
