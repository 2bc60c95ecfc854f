package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gjd78/planilla-backend/internal/domain/report"
)

// RenderWeekly lays out the weekly payroll as a printable A4 landscape
// document: one table per compensation model plus the period totals.
func RenderWeekly(rep report.WeeklyReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; names and headers carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Planilla Semanal")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %s a %s", rep.Start, rep.End))
	pdf.Ln(12)

	if len(rep.Production) > 0 {
		renderProductionTable(pdf, tr, rep.Production)
		pdf.Ln(10)
	}
	if len(rep.AlDia) > 0 {
		renderAlDiaTable(pdf, tr, rep.AlDia)
		pdf.Ln(10)
	}
	renderSummary(pdf, tr, rep.Summary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render weekly pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderProductionTable(pdf *gofpdf.Fpdf, tr func(string) string, rows []report.ProductionRow) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Producción"))
	pdf.Ln(8)

	headers := []string{"Empleado", "Días", "Despalillo", "Escogida", "Moñado", "Total", "Prop. Sábado", "Séptimo Día", "Neto a Pagar"}
	widths := []float64{70, 14, 26, 26, 26, 26, 28, 28, 30}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 6, tr(row.Employee), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", row.DaysWorked), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, money(row.TDespalillo), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, money(row.TEscogida), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, money(row.TMonado), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, money(row.TotalProduced), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, money(row.PropSabado), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[7], 6, money(row.SeptimoDia), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 6, money(row.NetPay), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func renderAlDiaTable(pdf *gofpdf.Fpdf, tr func(string) string, rows []report.AlDiaRow) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Al Día"))
	pdf.Ln(8)

	headers := []string{"Empleado", "Días", "Salario Diario", "Horas Extra", "H.E. Dinero", "Séptimo Día", "Neto a Pagar"}
	widths := []float64{80, 16, 34, 30, 34, 34, 36}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 6, tr(row.Employee), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", row.DaysWorked), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, money(row.DailySalary), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f", row.HoursExtra), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, money(row.OvertimeMoney), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, money(row.SeptimoDia), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, money(row.NetPay), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func renderSummary(pdf *gofpdf.Fpdf, tr func(string) string, s report.Summary) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Resumen")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Empleados producción: %d  (L %s)", s.TotalProductionEmployees, money(s.TotalProductionPayroll))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Empleados al día: %d  (L %s)", s.TotalAlDiaEmployees, money(s.TotalAlDiaPayroll))))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total planilla: %d empleados, L %s", s.TotalEmployees, money(s.TotalPayroll)))
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
