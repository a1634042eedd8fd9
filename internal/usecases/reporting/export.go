package reporting

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

// ExportFormat identifica el formato de exportación de un reporte
type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatCSV  ExportFormat = "csv"
)

// ExportResult contiene el archivo exportado listo para servir vía HTTP
type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

// brandRowRecord aplana una fila de marca para la exportación tabular
type brandRowRecord struct {
	Period              string  `csv:"periodo"`
	Brand               string  `csv:"marca"`
	MonthlyPrevious     int     `csv:"ventas_mes_anterior"`
	MonthlyCurrent      int     `csv:"ventas_mes_actual"`
	MonthlyVariationPct float64 `csv:"variacion_mensual_pct"`
	YTDPrevious         int     `csv:"acumulado_anterior"`
	YTDCurrent          int     `csv:"acumulado_actual"`
	YTDVariationPct     float64 `csv:"variacion_acumulada_pct"`
}

// ExportReport serializa el reporte de un período como XLSX o CSV
func (s *Service) ExportReport(period string, format ExportFormat) (*ExportResult, error) {
	entry, err := s.GetReportByPeriod(period)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return exportCSV(entry)
	case FormatXLSX:
		return exportXLSX(entry)
	default:
		return nil, fmt.Errorf("formato de exportación no soportado: %s", format)
	}
}

func brandRecords(entry *domain.MonthlyReportEntry) []*brandRowRecord {
	records := make([]*brandRowRecord, 0, len(entry.Report.BrandRows))
	for _, row := range entry.Report.BrandRows {
		records = append(records, &brandRowRecord{
			Period:              entry.Period,
			Brand:               row.Brand,
			MonthlyPrevious:     row.MonthlyPrevious,
			MonthlyCurrent:      row.MonthlyCurrent,
			MonthlyVariationPct: row.MonthlyVariationPct,
			YTDPrevious:         row.YTDPrevious,
			YTDCurrent:          row.YTDCurrent,
			YTDVariationPct:     row.YTDVariationPct,
		})
	}

	return records
}

func exportCSV(entry *domain.MonthlyReportEntry) (*ExportResult, error) {
	content, err := gocsv.MarshalBytes(brandRecords(entry))
	if err != nil {
		return nil, fmt.Errorf("error al generar el CSV del período %s: %w", entry.Period, err)
	}

	return &ExportResult{
		FileName:    fmt.Sprintf("reporte_raiavl_%s.csv", entry.Period),
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

func exportXLSX(entry *domain.MonthlyReportEntry) (*ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	report := entry.Report

	const summarySheet = "Resumen"
	f.SetSheetName("Sheet1", summarySheet)

	summary := [][]any{
		{"Período", entry.Period},
		{"Ventas del mes", report.Monthly.Sales},
		{"Producción del mes", report.Monthly.Production},
		{"Exportaciones del mes", report.Monthly.Exports},
		{"Ventas acumuladas", report.YearToDate.Sales},
		{"Producción acumulada", report.YearToDate.Production},
		{"Exportaciones acumuladas", report.YearToDate.Exports},
		{"Variación anual de ventas (%)", report.YearOverYear.Sales},
		{"Variación anual de producción (%)", report.YearOverYear.Production},
		{"Variación anual de exportaciones (%)", report.YearOverYear.Exports},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("error al escribir el resumen: %w", err)
		}
	}

	const brandsSheet = "Marcas"
	if _, err := f.NewSheet(brandsSheet); err != nil {
		return nil, fmt.Errorf("error al crear la hoja de marcas: %w", err)
	}

	header := []any{
		"Marca", "Ventas mes anterior", "Ventas mes actual", "Variación mensual (%)",
		"Acumulado anterior", "Acumulado actual", "Variación acumulada (%)",
	}
	if err := f.SetSheetRow(brandsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("error al escribir el encabezado de marcas: %w", err)
	}

	for i, row := range report.BrandRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			row.Brand, row.MonthlyPrevious, row.MonthlyCurrent, row.MonthlyVariationPct,
			row.YTDPrevious, row.YTDCurrent, row.YTDVariationPct,
		}
		if err := f.SetSheetRow(brandsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("error al escribir la fila de la marca %s: %w", row.Brand, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error al generar el XLSX del período %s: %w", entry.Period, err)
	}

	return &ExportResult{
		FileName:    fmt.Sprintf("reporte_raiavl_%s.xlsx", entry.Period),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}
