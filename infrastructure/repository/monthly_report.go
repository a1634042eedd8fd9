package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rvaldez-mx/auto-market-api/infrastructure/database/postgres"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

const (
	monthlyReportsTable = "monthly_reports mr"
)

type MonthlyReportRepository interface {
	GetByPeriod(period string) (*domain.MonthlyReportEntry, error)
	SaveOrUpdate(entry *domain.MonthlyReportEntry) error
	GetByPeriodRange(startPeriod, endPeriod string) ([]*domain.MonthlyReportEntry, error)
	GetAllPeriods() ([]string, error)
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

func (r *monthlyReportRepository) GetByPeriod(period string) (*domain.MonthlyReportEntry, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.period, mr.report, mr.created_at, mr.updated_at").
		From(monthlyReportsTable).
		Where(squirrel.Eq{"mr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear el reporte mensual: %w", err)
	}

	return entry, nil
}

// GetByPeriodRange devuelve los reportes entre dos períodos YYYY-MM
// inclusive. El formato ordena lexicográficamente igual que cronológicamente,
// así que la comparación de strings basta.
func (r *monthlyReportRepository) GetByPeriodRange(startPeriod, endPeriod string) ([]*domain.MonthlyReportEntry, error) {
	query := squirrel.
		Select("mr.id, mr.period, mr.report, mr.created_at, mr.updated_at").
		From(monthlyReportsTable).
		Where(squirrel.GtOrEq{"mr.period": startPeriod}).
		Where(squirrel.LtOrEq{"mr.period": endPeriod}).
		OrderBy("mr.period ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.MonthlyReportEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear reportes mensuales: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return entries, nil
}

func (r *monthlyReportRepository) SaveOrUpdate(entry *domain.MonthlyReportEntry) error {
	var reportJSON []byte
	var err error

	if entry.Report != nil {
		reportJSON, err = json.Marshal(entry.Report)
		if err != nil {
			return fmt.Errorf("error al serializar el reporte a JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_reports").
		Columns("period", "report").
		Values(
			entry.Period,
			reportJSON,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error en la base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return nil
}

func (r *monthlyReportRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("mr.period").
		From(monthlyReportsTable).
		OrderBy("mr.period DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("error al escanear el período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return periods, nil
}

func (r *monthlyReportRepository) scanEntry(row *sql.Row) (*domain.MonthlyReportEntry, error) {
	entry := &domain.MonthlyReportEntry{}
	var reportJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.Period,
		&reportJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reportJSON != nil {
		report := &domain.MonthlyReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("error al deserializar el JSON de report: %w", err)
		}
		entry.Report = report
	}

	return entry, nil
}

func (r *monthlyReportRepository) scanEntryRows(rows *sql.Rows) (*domain.MonthlyReportEntry, error) {
	entry := &domain.MonthlyReportEntry{}
	var reportJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.Period,
		&reportJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reportJSON != nil {
		report := &domain.MonthlyReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("error al deserializar el JSON de report: %w", err)
		}
		entry.Report = report
	}

	return entry, nil
}
