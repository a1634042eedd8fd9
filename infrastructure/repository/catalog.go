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
	catalogModelsTable = "catalog_models cm"
)

type CatalogRepository interface {
	GetByBrandAndModel(brand, model string, year int) (*domain.CatalogModelEntry, error)
	ListByBrand(brand string) ([]*domain.CatalogModelEntry, error)
	ListAll() ([]*domain.CatalogModelEntry, error)
	SaveOrUpdate(model *domain.NewCarModel) error
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) GetByBrandAndModel(brand, model string, year int) (*domain.CatalogModelEntry, error) {
	query, args, err := squirrel.
		Select("cm.id, cm.model, cm.created_at, cm.updated_at").
		From(catalogModelsTable).
		Where(squirrel.Eq{"cm.brand": brand, "cm.model_name": model, "cm.year": year}).
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
		return nil, fmt.Errorf("error al escanear el modelo de catálogo: %w", err)
	}

	return entry, nil
}

func (r *catalogRepository) ListByBrand(brand string) ([]*domain.CatalogModelEntry, error) {
	return r.list(squirrel.Eq{"cm.brand": brand})
}

func (r *catalogRepository) ListAll() ([]*domain.CatalogModelEntry, error) {
	return r.list(nil)
}

func (r *catalogRepository) list(where interface{}) ([]*domain.CatalogModelEntry, error) {
	query := squirrel.
		Select("cm.id, cm.model, cm.created_at, cm.updated_at").
		From(catalogModelsTable).
		OrderBy("cm.brand ASC, cm.model_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		query = query.Where(where)
	}

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

	entries := make([]*domain.CatalogModelEntry, 0)
	for rows.Next() {
		entry := &domain.CatalogModelEntry{}
		var modelJSON []byte

		err := rows.Scan(&entry.ID, &modelJSON, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al escanear modelos de catálogo: %w", err)
		}

		if modelJSON != nil {
			model := &domain.NewCarModel{}
			if err := json.Unmarshal(modelJSON, model); err != nil {
				return nil, fmt.Errorf("error al deserializar el JSON de model: %w", err)
			}
			entry.Model = model
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return entries, nil
}

// SaveOrUpdate inserta la ficha del modelo; si la combinación marca, modelo y
// año ya existe se reemplaza el documento completo
func (r *catalogRepository) SaveOrUpdate(model *domain.NewCarModel) error {
	modelJSON, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("error al serializar el modelo a JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("catalog_models").
		Columns("brand", "model_name", "year", "model").
		Values(
			model.Brand,
			model.Model,
			model.Year,
			modelJSON,
		).
		Suffix(`
			ON CONFLICT (brand, model_name, year) DO UPDATE SET
				model = EXCLUDED.model,
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

func (r *catalogRepository) scanEntry(row *sql.Row) (*domain.CatalogModelEntry, error) {
	entry := &domain.CatalogModelEntry{}
	var modelJSON []byte

	err := row.Scan(
		&entry.ID,
		&modelJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if modelJSON != nil {
		model := &domain.NewCarModel{}
		if err := json.Unmarshal(modelJSON, model); err != nil {
			return nil, fmt.Errorf("error al deserializar el JSON de model: %w", err)
		}
		entry.Model = model
	}

	return entry, nil
}
