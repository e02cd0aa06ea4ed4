package repository

import (
	"context"

	"panduan-karier/internal/database"
	"panduan-karier/internal/domain/riasec"
)

// CatalogRepository serves the two reference collections the matcher runs
// against. Both are static seeded data; rows are immutable from the core's
// perspective.
type CatalogRepository interface {
	ListMajors(ctx context.Context) ([]riasec.ReferenceItem, error)
	ListCareers(ctx context.Context) ([]riasec.ReferenceItem, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListMajors(ctx context.Context) ([]riasec.ReferenceItem, error) {
	return r.listItems(ctx, "majors")
}

func (r *PostgresCatalogRepository) ListCareers(ctx context.Context) ([]riasec.ReferenceItem, error) {
	return r.listItems(ctx, "careers")
}

func (r *PostgresCatalogRepository) listItems(ctx context.Context, table string) ([]riasec.ReferenceItem, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, subcategory, r, i, a, s, e, c FROM `+table+` ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]riasec.ReferenceItem, 0)
	for rows.Next() {
		var item riasec.ReferenceItem
		var wR, wI, wA, wS, wE, wC int
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Subcategory,
			&wR, &wI, &wA, &wS, &wE, &wC,
		); err != nil {
			return nil, err
		}
		item.Profile = riasec.Weights{
			riasec.Realistic:     wR,
			riasec.Investigative: wI,
			riasec.Artistic:      wA,
			riasec.Social:        wS,
			riasec.Enterprising:  wE,
			riasec.Conventional:  wC,
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
