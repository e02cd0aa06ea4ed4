package seeder

import (
	"context"

	"panduan-karier/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
