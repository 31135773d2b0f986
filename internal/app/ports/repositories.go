package ports

import (
	"context"
	"time"

	"hexforge/internal/domain/hexmap"
)

type MapRecord struct {
	ID        string
	Seed      string
	Radius    int
	Tiles     []hexmap.Tile
	CreatedAt time.Time
}

type MapRepository interface {
	Save(ctx context.Context, record MapRecord) error
	GetByID(ctx context.Context, id string) (MapRecord, error)
	List(ctx context.Context, limit int) ([]MapRecord, error)
}
