package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"hexforge/internal/app/ports"
	"hexforge/internal/domain/hexmap"
)

type MapRepo struct {
	store *Store
}

func NewMapRepo(store *Store) MapRepo {
	return MapRepo{store: store}
}

func (r MapRepo) Save(_ context.Context, record ports.MapRecord) error {
	if err := hexmap.ValidateTiles(record.Tiles, record.Radius); err != nil {
		return fmt.Errorf("validate map %s: %w", record.ID, err)
	}
	tiles, err := cloneTiles(record.Tiles)
	if err != nil {
		return err
	}
	record.Tiles = tiles

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.maps[record.ID]; ok {
		return ports.ErrConflict
	}
	r.store.maps[record.ID] = record
	r.store.order = append(r.store.order, record.ID)
	return nil
}

func (r MapRepo) GetByID(_ context.Context, id string) (ports.MapRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.maps[id]
	if !ok {
		return ports.MapRecord{}, ports.ErrNotFound
	}
	return copyOut(rec)
}

func (r MapRepo) List(_ context.Context, limit int) ([]ports.MapRecord, error) {
	if limit <= 0 {
		return []ports.MapRecord{}, nil
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.MapRecord, 0, min(limit, len(r.store.order)))
	for i := len(r.store.order) - 1; i >= 0 && len(out) < limit; i-- {
		rec, err := copyOut(r.store.maps[r.store.order[i]])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func copyOut(rec ports.MapRecord) (ports.MapRecord, error) {
	tiles, err := cloneTiles(rec.Tiles)
	if err != nil {
		return ports.MapRecord{}, err
	}
	rec.Tiles = tiles
	return rec, nil
}

// cloneTiles detaches stored tiles from the caller's pointers and slices,
// using the same JSON encoding the database column uses.
func cloneTiles(tiles []hexmap.Tile) ([]hexmap.Tile, error) {
	b, err := json.Marshal(tiles)
	if err != nil {
		return nil, fmt.Errorf("encode tiles: %w", err)
	}
	out := []hexmap.Tile{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode tiles: %w", err)
	}
	return out, nil
}
