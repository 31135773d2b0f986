package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hexforge/internal/adapter/repo/gorm/model"
	"hexforge/internal/app/ports"
	"hexforge/internal/domain/hexmap"

	"gorm.io/gorm"
)

type MapRepo struct {
	db *gorm.DB
}

func NewMapRepo(db *gorm.DB) MapRepo {
	return MapRepo{db: db}
}

func (r MapRepo) Save(ctx context.Context, record ports.MapRecord) error {
	if err := hexmap.ValidateTiles(record.Tiles, record.Radius); err != nil {
		return fmt.Errorf("validate map %s: %w", record.ID, err)
	}
	b, err := encodeTiles(record.Tiles)
	if err != nil {
		return err
	}
	row := model.GeneratedMap{
		ID:        record.ID,
		Seed:      record.Seed,
		Radius:    int32(record.Radius),
		TileCount: int32(len(record.Tiles)),
		Tiles:     b,
		CreatedAt: record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return fmt.Errorf("insert generated map: %w", err)
	}
	return nil
}

func (r MapRepo) GetByID(ctx context.Context, id string) (ports.MapRecord, error) {
	var row model.GeneratedMap
	err := r.db.WithContext(ctx).
		Where(map[string]any{"id": id}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MapRecord{}, ports.ErrNotFound
		}
		return ports.MapRecord{}, err
	}
	return toRecord(row)
}

func (r MapRepo) List(ctx context.Context, limit int) ([]ports.MapRecord, error) {
	var rows []model.GeneratedMap
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.MapRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toRecord(row model.GeneratedMap) (ports.MapRecord, error) {
	tiles, err := decodeTiles(row.Tiles)
	if err != nil {
		return ports.MapRecord{}, fmt.Errorf("decode map %s: %w", row.ID, err)
	}
	if err := hexmap.ValidateTiles(tiles, int(row.Radius)); err != nil {
		return ports.MapRecord{}, fmt.Errorf("stored map %s: %w", row.ID, err)
	}
	return ports.MapRecord{
		ID:        row.ID,
		Seed:      row.Seed,
		Radius:    int(row.Radius),
		Tiles:     tiles,
		CreatedAt: row.CreatedAt,
	}, nil
}

func encodeTiles(tiles []hexmap.Tile) ([]byte, error) {
	if tiles == nil {
		tiles = []hexmap.Tile{}
	}
	return json.Marshal(tiles)
}

func decodeTiles(data []byte) ([]hexmap.Tile, error) {
	out := []hexmap.Tile{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
