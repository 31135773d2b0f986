package model

import "time"

const TableNameGeneratedMap = "generated_maps"

type GeneratedMap struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Seed      string    `gorm:"column:seed;not null" json:"seed"`
	Radius    int32     `gorm:"column:radius;not null" json:"radius"`
	TileCount int32     `gorm:"column:tile_count;not null" json:"tile_count"`
	Tiles     []byte    `gorm:"column:tiles;type:jsonb;not null" json:"tiles"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

func (*GeneratedMap) TableName() string {
	return TableNameGeneratedMap
}
