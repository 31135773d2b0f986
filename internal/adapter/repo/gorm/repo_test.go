package gormrepo

import (
	"errors"
	"testing"
	"testing/fstest"

	"hexforge/internal/adapter/repo/gorm/model"
	"hexforge/internal/domain/apperr"
	"hexforge/internal/domain/hexmap"
	"hexforge/migrations"
)

func TestMigrationFiles_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_b.sql":   {Data: []byte("SELECT 2;")},
		"0001_a.sql":   {Data: []byte("SELECT 1;")},
		"README.md":    {Data: []byte("notes")},
		"nested/x.sql": {Data: []byte("SELECT 3;")},
	}
	got, err := migrationFiles(fsys)
	if err != nil {
		t.Fatalf("migrationFiles error: %v", err)
	}
	if len(got) != 2 || got[0] != "0001_a.sql" || got[1] != "0002_b.sql" {
		t.Fatalf("unexpected files: %v", got)
	}
}

func TestMigrationFiles_EmbeddedSchema(t *testing.T) {
	got, err := migrationFiles(migrations.FS)
	if err != nil {
		t.Fatalf("migrationFiles error: %v", err)
	}
	if len(got) == 0 || got[0] != "0001_generated_maps.sql" {
		t.Fatalf("unexpected embedded migrations: %v", got)
	}
}

func TestTilesCodec_RoundTripsRoads(t *testing.T) {
	in := []hexmap.Tile{{ID: "t", Q: 1, R: -1, Terrain: hexmap.TerrainWater, Roads: []hexmap.Direction{hexmap.DirWest, hexmap.DirEast}}}
	b, err := encodeTiles(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decodeTiles(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || len(out[0].Roads) != 2 || out[0].Roads[0] != hexmap.DirWest || out[0].Resource != nil {
		t.Fatalf("unexpected decode: %+v", out)
	}
	empty, err := encodeTiles(nil)
	if err != nil || string(empty) != "[]" {
		t.Fatalf("nil tiles should encode as [], got %q err=%v", empty, err)
	}
}

func TestToRecord_ValidatesStoredTiles(t *testing.T) {
	good := model.GeneratedMap{
		ID:     "m1",
		Seed:   "s",
		Radius: 1,
		Tiles:  []byte(`[{"id":"a","q":0,"r":0,"terrain":"PLAIN","roads":[0]},{"id":"b","q":1,"r":0,"terrain":"CAVE","roads":[3]}]`),
	}
	rec, err := toRecord(good)
	if err != nil {
		t.Fatalf("toRecord error: %v", err)
	}
	if rec.Radius != 1 || len(rec.Tiles) != 2 || rec.Tiles[1].Roads[0] != hexmap.DirWest {
		t.Fatalf("unexpected record: %+v", rec)
	}

	rows := []model.GeneratedMap{
		{ID: "far", Radius: 0, Tiles: []byte(`[{"id":"a","q":2,"r":0,"terrain":"PLAIN"}]`)},
		{ID: "terrain", Radius: 1, Tiles: []byte(`[{"id":"a","q":0,"r":0,"terrain":"LAVA"}]`)},
		{ID: "one-way", Radius: 1, Tiles: []byte(`[{"id":"a","q":0,"r":0,"terrain":"PLAIN","roads":[0]}]`)},
	}
	for _, row := range rows {
		if _, err := toRecord(row); !errors.Is(err, apperr.ErrInvalidTile) {
			t.Fatalf("%s: expected ErrInvalidTile, got %v", row.ID, err)
		}
	}
}
