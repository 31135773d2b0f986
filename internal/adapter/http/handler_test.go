package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	metricsinmem "hexforge/internal/adapter/metrics/inmemory"
	"hexforge/internal/adapter/repo/memory"
	"hexforge/internal/app/generate"
	"hexforge/internal/app/maps"
	"hexforge/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
)

func newTestHandler() (Handler, *metricsinmem.Recorder) {
	repo := memory.NewMapRepo(memory.NewStore())
	kpi := metricsinmem.NewRecorder()
	n := 0
	return Handler{
		GenerateUC: generate.UseCase{
			Maps:    repo,
			Metrics: kpi,
			NewID: func() string {
				n++
				return "map-" + string(rune('0'+n))
			},
			Now: func() time.Time { return time.Unix(1700000000, 0) },
		},
		MapsUC: maps.UseCase{Maps: repo},
		KPI:    kpi,
	}, kpi
}

func decodeBody(t *testing.T, ctx *app.RequestContext) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v body=%s", err, ctx.Response.Body())
	}
	return body
}

func errorCode(body map[string]any) any {
	errObj, _ := body["error"].(map[string]any)
	return errObj["code"]
}

func TestGenerate_OK(t *testing.T) {
	h, kpi := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"seed":"hexforge-demo","radius":1,"terrains":["PLAIN","FOREST","MOUNTAIN","WATER","CAVE","URBAN"],"resources":["IRON_ORE","GOLD_ORE","HERBS","MONSTER_NEST"],"buildings":["VILLAGE","TOWN","CITY","HOUSE","BLACKSMITH","INN"]}`))

	h.generate(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	body := decodeBody(t, ctx)
	if got, want := body["tile_count"], float64(7); got != want {
		t.Fatalf("tile_count mismatch: got=%v want=%v", got, want)
	}
	if _, ok := body["map_id"]; ok {
		t.Fatalf("map_id must be omitted when not persisted")
	}
	tiles, _ := body["tiles"].([]any)
	first, _ := tiles[0].(map[string]any)
	if first["terrain"] != "URBAN" || first["q"] != float64(-1) || first["r"] != float64(0) {
		t.Fatalf("unexpected first tile: %v", first)
	}
	if _, ok := first["roads"]; ok {
		t.Fatalf("roads must be omitted when unset")
	}
	if kpi.Snapshot().GenerationSuccess != 1 {
		t.Fatalf("expected one recorded generation")
	}
}

func TestGenerate_PersistThenGet(t *testing.T) {
	h, _ := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"seed":"stored","radius":2,"terrains":["PLAIN"],"persist":true}`))
	h.generate(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("generate status=%d body=%s", got, ctx.Response.Body())
	}
	mapID, _ := decodeBody(t, ctx)["map_id"].(string)
	if mapID == "" {
		t.Fatalf("expected map_id in response")
	}

	getCtx := &app.RequestContext{}
	getCtx.Params = param.Params{{Key: "id", Value: mapID}}
	h.get(context.Background(), getCtx)
	if got, want := getCtx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("get status mismatch: got=%d want=%d", got, want)
	}
	body := decodeBody(t, getCtx)
	if body["seed"] != "stored" || body["tile_count"] != float64(19) {
		t.Fatalf("unexpected stored map: %v", body)
	}

	listCtx := &app.RequestContext{}
	h.list(context.Background(), listCtx)
	listed, _ := decodeBody(t, listCtx)["maps"].([]any)
	if len(listed) != 1 {
		t.Fatalf("expected one listed map, got %d", len(listed))
	}
}

func TestGenerate_EmptyTerrainsIsUnprocessable(t *testing.T) {
	h, kpi := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"seed":"s","radius":1,"terrains":[]}`))

	h.generate(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusUnprocessableEntity; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	body := decodeBody(t, ctx)
	if got, want := errorCode(body), "RNG_EMPTY_ARRAY"; got != want {
		t.Fatalf("error code mismatch: got=%v want=%v", got, want)
	}
	details, _ := body["error"].(map[string]any)["details"].(map[string]any)
	if details["seed"] != "s" || details["field"] != "terrain" {
		t.Fatalf("unexpected details: %v", details)
	}
	if _, ok := body["tiles"]; ok {
		t.Fatalf("failed generation must not return tiles")
	}
	if kpi.Snapshot().FailuresByCode["RNG_EMPTY_ARRAY"] != 1 {
		t.Fatalf("expected failure recorded")
	}
}

func TestGenerate_InvalidInputs(t *testing.T) {
	cases := []struct {
		body string
		code string
	}{
		{body: `{"seed":`, code: "invalid_json"},
		{body: `{"seed":"s","radius":-1,"terrains":["PLAIN"]}`, code: "INVALID_CONFIGURATION"},
		{body: `{"seed":"s","radius":1,"terrains":["LAVA"]}`, code: "MAP_INVALID_TERRAIN"},
		{body: `{"seed":"","radius":1,"terrains":["PLAIN"]}`, code: "bad_request"},
		{body: `{"seed":"s","radius":1000,"terrains":["PLAIN"]}`, code: "bad_request"},
	}
	for _, tc := range cases {
		h, _ := newTestHandler()
		ctx := &app.RequestContext{}
		ctx.Request.SetBody([]byte(tc.body))

		h.generate(context.Background(), ctx)

		if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
			t.Fatalf("%s: status mismatch: got=%d want=%d", tc.body, got, want)
		}
		if got := errorCode(decodeBody(t, ctx)); got != tc.code {
			t.Fatalf("%s: error code mismatch: got=%v want=%v", tc.body, got, tc.code)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	h, _ := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "missing"}}

	h.get(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(decodeBody(t, ctx)), "not_found"; got != want {
		t.Fatalf("error code mismatch: got=%v want=%v", got, want)
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{err: generate.ErrPersistenceDisabled, status: consts.StatusServiceUnavailable, code: "persistence_disabled"},
		{err: ports.ErrConflict, status: consts.StatusConflict, code: "conflict"},
		{err: maps.ErrInvalidRequest, status: consts.StatusBadRequest, code: "bad_request"},
		{err: errors.New("boom"), status: consts.StatusInternalServerError, code: "internal_error"},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status mismatch: got=%d want=%d", tc.err, got, tc.status)
		}
		if got := errorCode(decodeBody(t, ctx)); got != tc.code {
			t.Fatalf("%v: code mismatch: got=%v want=%v", tc.err, got, tc.code)
		}
	}
}

func TestKPI(t *testing.T) {
	ctx := &app.RequestContext{}
	Handler{}.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}

	h, _ := newTestHandler()
	ctx = &app.RequestContext{}
	h.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if _, ok := decodeBody(t, ctx)["generation_total"]; !ok {
		t.Fatalf("expected generation_total in kpi snapshot")
	}
}

func TestToTags_PreservesNil(t *testing.T) {
	if toTags[string](nil) != nil {
		t.Fatalf("nil input must stay nil")
	}
	got := toTags[string]([]string{})
	if got == nil || len(got) != 0 {
		t.Fatalf("empty input must stay empty and non-nil")
	}
}
