package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"hexforge/internal/app/generate"
	"hexforge/internal/app/maps"
	"hexforge/internal/app/ports"
	"hexforge/internal/domain/apperr"
	"hexforge/internal/domain/hexmap"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	GenerateUC generate.UseCase
	MapsUC     maps.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api/maps")
	api.POST("/generate", h.generate)
	api.GET("", h.list)
	api.GET("/:id", h.get)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.healthz)
}

type generateRequest struct {
	Seed      string   `json:"seed"`
	Radius    int      `json:"radius"`
	Terrains  []string `json:"terrains"`
	Resources []string `json:"resources,omitempty"`
	Buildings []string `json:"buildings,omitempty"`
	Persist   bool     `json:"persist,omitempty"`
}

func (h Handler) generate(c context.Context, ctx *app.RequestContext) {
	var body generateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", nil)
		return
	}

	resp, err := h.GenerateUC.Execute(c, generate.Request{
		Seed:      body.Seed,
		Radius:    body.Radius,
		Terrains:  toTags[hexmap.Terrain](body.Terrains),
		Resources: toTags[hexmap.Resource](body.Resources),
		Buildings: toTags[hexmap.Building](body.Buildings),
		Persist:   body.Persist,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) get(c context.Context, ctx *app.RequestContext) {
	resp, err := h.MapsUC.Get(c, maps.GetRequest{MapID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) list(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.MapsUC.List(c, maps.ListRequest{Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured", nil)
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// toTags keeps nil distinct from empty: an omitted category is skipped by the
// generator while an empty one is an error.
func toTags[T ~string](in []string) []T {
	if in == nil {
		return nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, T(strings.TrimSpace(v)))
	}
	return out
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, apperr.ErrEmptyCollection):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, string(apperr.CodeEmptyCollection), err.Error(), apperr.ContextOf(err))
	case errors.Is(err, apperr.ErrInvalidConfiguration),
		errors.Is(err, apperr.ErrInvalidTerrain),
		errors.Is(err, apperr.ErrInvalidRange),
		errors.Is(err, apperr.ErrInvalidTile),
		errors.Is(err, apperr.ErrInvalidNeighbor):
		writeErrorBody(ctx, consts.StatusBadRequest, string(apperr.CodeOf(err)), err.Error(), apperr.ContextOf(err))
	case errors.Is(err, generate.ErrInvalidRequest),
		errors.Is(err, maps.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error(), nil)
	case errors.Is(err, generate.ErrPersistenceDisabled):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "persistence_disabled", err.Error(), nil)
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error(), nil)
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	body := map[string]any{
		"code":    code,
		"message": message,
	}
	if len(details) > 0 {
		body["details"] = details
	}
	ctx.JSON(status, map[string]any{"error": body})
}
