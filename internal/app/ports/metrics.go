package ports

import "hexforge/internal/domain/apperr"

type GenerationMetrics interface {
	RecordGenerated(tiles int)
	RecordFailure(code apperr.Code)
}
