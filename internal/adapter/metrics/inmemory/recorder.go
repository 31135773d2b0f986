package inmemory

import (
	"sync"

	"hexforge/internal/domain/apperr"
)

type Snapshot struct {
	GenerationTotal   uint64            `json:"generation_total"`
	GenerationSuccess uint64            `json:"generation_success"`
	GenerationFailure uint64            `json:"generation_failure"`
	TilesGenerated    uint64            `json:"tiles_generated"`
	FailuresByCode    map[string]uint64 `json:"failures_by_code"`
}

type Recorder struct {
	mu      sync.Mutex
	success uint64
	failure uint64
	tiles   uint64
	byCode  map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byCode: map[string]uint64{},
	}
}

func (r *Recorder) RecordGenerated(tiles int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	if tiles > 0 {
		r.tiles += uint64(tiles)
	}
}

func (r *Recorder) RecordFailure(code apperr.Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	if code == "" {
		code = "UNKNOWN"
	}
	r.byCode[string(code)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		GenerationSuccess: r.success,
		GenerationFailure: r.failure,
		GenerationTotal:   r.success + r.failure,
		TilesGenerated:    r.tiles,
		FailuresByCode:    make(map[string]uint64, len(r.byCode)),
	}
	for k, v := range r.byCode {
		out.FailuresByCode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
