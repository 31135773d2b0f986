// Package apperr carries coded errors with an open diagnostic context.
//
// Callers match on the code, not the message:
//
//	if errors.Is(err, apperr.ErrEmptyCollection) { ... }
//	switch apperr.CodeOf(err) { ... }
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Code string

const (
	CodeEmptyCollection      Code = "RNG_EMPTY_ARRAY"
	CodeInvalidRange         Code = "INVALID_RANGE"
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	CodeInvalidTerrain       Code = "MAP_INVALID_TERRAIN"
	CodeInvalidTile          Code = "MAP_INVALID_TILE"
	CodeInvalidNeighbor      Code = "HEX_INVALID_NEIGHBOR"
)

// Context is free-form diagnostic payload: seed, subsystem, tile coordinate and so on.
type Context map[string]any

type Error struct {
	Code    Code
	Message string
	Context Context
}

func New(code Code, message string, ctx Context) *Error {
	return &Error{Code: code, Message: message, Context: ctx}
}

func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, " "))
}

// Is matches any *Error with the same code, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// With returns a copy of e whose context also holds kv. Existing keys win.
func (e *Error) With(kv Context) *Error {
	merged := make(Context, len(e.Context)+len(kv))
	for k, v := range kv {
		merged[k] = v
	}
	for k, v := range e.Context {
		merged[k] = v
	}
	return &Error{Code: e.Code, Message: e.Message, Context: merged}
}

var (
	ErrEmptyCollection      = &Error{Code: CodeEmptyCollection}
	ErrInvalidRange         = &Error{Code: CodeInvalidRange}
	ErrInvalidConfiguration = &Error{Code: CodeInvalidConfiguration}
	ErrInvalidTerrain       = &Error{Code: CodeInvalidTerrain}
	ErrInvalidTile          = &Error{Code: CodeInvalidTile}
	ErrInvalidNeighbor      = &Error{Code: CodeInvalidNeighbor}
)

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return ""
}

// ContextOf returns the context of the first *Error in err's chain.
func ContextOf(err error) Context {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Context
	}
	return nil
}

// Assert returns a coded error when cond is false and nil otherwise.
func Assert(cond bool, code Code, message string, ctx Context) error {
	if cond {
		return nil
	}
	return New(code, message, ctx)
}
