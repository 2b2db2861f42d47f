package processor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robokoder/processor/errors"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("foo", map[string]int{"n": 1})
	assert.Equal(t, "foo", req.Name())
	assert.Equal(t, map[string]int{"n": 1}, req.Input())
	assert.NotEqual(t, uuid.Nil, req.ID())
	assert.False(t, req.CreatedAt().IsZero())

	other := NewRequest("foo", nil)
	assert.NotEqual(t, req.ID(), other.ID())
}

func TestNewRequest_WithID(t *testing.T) {
	id := uuid.MustParse("6f1c1c2e-9b7d-4c4e-8a4f-0d3e6a9b1f00")
	assert.Equal(t, id, NewRequest("x", nil, WithRequestID(id)).ID())
}

func TestResponse_Extras(t *testing.T) {
	resp := NewResponse(NewRequest("x", nil), nil, StatusOK)

	_, ok := resp.Extra("k")
	assert.False(t, ok)

	resp.SetExtra("k", 1).SetExtra("k", 2)
	v, ok := resp.Extra("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	copied := resp.Extras()
	copied["k"] = 3
	v, _ = resp.Extra("k")
	assert.Equal(t, 2, v, "Extras must return a copy")
}

func TestResponse_SetExtraOnNil(t *testing.T) {
	var resp *Response
	assert.Nil(t, resp.SetExtra("k", "v"))

	v, ok := resp.Extra("k")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Nil(t, resp.Extras())
	assert.Equal(t, "", resp.Name())
}

func TestResponse_Name(t *testing.T) {
	resp := NewResponse(nil, nil, StatusOK)
	assert.Equal(t, "", resp.Name())
	resp.SetExtra(ExtraName, 7)
	assert.Equal(t, "", resp.Name(), "non-string name is ignored")
	resp.SetExtra(ExtraName, "p1")
	assert.Equal(t, "p1", resp.Name())
}

func TestResponse_Err(t *testing.T) {
	req := NewRequest("foo", nil)

	assert.NoError(t, NewResponse(req, "ok", StatusOK).Err())
	assert.NoError(t, NewResponse(req, nil, StatusNoContent).Err())

	tests := []struct {
		status StatusCode
		code   errors.ErrorCode
	}{
		{StatusNotImplemented, errors.ErrCodeNotImplemented},
		{StatusUnavailable, errors.ErrCodeUnavailable},
		{StatusNotFound, errors.ErrCodeNotFound},
		{StatusBadRequest, errors.ErrCodeInvalidInput},
		{StatusInternalError, errors.ErrCodeProcessorFailed},
	}
	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			err := NewResponse(req, nil, tc.status).SetExtra(ExtraName, "p1").Err()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tc.code), "got %v", err)
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, "NOT_IMPLEMENTED", StatusNotImplemented.String())
	assert.Equal(t, "418", StatusCode(418).String())
	assert.True(t, StatusAccepted.IsSuccess())
	assert.False(t, StatusNotImplemented.IsSuccess())

	code, ok := ParseStatus("UNAVAILABLE")
	assert.True(t, ok)
	assert.Equal(t, StatusUnavailable, code)
	_, ok = ParseStatus("TEAPOT")
	assert.False(t, ok)
}

func TestEntry(t *testing.T) {
	p := NewBasic("foo", nil)
	e := NewEntry(p, "foo", 5)
	assert.Same(t, p, e.Processor())
	assert.Equal(t, "foo", e.Name())
	assert.Equal(t, 5, e.Priority())
}

func TestBasic(t *testing.T) {
	ctx := context.Background()
	b := NewBasic("foo", "bar")
	assert.True(t, b.Supports(ctx, NewRequest("foo", nil)))
	assert.False(t, b.Supports(ctx, NewRequest("foobar", nil)))

	resp, err := b.Process(ctx, NewRequest("foo", nil))
	require.NoError(t, err)
	assert.Equal(t, "bar", resp.Output())
	assert.Equal(t, StatusOK, resp.Status())

	resp, err = NewBasic("foo", nil, WithStatus(StatusAccepted)).Process(ctx, NewRequest("foo", nil))
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, resp.Status())
}

func TestFunc(t *testing.T) {
	ctx := context.Background()
	var zero Func
	assert.False(t, zero.Supports(ctx, NewRequest("x", nil)))
	resp, err := zero.Process(ctx, NewRequest("x", nil))
	require.NoError(t, err)
	assert.Equal(t, StatusNotImplemented, resp.Status())
}

func TestPredicates(t *testing.T) {
	ctx := context.Background()
	byName := MatchName("a", "b")
	assert.True(t, byName(ctx, NewRequest("a", nil)))
	assert.True(t, byName(ctx, NewRequest("b", nil)))
	assert.False(t, byName(ctx, NewRequest("c", nil)))

	byPrefix := MatchPrefix("user.")
	assert.True(t, byPrefix(ctx, NewRequest("user.create", nil)))
	assert.False(t, byPrefix(ctx, NewRequest("order.create", nil)))
}
