package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/pkg/auth"
	"github.com/GlebRadaev/creditmatch/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domain.ErrInvalidScoreRange), http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrInvalidLenderID, http.StatusBadRequest},
		{domain.ErrManualMatchingDisabled, http.StatusBadRequest},
		{fmt.Errorf("customer 1: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrStatusTransition, http.StatusConflict},
		{domain.ErrMissingCreditScore, http.StatusUnprocessableEntity},
		{domain.ErrDuplicateInBatch, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, errors.New("pq: secret detail"))

	var body utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)

	rec = httptest.NewRecorder()
	Respond(rec, domain.ErrNotFound)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ErrNotFound.Error(), body.Message)
}

func TestActor(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := Actor(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	want := domain.Actor{UserID: 1, Role: domain.RoleLender, OrgID: 2}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithActor(req.Context(), want))
	rec = httptest.NewRecorder()
	actor, ok := Actor(rec, req)
	assert.True(t, ok)
	assert.Equal(t, want, actor)
}

func TestPathID(t *testing.T) {
	withID := func(id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, ok := PathID(httptest.NewRecorder(), withID("42"))
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-1"} {
		rec := httptest.NewRecorder()
		_, ok := PathID(rec, withID(bad))
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
