// Package httpx holds helpers shared by the HTTP handlers.
package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/pkg/auth"
	"github.com/GlebRadaev/creditmatch/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidScoreRange),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidLenderID),
		errors.Is(err, domain.ErrManualMatchingDisabled):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrStatusTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrMissingCreditScore):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Respond writes err with its status. Internal errors are logged and hidden from the client.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}

// Actor returns the authenticated caller or writes 401.
func Actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return actor, ok
}

// PathID parses the {id} route parameter or writes 400.
func PathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
