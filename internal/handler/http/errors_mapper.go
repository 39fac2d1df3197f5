package http

import (
	"errors"
	"net/http"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/service"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/internal/utils"
	"github.com/memento-project/memento/models"
)

// errorMapping pairs an HTTP status with the stable machine-readable
// code calling UIs branch on. The code set is part of the API contract.
type errorMapping struct {
	status int
	code   string
}

var errorMap = map[error]errorMapping{
	service.ErrInvalidDataProvided:   {http.StatusBadRequest, "INVALID_DATA"},
	service.ErrInsufficientAttestors: {http.StatusUnprocessableEntity, "INSUFFICIENT_ATTESTORS"},
	service.ErrCaseAlreadyOpen:       {http.StatusConflict, "CASE_ALREADY_OPEN"},
	service.ErrAlreadyDecided:        {http.StatusConflict, "ALREADY_DECIDED"},
	service.ErrTokenExpired:          {http.StatusGone, "TOKEN_EXPIRED"},
	service.ErrNoCancelableCase:      {http.StatusNotFound, "NO_CANCELABLE_CASE"},
	service.ErrContactLimitReached:   {http.StatusUnprocessableEntity, "CONTACT_LIMIT_REACHED"},

	store.ErrAccountNotFound:      {http.StatusNotFound, "ACCOUNT_NOT_FOUND"},
	store.ErrCaseNotFound:         {http.StatusNotFound, "CASE_NOT_FOUND"},
	store.ErrCaseFinalized:        {http.StatusConflict, "CASE_ALREADY_FINALIZED"},
	store.ErrVerificationNotFound: {http.StatusNotFound, "TOKEN_NOT_FOUND"},
	store.ErrCapsuleNotFound:      {http.StatusNotFound, "CAPSULE_NOT_FOUND"},
	store.ErrCapsuleReleased:      {http.StatusConflict, "CONTENT_ALREADY_RELEASED"},
	store.ErrContactNotFound:      {http.StatusNotFound, "CONTACT_NOT_FOUND"},
	store.ErrContactAlreadyExists: {http.StatusConflict, "CONTACT_ALREADY_EXISTS"},
}

func mapError(err error) errorMapping {
	for target, mapping := range errorMap {
		if errors.Is(err, target) {
			return mapping
		}
	}

	// Transient driver failures are safe to retry: no guarded write went
	// through.
	if store.IsRetryable(err) {
		return errorMapping{http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"}
	}

	return errorMapping{http.StatusInternalServerError, "INTERNAL"}
}

// writeError logs err and renders the uniform JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	mapping := mapError(err)
	message := err.Error()
	if mapping.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		// Internal details stay in the logs.
		message = http.StatusText(mapping.status)
	} else {
		log.Warn().Err(err).Str("code", mapping.code).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Code: mapping.code, Message: message}, mapping.status)
}
