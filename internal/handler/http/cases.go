package http

import (
	"encoding/json"
	"net/http"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/utils"
	"github.com/memento-project/memento/models"
)

// openCase files a death report. Public: the reporter does not need an
// account.
func (h *Handler) openCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.OpenCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.CaseService.OpenCase(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

// redeemVerification consumes a single-use verification token. Public:
// the link lands in the trusted contact's mailbox.
func (h *Handler) redeemVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.VerificationService.Redeem(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// cancelCases is the owner's "I am alive" escape hatch: it cancels every
// active case against the authenticated account.
func (h *Handler) cancelCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// An empty body means cancellation without a reason.
	var req models.CancelCaseRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	resp, err := h.services.CaseService.CancelActiveCases(ctx, accountID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
