package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/utils"
	"github.com/memento-project/memento/models"
)

// adminListCases lists cases for the operator surface. Supports
// ?status= and ?account_id= filters.
func (h *Handler) adminListCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.CaseFilter{
		Status: models.CaseStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		accountID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Msg("invalid account id filter")
			http.Error(w, "invalid account id filter", http.StatusBadRequest)
			return
		}
		filter.AccountID = accountID
	}

	cases, err := h.services.CaseService.ListCases(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if cases == nil {
		cases = []models.Case{}
	}

	utils.WriteJSON(w, cases, http.StatusOK)
}

func (h *Handler) adminGetCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caseID, err := pathID(r, "caseID")
	if err != nil {
		log.Err(err).Msg("invalid case id")
		http.Error(w, "invalid case id", http.StatusBadRequest)
		return
	}

	foundCase, err := h.services.CaseService.GetCase(r.Context(), caseID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, foundCase, http.StatusOK)
}

// adminUpdateCase forces a case status. FINAL can never be forced and a
// FINAL case cannot be moved; the service enforces both.
func (h *Handler) adminUpdateCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caseID, err := pathID(r, "caseID")
	if err != nil {
		log.Err(err).Msg("invalid case id")
		http.Error(w, "invalid case id", http.StatusBadRequest)
		return
	}

	var req models.AdminCaseUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CaseService.AdminUpdateCase(r.Context(), caseID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
