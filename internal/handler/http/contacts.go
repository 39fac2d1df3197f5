package http

import (
	"encoding/json"
	"net/http"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/utils"
	"github.com/memento-project/memento/models"
)

func (h *Handler) addContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ContactCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.AddContact(ctx, accountID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusCreated)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	contacts, err := h.services.ContactService.ListContacts(ctx, accountID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) removeContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		log.Err(err).Msg("invalid contact id")
		http.Error(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	if err = h.services.ContactService.RemoveContact(ctx, accountID, contactID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
