package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/utils"
	"github.com/memento-project/memento/models"
)

func (h *Handler) createCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CapsuleCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	capsule, err := h.services.CapsuleService.CreateCapsule(ctx, accountID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, capsule, http.StatusCreated)
}

func (h *Handler) listCapsules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	capsules, err := h.services.CapsuleService.ListCapsules(ctx, accountID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if capsules == nil {
		capsules = []models.Capsule{}
	}

	utils.WriteJSON(w, capsules, http.StatusOK)
}

func (h *Handler) getCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	capsuleID, err := pathID(r, "capsuleID")
	if err != nil {
		log.Err(err).Msg("invalid capsule id")
		http.Error(w, "invalid capsule id", http.StatusBadRequest)
		return
	}

	capsule, err := h.services.CapsuleService.GetCapsule(ctx, accountID, capsuleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, capsule, http.StatusOK)
}

func (h *Handler) updateCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	capsuleID, err := pathID(r, "capsuleID")
	if err != nil {
		log.Err(err).Msg("invalid capsule id")
		http.Error(w, "invalid capsule id", http.StatusBadRequest)
		return
	}

	var req models.CapsuleUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	capsule, err := h.services.CapsuleService.UpdateCapsule(ctx, accountID, capsuleID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, capsule, http.StatusOK)
}

func (h *Handler) deleteCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	capsuleID, err := pathID(r, "capsuleID")
	if err != nil {
		log.Err(err).Msg("invalid capsule id")
		http.Error(w, "invalid capsule id", http.StatusBadRequest)
		return
	}

	if err = h.services.CapsuleService.DeleteCapsule(ctx, accountID, capsuleID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive int64 route parameter.
func pathID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}
