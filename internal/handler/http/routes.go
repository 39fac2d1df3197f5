package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	// public routes: reporters and trusted contacts have no account
	router.Group(func(r chi.Router) {
		r.Post("/api/cases", h.openCase)
		r.Post("/api/verifications/redeem", h.redeemVerification)
	})

	// owner routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/cases/cancel", h.cancelCases)

		r.Route("/api/capsules", func(r chi.Router) {
			r.Post("/", h.createCapsule)
			r.Get("/", h.listCapsules)
			r.Get("/{capsuleID}", h.getCapsule)
			r.Put("/{capsuleID}", h.updateCapsule)
			r.Delete("/{capsuleID}", h.deleteCapsule)
		})

		r.Route("/api/contacts", func(r chi.Router) {
			r.Post("/", h.addContact)
			r.Get("/", h.listContacts)
			r.Delete("/{contactID}", h.removeContact)
		})
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.adminOnly)

		r.Get("/api/admin/cases", h.adminListCases)
		r.Get("/api/admin/cases/{caseID}", h.adminGetCase)
		r.Patch("/api/admin/cases/{caseID}", h.adminUpdateCase)
	})

	return router
}
