package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/staff/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP, mw.WithDevice)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Get("/profiles", h.Profiles)
			r.Post("/profiles/{id}/select", h.SelectProfile)
			r.Post("/profiles/{id}/pin", h.CreatePIN)
			r.Post("/profiles/{id}/pin/verify", h.VerifyPIN)

			r.Get("/flags", h.Flags)
			r.Put("/flags/{name}", h.SetFlag)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/session", h.Session)
			r.Post("/session/refresh", h.RefreshSession)
			r.Post("/session/logout", h.Logout)

			r.Get("/jobs", h.Jobs)
			r.Get("/jobs/live", h.LiveJobs)
			r.Post("/jobs/{id}/accept", h.AcceptJob)
			r.Post("/jobs/{id}/decline", h.DeclineJob)
			r.Post("/jobs/{id}/start", h.StartJob)
			r.Post("/jobs/{id}/complete", h.CompleteJob)
			r.Put("/jobs/{id}/requirements/{reqID}", h.SetRequirement)

			r.Get("/notifications", h.Notifications)
			r.Post("/notifications/read-all", h.MarkAllNotificationsRead)
			r.Post("/notifications/{id}/read", h.MarkNotificationRead)

			r.Post("/push-tokens", h.RegisterPushToken)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAssigner)

				r.Post("/assignments/validate", h.ValidateAssignment)
				r.Post("/assignments", h.CreateAssignment)
			})
		})
	})

	return router
}
