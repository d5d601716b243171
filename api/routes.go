package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/snsihub/showcase-portal-backend/models"
)

// setupPortalRoutes wires the public gallery surface, the authenticated
// form session surface, and the role-gated staff and admin surfaces.
func setupPortalRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/login", handlers.authHandler.login())
		r.Post("/register", handlers.authHandler.register())

		r.Get("/projects", handlers.galleryHandler.getGallery())
		r.Get("/project/{productID}", handlers.projectHandler.getProject())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Form session endpoints
		r.Post("/form-sessions", handlers.formHandler.createSession())
		r.Route("/form-sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", handlers.formHandler.getSession())
			r.Delete("/", handlers.formHandler.discardSession())
			r.Put("/draft", handlers.formHandler.updateDraft())

			r.Post("/tags", handlers.formHandler.addTag())
			r.Delete("/tags/{value}", handlers.formHandler.removeTag())
			r.Post("/domains", handlers.formHandler.addDomain())
			r.Delete("/domains/{value}", handlers.formHandler.removeDomain())

			r.Post("/image", handlers.formHandler.uploadImage())
			r.Post("/ppt", handlers.formHandler.uploadPPT())
			r.Post("/members/{memberIndex}/photo", handlers.formHandler.uploadMemberPhoto())
			r.Post("/mentors/{mentorRole}/photo", handlers.formHandler.uploadMentorPhoto())

			r.Post("/next", handlers.formHandler.next())
			r.Post("/previous", handlers.formHandler.previous())
			r.Post("/submit", handlers.formHandler.submit())
		})

		// Staff endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireRole(models.RoleStaff, models.RoleSuperAdmin))

			r.Get("/staff/projects", handlers.galleryHandler.getStaffProjects())
			r.Put("/project/{productID}", handlers.projectHandler.updateProject())
			r.Delete("/project/{productID}", handlers.projectHandler.deleteProject())
		})

		// Super-admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireRole(models.RoleSuperAdmin))

			r.Get("/admin/staff", handlers.adminHandler.getStaffData())
			r.Post("/admin/assignments", handlers.adminHandler.assignProject())
		})
	})
}
