package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
	"github.com/snsihub/showcase-portal-backend/services"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	backend   *services.Client
}

func newAdminHandler(backend *services.Client) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		backend:   backend,
	}
}

// getStaffData lists staff members for the assignment view.
func (h adminHandler) getStaffData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		staff, err := h.backend.GetStaffData(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]any{"staff_data": staff})
	}
}

// assignProject pairs a staff member with a project.
func (h adminHandler) assignProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var assignment models.Assignment
		if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if strings.TrimSpace(assignment.StaffID) == "" {
			h.responder.WriteError(w, errs.NewValidationError("staff_id", "staff_id is required"))
			return
		}
		if assignment.ProductID <= 0 {
			h.responder.WriteError(w, errs.NewValidationError("product_id", "product_id is required"))
			return
		}

		if err := h.backend.AssignProject(r.Context(), assignment); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project assigned",
		})
	}
}
