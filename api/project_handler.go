package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
	"github.com/snsihub/showcase-portal-backend/services"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	backend   *services.Client
}

func newProjectHandler(backend *services.Client) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		backend:   backend,
	}
}

func (h projectHandler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil || id <= 0 {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid productID"))
		return 0, false
	}
	return id, true
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.productID(w, r)
		if !ok {
			return
		}

		project, err := h.backend.GetProject(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.productID(w, r)
		if !ok {
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.backend.UpdateProject(r.Context(), id, project); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project updated",
		})
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.productID(w, r)
		if !ok {
			return
		}

		if err := h.backend.DeleteProject(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted",
		})
	}
}
