package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/gallery"
	"github.com/snsihub/showcase-portal-backend/services"
)

const galleryPageSize = 10

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	backend   *services.Client
}

func newGalleryHandler(backend *services.Client) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		backend:   backend,
	}
}

// getGallery fetches the published collection and applies the query-side
// filters. Filtering is local; the backend call is the same regardless of
// criteria.
func (h galleryHandler) getGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.backend.GetProjects(r.Context(), "")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		criteria := gallery.Criteria{
			SearchText: q.Get("search"),
			College:    q.Get("college"),
			Domain:     q.Get("domain"),
		}
		if tags := q.Get("tags"); tags != "" {
			for _, tag := range strings.Split(tags, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					criteria.Tags = append(criteria.Tags, tag)
				}
			}
		}

		filtered := gallery.Filter(projects, criteria)

		page := 1
		if raw := q.Get("page"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				page = n
			}
		}

		h.responder.WriteJSON(w, map[string]any{
			"projects": gallery.Page(filtered, page, galleryPageSize),
			"total":    len(filtered),
			"page":     page,
		})
	}
}

// getStaffProjects returns the projects assigned to the calling staff
// member, the data behind the staff dashboard.
func (h galleryHandler) getStaffProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projects, err := h.backend.GetProjects(r.Context(), session.StaffID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}
