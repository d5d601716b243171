package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/form"
	"github.com/snsihub/showcase-portal-backend/models"
	"github.com/snsihub/showcase-portal-backend/store"
)

// maxUploadSize caps a single staged file at 10MB.
const maxUploadSize = 10 << 20

type formHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store.DraftStore
	submitter form.Submitter
	formCfg   form.Config
}

func newFormHandler(draftStore *store.DraftStore, submitter form.Submitter) formHandler {
	logger := log.With().Str("handlerName", "formHandler").Logger()

	return formHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     draftStore,
		submitter: submitter,
		formCfg:   form.DefaultConfig(),
	}
}

// sessionState is the form session snapshot returned after every mutation so
// the client can re-render without a second round trip.
type sessionState struct {
	SessionID    string   `json:"session_id"`
	Section      int      `json:"section"`
	SectionTitle string   `json:"section_title"`
	SectionCount int      `json:"section_count"`
	Submitting   bool     `json:"submitting"`
	Tags         []string `json:"tags"`
	Domains      []string `json:"domains"`
	TeamCount    int      `json:"team_count"`
}

func stateOf(session *store.FormSession) sessionState {
	wf := session.Workflow
	return sessionState{
		SessionID:    session.ID.String(),
		Section:      wf.Pos(),
		SectionTitle: wf.Section().Title,
		SectionCount: wf.SectionCount(),
		Submitting:   wf.Submitting(),
		Tags:         wf.Tags().Items(),
		Domains:      wf.Domains().Items(),
		TeamCount:    wf.Draft().TeamCount,
	}
}

// draftUpdate carries partial scalar updates; only non-nil fields are
// applied. Collection fields have their own endpoints so their invariants
// stay behind the mutation boundary.
type draftUpdate struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	College           *string `json:"college"`
	ProblemStatement  *string `json:"problemStatement"`
	KeyFeatures       *string `json:"keyFeatures"`
	Scope             *string `json:"scope"`
	PresentationLayer *string `json:"presentationLayer"`
	ApplicationLayer  *string `json:"applicationLayer"`
	DataLayer         *string `json:"dataLayer"`
	Methodology       *string `json:"methodology"`
	Tools             *string `json:"tools"`
	API               *string `json:"api"`
	YoutubeURL        *string `json:"youtubeUrl"`
	GithubURL         *string `json:"githubUrl"`
	DemoURL           *string `json:"demoUrl"`

	TeamCount *int     `json:"teamCount"`
	TeamNames []string `json:"teamNames"`

	AssociateProjectMentor *string `json:"associateProjectMentor"`
	AssociateTechMentor    *string `json:"associateTechMentor"`
	DTMentor               *string `json:"dtMentor"`
}

// loadSession resolves the session from the URL and checks that the caller
// owns it. A missing or foreign session writes the error itself.
func (h formHandler) loadSession(w http.ResponseWriter, r *http.Request) (*store.FormSession, bool) {
	idStr := chi.URLParam(r, "sessionID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid sessionID"))
		return nil, false
	}

	session, ok := h.store.Get(id)
	if !ok {
		h.responder.WriteError(w, errs.NewNotFoundError("form session not found"))
		return nil, false
	}

	caller, ok := sessionFromCtx(r.Context())
	if !ok || caller.StaffID != session.StaffID {
		h.responder.WriteError(w, errs.NewForbiddenError("form session belongs to another user"))
		return nil, false
	}
	return session, true
}

// createSession opens a fresh draft for the caller.
func (h formHandler) createSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := sessionFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		wf := form.NewWorkflow(h.formCfg, h.submitter)
		session := h.store.Create(caller.StaffID, wf)

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, stateOf(session))
	}
}

func (h formHandler) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		session.Lock()
		defer session.Unlock()
		h.responder.WriteJSON(w, stateOf(session))
	}
}

// updateDraft applies scalar field edits to the draft.
func (h formHandler) updateDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		var update draftUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode draft update body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		session.Lock()
		defer session.Unlock()

		if err := applyUpdate(session.Workflow.Draft(), update); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stateOf(session))
	}
}

func applyUpdate(d *models.ProjectDraft, update draftUpdate) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&d.Title, update.Title)
	setString(&d.Description, update.Description)
	setString(&d.ProblemStatement, update.ProblemStatement)
	setString(&d.KeyFeatures, update.KeyFeatures)
	setString(&d.Scope, update.Scope)
	setString(&d.PresentationLayer, update.PresentationLayer)
	setString(&d.ApplicationLayer, update.ApplicationLayer)
	setString(&d.DataLayer, update.DataLayer)
	setString(&d.Methodology, update.Methodology)
	setString(&d.Tools, update.Tools)
	setString(&d.API, update.API)
	setString(&d.YoutubeURL, update.YoutubeURL)
	setString(&d.GithubURL, update.GithubURL)
	setString(&d.DemoURL, update.DemoURL)
	setString(&d.AssociateProjectMentor.Name, update.AssociateProjectMentor)
	setString(&d.AssociateTechMentor.Name, update.AssociateTechMentor)
	setString(&d.DTMentor.Name, update.DTMentor)

	if update.College != nil {
		if !models.IsCollegeChoice(*update.College) {
			return errs.NewValidationError("college", "please select a college")
		}
		d.College = *update.College
	}

	if update.TeamCount != nil {
		if err := d.SetTeamCount(*update.TeamCount); err != nil {
			return errs.NewValidationError("teamCount", err.Error())
		}
	}

	// Team names are applied by index into the current slots; entries past
	// the team count are ignored rather than growing the sequence.
	for i, name := range update.TeamNames {
		if i >= len(d.TeamMembers) {
			break
		}
		d.TeamMembers[i].Name = name
	}
	return nil
}

type selectionRequest struct {
	Value string `json:"value"`
}

func (h formHandler) addTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mutateSelection(w, r, func(session *store.FormSession, value string) {
			session.Workflow.Tags().Add(value)
		})
	}
}

func (h formHandler) removeTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.removeSelection(w, r, func(session *store.FormSession, value string) {
			session.Workflow.Tags().Remove(value)
		})
	}
}

func (h formHandler) addDomain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mutateSelection(w, r, func(session *store.FormSession, value string) {
			if models.IsDomainChoice(value) {
				session.Workflow.Domains().Add(value)
			}
		})
	}
}

func (h formHandler) removeDomain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.removeSelection(w, r, func(session *store.FormSession, value string) {
			session.Workflow.Domains().Remove(value)
		})
	}
}

// mutateSelection handles the add-style endpoints that carry a JSON body.
// Out-of-capacity and duplicate adds are no-ops, not errors.
func (h formHandler) mutateSelection(w http.ResponseWriter, r *http.Request, apply func(*store.FormSession, string)) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
		return
	}
	if strings.TrimSpace(req.Value) == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("value is required"))
		return
	}

	session.Lock()
	defer session.Unlock()
	apply(session, strings.TrimSpace(req.Value))
	h.responder.WriteJSON(w, stateOf(session))
}

// removeSelection handles the delete-style endpoints whose value rides in
// the URL.
func (h formHandler) removeSelection(w http.ResponseWriter, r *http.Request, apply func(*store.FormSession, string)) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	value := chi.URLParam(r, "value")
	if value == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing value"))
		return
	}

	session.Lock()
	defer session.Unlock()
	apply(session, value)
	h.responder.WriteJSON(w, stateOf(session))
}

// readUpload pulls the "file" part out of a multipart request and stages it
// in memory.
func (h formHandler) readUpload(w http.ResponseWriter, r *http.Request) (*models.FileUpload, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("malformed upload"))
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("missing file"))
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read upload"))
		return nil, false
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &models.FileUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, true
}

func isImage(f *models.FileUpload) bool {
	return strings.HasPrefix(f.ContentType, "image/")
}

func isSlideDeck(f *models.FileUpload) bool {
	switch f.ContentType {
	case "application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation":
		return true
	}
	name := strings.ToLower(f.Filename)
	return strings.HasSuffix(name, ".ppt") || strings.HasSuffix(name, ".pptx")
}

func (h formHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		upload, ok := h.readUpload(w, r)
		if !ok {
			return
		}
		if !isImage(upload) {
			h.responder.WriteError(w, errs.NewValidationError("image", "please upload a valid image file"))
			return
		}

		session.Lock()
		defer session.Unlock()
		session.Workflow.Draft().Image = upload
		h.responder.WriteJSON(w, stateOf(session))
	}
}

func (h formHandler) uploadPPT() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		upload, ok := h.readUpload(w, r)
		if !ok {
			return
		}
		if !isSlideDeck(upload) {
			h.responder.WriteError(w, errs.NewValidationError("ppt", "please upload a valid PPT file"))
			return
		}

		session.Lock()
		defer session.Unlock()
		session.Workflow.Draft().PPT = upload
		h.responder.WriteJSON(w, stateOf(session))
	}
}

func (h formHandler) uploadMemberPhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		index, err := strconv.Atoi(chi.URLParam(r, "memberIndex"))
		if err != nil || index < 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid member index"))
			return
		}

		upload, ok := h.readUpload(w, r)
		if !ok {
			return
		}
		if !isImage(upload) {
			h.responder.WriteError(w, errs.NewValidationError("photo", "please upload a valid image file"))
			return
		}

		session.Lock()
		defer session.Unlock()

		draft := session.Workflow.Draft()
		if index >= len(draft.TeamMembers) {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid member index"))
			return
		}
		draft.TeamMembers[index].Photo = upload
		h.responder.WriteJSON(w, stateOf(session))
	}
}

func (h formHandler) uploadMentorPhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		upload, ok := h.readUpload(w, r)
		if !ok {
			return
		}
		if !isImage(upload) {
			h.responder.WriteError(w, errs.NewValidationError("photo", "please upload a valid image file"))
			return
		}

		session.Lock()
		defer session.Unlock()

		draft := session.Workflow.Draft()
		var mentor *models.Mentor
		switch chi.URLParam(r, "mentorRole") {
		case "associate-project":
			mentor = &draft.AssociateProjectMentor
		case "associate-tech":
			mentor = &draft.AssociateTechMentor
		case "dt":
			mentor = &draft.DTMentor
		default:
			h.responder.WriteError(w, errs.NewBadRequestError("unknown mentor role"))
			return
		}
		mentor.Photo = upload
		h.responder.WriteJSON(w, stateOf(session))
	}
}

// next advances the form when the current section validates; otherwise the
// section stays put and the validator's message is surfaced.
func (h formHandler) next() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		session.Lock()
		defer session.Unlock()

		if err := session.Workflow.Next(); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stateOf(session))
	}
}

func (h formHandler) previous() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		session.Lock()
		defer session.Unlock()

		session.Workflow.Previous()
		h.responder.WriteJSON(w, stateOf(session))
	}
}

// submit runs the full-draft validation and, when it passes, sends the
// draft to the collaborator backend. A successful submit discards the
// session; any failure leaves the draft intact for a manual retry.
//
// The session lock is deliberately not held here: the workflow's in-flight
// flag answers a concurrent submit with 409, and the draft stays readable
// while the backend call is pending. The workflow is spent after a success,
// so a request still holding the session when it is deleted cannot save the
// draft a second time.
func (h formHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		productID, err := session.Workflow.Submit(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.store.Delete(session.ID)
		h.responder.WriteJSONWithStatus(w, http.StatusCreated, map[string]any{
			"message":    "Project saved successfully",
			"product_id": productID,
		})
	}
}

// discardSession drops the draft, the equivalent of navigating away.
func (h formHandler) discardSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		h.store.Delete(session.ID)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "form session discarded",
		})
	}
}
