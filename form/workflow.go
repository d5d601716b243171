package form

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
)

// Submitter sends a finalized draft to the collaborator backend and returns
// the minted product identifier. Implementations make exactly one network
// call per invocation and never retry.
type Submitter interface {
	SubmitProject(ctx context.Context, draft *models.ProjectDraft) (int, error)
}

// Workflow owns one ProjectDraft for its entire lifetime and drives it
// through the section sequence to submission. All mutations of the draft's
// bounded collections go through the workflow's selectors.
type Workflow struct {
	controller *Controller
	draft      *models.ProjectDraft
	submitter  Submitter
	submitting atomic.Bool
	submitted  atomic.Bool
	logger     zerolog.Logger
}

func NewWorkflow(cfg Config, submitter Submitter) *Workflow {
	return &Workflow{
		controller: NewController(cfg),
		draft:      models.NewProjectDraft(),
		submitter:  submitter,
		logger:     log.With().Str("handlerName", "formWorkflow").Logger(),
	}
}

// Draft exposes the underlying form state for field-level updates.
func (w *Workflow) Draft() *models.ProjectDraft {
	return w.draft
}

func (w *Workflow) Section() SectionDef {
	return w.controller.Current()
}

func (w *Workflow) Pos() int {
	return w.controller.Pos()
}

func (w *Workflow) SectionCount() int {
	return w.controller.Len()
}

func (w *Workflow) Next() error {
	return w.controller.Next(w.draft)
}

func (w *Workflow) Previous() {
	w.controller.Previous()
}

// Tags returns the mutation boundary for the draft's tag selection.
func (w *Workflow) Tags() Selector {
	return NewSelector(&w.draft.Tags, models.MaxTags)
}

// Domains returns the mutation boundary for the draft's domain selection.
func (w *Workflow) Domains() Selector {
	return NewSelector(&w.draft.Domains, models.MaxDomains)
}

// Submitting reports whether a submission is currently in flight.
func (w *Workflow) Submitting() bool {
	return w.submitting.Load()
}

// Submit validates every section in order and, if the whole draft is valid,
// hands it to the submitter. The first failing section becomes the current
// one and no network call is made. At most one submission is in flight at a
// time; the flag is cleared on every exit path so a failed attempt can be
// retried. On failure the draft is left untouched. A workflow whose
// submission completed is spent: further calls return an error without
// touching the network, so a stale handle can never save the draft twice.
func (w *Workflow) Submit(ctx context.Context) (int, error) {
	if !w.submitting.CompareAndSwap(false, true) {
		return 0, errs.NewSubmissionInFlightError()
	}
	defer w.submitting.Store(false)

	// Checked after the CAS: a winner marks the workflow submitted before
	// releasing the flag, so a raced second call always sees it.
	if w.submitted.Load() {
		return 0, errs.NewAlreadySubmittedError()
	}

	if err := w.controller.ValidateAll(w.draft); err != nil {
		w.logger.Debug().
			Int("section", w.controller.Pos()).
			Str("reason", err.Error()).
			Msg("submission blocked by validation")
		return 0, err
	}

	productID, err := w.submitter.SubmitProject(ctx, w.draft)
	if err != nil {
		w.logger.Warn().Err(err).Msg("submission failed")
		return 0, err
	}

	w.submitted.Store(true)
	w.logger.Info().Int("productId", productID).Msg("project submitted")
	return productID, nil
}
