package form

import (
	"github.com/snsihub/showcase-portal-backend/models"
)

// Section identifies one step of the multi-step submission form, 1-based.
type Section int

const (
	SectionBasics Section = iota + 1
	SectionProjectInfo
	SectionTechStack
	SectionTeamInfo
	SectionUploads
)

// SectionDef describes one step of a form flow: its identity, the title
// shown to the user, and the validator gating forward navigation out of it.
type SectionDef struct {
	Section  Section
	Title    string
	Validate func(*models.ProjectDraft) error
}

// Config enumerates the sections of a form flow in order. Every page variant
// of the portal is driven by one of these instead of its own implementation.
type Config struct {
	Sections []SectionDef
}

// DefaultConfig is the five-section submission flow.
func DefaultConfig() Config {
	return Config{Sections: []SectionDef{
		{SectionBasics, "Basics", validateBasics},
		{SectionProjectInfo, "Project Info", validateProjectInfo},
		{SectionTechStack, "Tech Stack", validateTechStack},
		{SectionTeamInfo, "Team Info", validateTeamInfo},
		{SectionUploads, "Uploads", validateUploads},
	}}
}

// Controller tracks the current position in a section sequence and gates
// forward navigation on the current section's validator. Backward navigation
// is never validated.
type Controller struct {
	sections []SectionDef
	pos      int // 1-based, always within [1, len(sections)]
}

func NewController(cfg Config) *Controller {
	return &Controller{sections: cfg.Sections, pos: 1}
}

// Pos returns the 1-based position of the current section.
func (c *Controller) Pos() int {
	return c.pos
}

// Current returns the definition of the current section.
func (c *Controller) Current() SectionDef {
	return c.sections[c.pos-1]
}

func (c *Controller) Len() int {
	return len(c.sections)
}

// Next advances to the following section if the current one validates
// against the draft. On a validation failure the position is unchanged and
// the validator's error is returned for display.
func (c *Controller) Next(d *models.ProjectDraft) error {
	if err := c.Current().Validate(d); err != nil {
		return err
	}
	if c.pos < len(c.sections) {
		c.pos++
	}
	return nil
}

// Previous steps back one section, clamped at the first.
func (c *Controller) Previous() {
	if c.pos > 1 {
		c.pos--
	}
}

// ValidateAll runs every section's validator in order. The first failing
// section becomes the current one and its error is returned; with no
// failures the position is unchanged.
func (c *Controller) ValidateAll(d *models.ProjectDraft) error {
	for i, s := range c.sections {
		if err := s.Validate(d); err != nil {
			c.pos = i + 1
			return err
		}
	}
	return nil
}
