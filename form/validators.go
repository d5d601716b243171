package form

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "{0} is required"
	urlText      = "{0} must be a valid URL"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use `name` tag values for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("name"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(notBlankTag, notBlankText)
	RegisterCustomTranslation("url", urlText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// notBlankValidation rejects strings that are empty after trimming.
func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// checkFields runs struct validation and converts the first failure into a
// validation error carrying the offending field name (taken from the `name`
// tag) and a translated message.
func checkFields(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errs.NewValidationError("", err.Error())
	}

	fe := verrs[0]
	return errs.NewValidationError(fe.Field(), fe.Translate(Translator))
}

// Section validators. Each one only reads the draft; validation never
// mutates form state.

func validateBasics(d *models.ProjectDraft) error {
	fields := struct {
		Title       string `name:"title" validate:"notblank"`
		Description string `name:"description" validate:"notblank"`
		College     string `name:"college" validate:"notblank"`
	}{d.Title, d.Description, d.College}

	if err := checkFields(fields); err != nil {
		return err
	}
	if !models.IsCollegeChoice(d.College) {
		return errs.NewValidationError("college", "please select a college")
	}
	return nil
}

func validateProjectInfo(d *models.ProjectDraft) error {
	fields := struct {
		ProblemStatement string `name:"problemStatement" validate:"notblank"`
		KeyFeatures      string `name:"keyFeatures" validate:"notblank"`
		Scope            string `name:"scope" validate:"notblank"`
	}{d.ProblemStatement, d.KeyFeatures, d.Scope}

	if err := checkFields(fields); err != nil {
		return err
	}
	if len(d.Domains) == 0 {
		return errs.NewValidationError("domains", "select at least one domain")
	}
	if len(d.Tags) == 0 {
		return errs.NewValidationError("tags", "add at least one tag")
	}
	return nil
}

func validateTechStack(d *models.ProjectDraft) error {
	fields := struct {
		PresentationLayer string `name:"presentationLayer" validate:"notblank"`
		ApplicationLayer  string `name:"applicationLayer" validate:"notblank"`
		DataLayer         string `name:"dataLayer" validate:"notblank"`
		Methodology       string `name:"methodology" validate:"notblank"`
		Tools             string `name:"tools" validate:"notblank"`
	}{d.PresentationLayer, d.ApplicationLayer, d.DataLayer, d.Methodology, d.Tools}

	// the api note stays optional
	return checkFields(fields)
}

func validateTeamInfo(d *models.ProjectDraft) error {
	if d.TeamCount < models.MinTeamCount || d.TeamCount > models.MaxTeamCount {
		return errs.NewValidationError("teamCount", "select a team size")
	}
	if len(d.TeamMembers) != d.TeamCount {
		return errs.NewValidationError("teamMembers", "team members are incomplete")
	}
	for i, m := range d.TeamMembers {
		if strings.TrimSpace(m.Name) == "" {
			return errs.NewValidationError(memberField(i, "name"), "every team member needs a name")
		}
		if m.Photo == nil {
			return errs.NewValidationError(memberField(i, "photo"), "every team member needs a photo")
		}
	}

	mentors := []struct {
		field  string
		mentor models.Mentor
	}{
		{"associateProjectMentor", d.AssociateProjectMentor},
		{"associateTechMentor", d.AssociateTechMentor},
		{"dtMentor", d.DTMentor},
	}
	for _, m := range mentors {
		if strings.TrimSpace(m.mentor.Name) == "" {
			return errs.NewValidationError(m.field, m.field+" is required")
		}
		if m.mentor.Photo == nil {
			return errs.NewValidationError(m.field, m.field+" needs a photo")
		}
	}
	return nil
}

func validateUploads(d *models.ProjectDraft) error {
	if d.Image == nil {
		return errs.NewValidationError("image", "please upload a project image")
	}

	fields := struct {
		YoutubeURL string `name:"youtubeUrl" validate:"notblank,url"`
		GithubURL  string `name:"githubUrl" validate:"notblank,url"`
	}{d.YoutubeURL, d.GithubURL}
	if err := checkFields(fields); err != nil {
		return err
	}

	if d.PPT == nil {
		return errs.NewValidationError("ppt", "please upload the slide deck")
	}
	return nil
}

func memberField(i int, sub string) string {
	return "teamMembers[" + strconv.Itoa(i) + "][" + sub + "]"
}
