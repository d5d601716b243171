package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
)

func photo() *models.FileUpload {
	return &models.FileUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
}

// validDraft returns a draft that passes every section validator.
func validDraft() *models.ProjectDraft {
	d := models.NewProjectDraft()
	d.Title = "Smart Irrigation"
	d.Description = "Automated field watering"
	d.College = models.CollegeSNSCE
	d.ProblemStatement = "Manual irrigation wastes water"
	d.KeyFeatures = "Soil sensing, scheduling"
	d.Scope = "Campus greenhouses"
	d.Domains = []string{"IoT"}
	d.Tags = []string{"sensors"}
	d.PresentationLayer = "React"
	d.ApplicationLayer = "Django"
	d.DataLayer = "PostgreSQL"
	d.Methodology = "Agile"
	d.Tools = "Arduino IDE"
	d.TeamMembers[0] = models.TeamMember{Name: "Priya", Photo: photo()}
	d.AssociateProjectMentor = models.Mentor{Name: "Dr. Rao", Photo: photo()}
	d.AssociateTechMentor = models.Mentor{Name: "Mr. Kumar", Photo: photo()}
	d.DTMentor = models.Mentor{Name: "Ms. Devi", Photo: photo()}
	d.Image = photo()
	d.YoutubeURL = "https://youtube.com/watch?v=abc"
	d.GithubURL = "https://github.com/example/irrigation"
	d.PPT = &models.FileUpload{
		Filename:    "deck.pptx",
		ContentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		Data:        []byte("slides"),
	}
	return d
}

func TestValidDraftPassesAllSections(t *testing.T) {
	d := validDraft()
	for _, s := range DefaultConfig().Sections {
		if err := s.Validate(d); err != nil {
			t.Errorf("section %q rejected a valid draft: %v", s.Title, err)
		}
	}
}

func TestValidateBasics(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ProjectDraft)
		wantField string
	}{
		{"empty title", func(d *models.ProjectDraft) { d.Title = "" }, "title"},
		{"whitespace title", func(d *models.ProjectDraft) { d.Title = "   " }, "title"},
		{"empty description", func(d *models.ProjectDraft) { d.Description = "" }, "description"},
		{"empty college", func(d *models.ProjectDraft) { d.College = "" }, "college"},
		{"unknown college", func(d *models.ProjectDraft) { d.College = "MIT" }, "college"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := validateBasics(d)
			assertValidationError(t, err, tt.wantField)
		})
	}
}

func TestValidateProjectInfo(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ProjectDraft)
		wantField string
	}{
		{"empty problem statement", func(d *models.ProjectDraft) { d.ProblemStatement = "" }, "problemStatement"},
		{"empty key features", func(d *models.ProjectDraft) { d.KeyFeatures = "" }, "keyFeatures"},
		{"empty scope", func(d *models.ProjectDraft) { d.Scope = "" }, "scope"},
		{"no domains", func(d *models.ProjectDraft) { d.Domains = nil }, "domains"},
		{"no tags", func(d *models.ProjectDraft) { d.Tags = nil }, "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := validateProjectInfo(d)
			assertValidationError(t, err, tt.wantField)
		})
	}
}

func TestValidateTechStackAPIOptional(t *testing.T) {
	d := validDraft()
	d.API = ""
	if err := validateTechStack(d); err != nil {
		t.Errorf("api note should be optional, got %v", err)
	}

	d.Tools = " "
	assertValidationError(t, validateTechStack(d), "tools")
}

func TestValidateTeamInfo(t *testing.T) {
	t.Run("member without photo", func(t *testing.T) {
		d := validDraft()
		d.TeamMembers[0].Photo = nil
		assertValidationError(t, validateTeamInfo(d), "teamMembers[0][photo]")
	})

	t.Run("member without name", func(t *testing.T) {
		d := validDraft()
		if err := d.SetTeamCount(2); err != nil {
			t.Fatal(err)
		}
		d.TeamMembers[1].Photo = photo()
		assertValidationError(t, validateTeamInfo(d), "teamMembers[1][name]")
	})

	t.Run("mentor without name", func(t *testing.T) {
		d := validDraft()
		d.DTMentor.Name = ""
		assertValidationError(t, validateTeamInfo(d), "dtMentor")
	})

	t.Run("count out of range", func(t *testing.T) {
		d := validDraft()
		d.TeamCount = 0
		assertValidationError(t, validateTeamInfo(d), "teamCount")
	})
}

func TestValidateUploads(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ProjectDraft)
		wantField string
	}{
		{"missing image", func(d *models.ProjectDraft) { d.Image = nil }, "image"},
		{"empty youtube url", func(d *models.ProjectDraft) { d.YoutubeURL = "" }, "youtubeUrl"},
		{"malformed youtube url", func(d *models.ProjectDraft) { d.YoutubeURL = "not a url" }, "youtubeUrl"},
		{"empty github url", func(d *models.ProjectDraft) { d.GithubURL = "" }, "githubUrl"},
		{"missing ppt", func(d *models.ProjectDraft) { d.PPT = nil }, "ppt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := validateUploads(d)
			assertValidationError(t, err, tt.wantField)
		})
	}
}

func TestValidationMessagesUseFieldNames(t *testing.T) {
	d := validDraft()
	d.Title = ""

	err := validateBasics(d)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("message %q should name the offending field", err.Error())
	}
}

func assertValidationError(t *testing.T, err error, wantField string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if !errs.IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *errs.ApiErr, got %T", err)
	}
	if apiErr.Field != wantField {
		t.Errorf("got field %q, want %q", apiErr.Field, wantField)
	}
}
