package models

import "fmt"

// Draft collection limits.
const (
	MaxTags      = 4
	MaxDomains   = 2
	MinTeamCount = 1
	MaxTeamCount = 6
)

// Colleges a draft may be submitted under.
const (
	CollegeSNSCE   = "SNSCE"
	CollegeSNSCT   = "SNSCT"
	CollegeSNSRCAS = "SNSRCAS"
)

var collegeChoices = []string{CollegeSNSCE, CollegeSNSCT, CollegeSNSRCAS}

func CollegeChoices() []string {
	out := make([]string, len(collegeChoices))
	copy(out, collegeChoices)
	return out
}

func IsCollegeChoice(v string) bool {
	for _, c := range collegeChoices {
		if c == v {
			return true
		}
	}
	return false
}

var domainChoices = []string{
	"Machine Learning",
	"Artificial Intelligence",
	"GenAI",
	"Blockchain",
	"IoT",
	"Big Data",
	"Embedded Systems",
}

func DomainChoices() []string {
	out := make([]string, len(domainChoices))
	copy(out, domainChoices)
	return out
}

func IsDomainChoice(v string) bool {
	for _, d := range domainChoices {
		if d == v {
			return true
		}
	}
	return false
}

// FileUpload is a binary attachment staged in memory until the draft is
// submitted. It never touches disk.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TeamMember is one entry of the repeatable team sub-form.
type TeamMember struct {
	Name  string
	Photo *FileUpload
}

// Mentor is one of the three fixed mentor slots.
type Mentor struct {
	Name  string
	Photo *FileUpload
}

// ProjectDraft is the in-progress, unsaved submission form state. It is
// created empty when a form session starts, mutated only through field-level
// updates, and discarded on abandonment or successful submit. It is never
// persisted.
type ProjectDraft struct {
	Title            string
	Description      string
	College          string
	ProblemStatement string
	KeyFeatures      string
	Scope            string

	Tags    []string
	Domains []string

	PresentationLayer string
	ApplicationLayer  string
	DataLayer         string
	Methodology       string
	Tools             string
	API               string // optional note

	TeamCount   int
	TeamMembers []TeamMember

	AssociateProjectMentor Mentor
	AssociateTechMentor    Mentor
	DTMentor               Mentor

	Image      *FileUpload
	YoutubeURL string
	GithubURL  string
	DemoURL    string
	PPT        *FileUpload
}

// NewProjectDraft returns an empty draft with a single team member slot.
func NewProjectDraft() *ProjectDraft {
	return &ProjectDraft{
		TeamCount:   MinTeamCount,
		TeamMembers: make([]TeamMember, MinTeamCount),
	}
}

// SetTeamCount resizes the team member sequence to n, preserving existing
// entries by index. Truncated entries are dropped, new slots start empty.
// The sequence length always equals TeamCount afterwards.
func (d *ProjectDraft) SetTeamCount(n int) error {
	if n < MinTeamCount || n > MaxTeamCount {
		return fmt.Errorf("team count must be between %d and %d", MinTeamCount, MaxTeamCount)
	}

	members := make([]TeamMember, n)
	copy(members, d.TeamMembers)
	d.TeamMembers = members
	d.TeamCount = n
	return nil
}
