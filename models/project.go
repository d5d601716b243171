package models

// FileBlob is a binary attachment as returned by the collaborator backend:
// a base64 payload alongside its content type. Older records may carry only
// some of the fields, or none at all.
type FileBlob struct {
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Data        string `json:"data,omitempty"`
}

// ProjectMember is one person attached to a published project.
type ProjectMember struct {
	Name  string    `json:"name"`
	Photo *FileBlob `json:"photo,omitempty"`
}

// ProjectMentors holds the three fixed mentor roles of a published project.
type ProjectMentors struct {
	AssociateProjectMentor ProjectMember `json:"associate_project_mentor"`
	AssociateTechMentor    ProjectMember `json:"associate_tech_mentor"`
	DTMentor               ProjectMember `json:"dt_mentor"`
}

// Project is the read-only record served by the collaborator backend. The
// schema is consumed here, not owned: records written by earlier backend
// iterations routinely miss fields, so every consumer must tolerate zero
// values and nil slices.
type Project struct {
	ProductID         int             `json:"product_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	College           string          `json:"college,omitempty"`
	Domains           []string        `json:"domains,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	Image             *FileBlob       `json:"image,omitempty"`
	PPT               *FileBlob       `json:"ppt,omitempty"`
	GithubURL         string          `json:"github_url,omitempty"`
	YoutubeURL        string          `json:"youtube_url,omitempty"`
	DemoURL           string          `json:"demo_url,omitempty"`
	PresentationLayer string          `json:"presentation_layer,omitempty"`
	ApplicationLayer  string          `json:"application_layer,omitempty"`
	DataLayer         string          `json:"data_layer,omitempty"`
	Methodology       string          `json:"methodology,omitempty"`
	Tools             string          `json:"tools,omitempty"`
	API               string          `json:"api,omitempty"`
	TeamMembers       []ProjectMember `json:"team_members,omitempty"`
	Mentors           *ProjectMentors `json:"mentors,omitempty"`
	StaffID           string          `json:"staff_id,omitempty"`
}
