package gallery

import (
	"strings"

	"github.com/snsihub/showcase-portal-backend/models"
)

// Criteria is the current search/filter state of a gallery view. Zero-value
// fields are ignored.
type Criteria struct {
	SearchText string
	College    string
	Domain     string
	Tags       []string
}

// Filter returns the projects visible under the given criteria. A project
// matches when the search text is a case-insensitive substring of its title,
// description, joined domains or joined tags (empty search matches
// everything) and every populated criterion field matches the corresponding
// attribute. The input is never mutated and result ordering follows input
// ordering. Records with missing fields are treated as having empty values
// rather than being skipped or faulting.
func Filter(projects []models.Project, c Criteria) []models.Project {
	search := strings.ToLower(strings.TrimSpace(c.SearchText))

	var visible []models.Project
	for _, p := range projects {
		if !matchesSearch(p, search) {
			continue
		}
		if c.College != "" && p.College != c.College {
			continue
		}
		if c.Domain != "" && !contains(p.Domains, c.Domain) {
			continue
		}
		if !containsAll(p.Tags, c.Tags) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// Page returns the 1-based page of the given size, or an empty slice when
// the page is out of range.
func Page(projects []models.Project, page, size int) []models.Project {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(projects) {
		return nil
	}
	end := start + size
	if end > len(projects) {
		end = len(projects)
	}
	return projects[start:end]
}

func matchesSearch(p models.Project, search string) bool {
	if search == "" {
		return true
	}
	haystacks := []string{
		strings.ToLower(p.Title),
		strings.ToLower(p.Description),
		strings.ToLower(strings.Join(p.Domains, " ")),
		strings.ToLower(strings.Join(p.Tags, " ")),
	}
	for _, h := range haystacks {
		if strings.Contains(h, search) {
			return true
		}
	}
	return false
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func containsAll(values, wanted []string) bool {
	for _, w := range wanted {
		if !contains(values, w) {
			return false
		}
	}
	return true
}
