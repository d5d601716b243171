package gallery

import (
	"reflect"
	"testing"

	"github.com/snsihub/showcase-portal-backend/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			ProductID:   10001,
			Title:       "Smart Irrigation",
			Description: "Automated field watering",
			College:     "SNSCE",
			Domains:     []string{"IoT", "Embedded Systems"},
			Tags:        []string{"sensors", "agriculture"},
		},
		{
			ProductID:   10002,
			Title:       "Campus Ledger",
			Description: "Tamper-proof record keeping with blockchain",
			College:     "SNSCT",
			Domains:     []string{"Blockchain"},
			Tags:        []string{"ledger"},
		},
		{
			ProductID:   10003,
			Title:       "Crop Doctor",
			Description: "Leaf disease detection",
			College:     "SNSCE",
			Domains:     []string{"Machine Learning"},
			Tags:        []string{"vision", "agriculture"},
		},
	}
}

func productIDs(projects []models.Project) []int {
	var ids []int
	for _, p := range projects {
		ids = append(ids, p.ProductID)
	}
	return ids
}

func TestFilterEmptyCriteriaReturnsEverything(t *testing.T) {
	projects := sampleProjects()
	got := Filter(projects, Criteria{})
	if len(got) != len(projects) {
		t.Errorf("got %d projects, want %d", len(got), len(projects))
	}
}

func TestFilterSearchText(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []int
	}{
		{"title match", "irrigation", []int{10001}},
		{"case insensitive", "IRRIGATION", []int{10001}},
		{"description match", "blockchain", []int{10002}},
		{"domain match", "machine learning", []int{10003}},
		{"tag match", "agriculture", []int{10001, 10003}},
		{"surrounding whitespace", "  irrigation  ", []int{10001}},
		{"no match", "quantum", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleProjects(), Criteria{SearchText: tt.search})
			if !reflect.DeepEqual(productIDs(got), tt.wantIDs) {
				t.Errorf("got %v, want %v", productIDs(got), tt.wantIDs)
			}
		})
	}
}

func TestFilterCombinesCriteria(t *testing.T) {
	got := Filter(sampleProjects(), Criteria{
		SearchText: "agriculture",
		College:    "SNSCE",
		Domain:     "Machine Learning",
	})
	if !reflect.DeepEqual(productIDs(got), []int{10003}) {
		t.Errorf("got %v, want [10003]", productIDs(got))
	}
}

func TestFilterTagsRequireAll(t *testing.T) {
	got := Filter(sampleProjects(), Criteria{Tags: []string{"vision", "agriculture"}})
	if !reflect.DeepEqual(productIDs(got), []int{10003}) {
		t.Errorf("got %v, want [10003]", productIDs(got))
	}
}

func TestFilterToleratesMissingFields(t *testing.T) {
	// Records coming off the wire can be arbitrarily sparse; they are
	// treated as empty, never skipped or faulted over.
	sparse := []models.Project{
		{ProductID: 1},
		{ProductID: 2, Title: "Smart Irrigation"},
	}

	got := Filter(sparse, Criteria{SearchText: "irrigation"})
	if !reflect.DeepEqual(productIDs(got), []int{2}) {
		t.Errorf("got %v, want [2]", productIDs(got))
	}

	if got := Filter(sparse, Criteria{}); len(got) != 2 {
		t.Errorf("empty criteria should keep sparse records, got %d", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	projects := sampleProjects()
	snapshot := sampleProjects()

	Filter(projects, Criteria{SearchText: "irrigation", College: "SNSCE"})

	if !reflect.DeepEqual(projects, snapshot) {
		t.Error("Filter mutated its input")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(sampleProjects(), Criteria{College: "SNSCE"})
	if !reflect.DeepEqual(productIDs(got), []int{10001, 10003}) {
		t.Errorf("got %v, want input order [10001 10003]", productIDs(got))
	}
}

func TestPage(t *testing.T) {
	projects := sampleProjects()

	tests := []struct {
		name    string
		page    int
		size    int
		wantIDs []int
	}{
		{"first page", 1, 2, []int{10001, 10002}},
		{"second page", 2, 2, []int{10003}},
		{"past the end", 3, 2, nil},
		{"zero page", 0, 2, nil},
		{"zero size", 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(projects, tt.page, tt.size)
			if !reflect.DeepEqual(productIDs(got), tt.wantIDs) {
				t.Errorf("got %v, want %v", productIDs(got), tt.wantIDs)
			}
		})
	}
}
