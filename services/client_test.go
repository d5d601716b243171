package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return NewClient(server.URL, 5*time.Second), &calls
}

func TestSubmitProjectSuccess(t *testing.T) {
	client, calls := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/save-project/" {
			t.Errorf("got %s %s, want POST /save-project/", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("body is not multipart: %v", err)
		}
		if got := r.FormValue("title"); got != "Smart Irrigation" {
			t.Errorf("title part = %q", got)
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":    "Project saved successfully",
			"product_id": 48291,
		})
	})

	productID, err := client.SubmitProject(context.Background(), submittableDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if productID != 48291 {
		t.Errorf("got product id %d, want 48291", productID)
	}
	if *calls != 1 {
		t.Errorf("got %d backend calls, want exactly 1", *calls)
	}
}

func TestSubmitProjectSurfacesServerMessage(t *testing.T) {
	client, calls := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "duplicate title"})
	})

	_, err := client.SubmitProject(context.Background(), submittableDraft())
	if !errs.IsTransport(err) {
		t.Fatalf("got %v, want a transport error", err)
	}
	if err.Error() != "duplicate title" {
		t.Errorf("got message %q, want the server message verbatim", err.Error())
	}
	if *calls != 1 {
		t.Errorf("got %d backend calls, want exactly 1 (no retries)", *calls)
	}
}

func TestSubmitProjectGenericMessageFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"error body without message", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail": "stack trace"}`))
		}},
		{"non-json error body", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}},
		{"malformed success body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}},
		{"success body without product id", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message": "ok"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, tt.handler)

			_, err := client.SubmitProject(context.Background(), submittableDraft())
			if !errs.IsTransport(err) {
				t.Fatalf("got %v, want a transport error", err)
			}
			if err.Error() != errs.GenericTransportMessage {
				t.Errorf("got message %q, want the generic fallback", err.Error())
			}
		})
	}
}

func TestSubmitProjectNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL, time.Second)
	_, err := client.SubmitProject(context.Background(), submittableDraft())
	if !errs.IsTransport(err) {
		t.Fatalf("got %v, want a transport error", err)
	}
	if err.Error() != errs.GenericTransportMessage {
		t.Errorf("got message %q, want the generic fallback", err.Error())
	}
}

func TestGetProjects(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get-projects/" {
			t.Errorf("got path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("staff_id"); got != "" {
			t.Errorf("unexpected staff_id %q", got)
		}
		_ = json.NewEncoder(w).Encode([]models.Project{
			{ProductID: 1, Title: "Smart Irrigation"},
			{ProductID: 2, Title: "Campus Ledger"},
		})
	})

	projects, err := client.GetProjects(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 || projects[0].Title != "Smart Irrigation" {
		t.Errorf("unexpected projects: %+v", projects)
	}
}

func TestGetProjectsForStaff(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("staff_id"); got != "STF-42" {
			t.Errorf("got staff_id %q, want STF-42", got)
		}
		_ = json.NewEncoder(w).Encode([]models.Project{})
	})

	if _, err := client.GetProjects(context.Background(), "STF-42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetProject(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/10001/" {
			t.Errorf("got path %q, want /10001/", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(models.Project{ProductID: 10001, Title: "Smart Irrigation"})
	})

	project, err := client.GetProject(context.Background(), 10001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ProductID != 10001 {
		t.Errorf("got product id %d", project.ProductID)
	}
}

func TestLogin(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login/" || r.Method != http.MethodPost {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}

		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decoding credentials: %v", err)
		}
		if creds.Email != "staff@snsihub.ai" {
			t.Errorf("got email %q", creds.Email)
		}

		_ = json.NewEncoder(w).Encode(models.AuthResult{
			Message:  "login successful",
			StaffID:  "STF-42",
			UserName: "Priya",
			Role:     models.RoleStaff,
		})
	})

	auth, err := client.Login(context.Background(), models.Credentials{
		Email:    "staff@snsihub.ai",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.StaffID != "STF-42" || auth.Role != models.RoleStaff {
		t.Errorf("unexpected auth result: %+v", auth)
	}
}

func TestLoginSurfacesBackendRejection(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})

	_, err := client.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "nope"})
	if err == nil || err.Error() != "invalid credentials" {
		t.Fatalf("got %v, want the backend's message verbatim", err)
	}
}

func TestGetStaffData(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_staff_data/" {
			t.Errorf("got path %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"staff_data": []models.StaffInfo{{StaffID: "STF-42", Name: "Priya"}},
		})
	})

	staff, err := client.GetStaffData(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(staff) != 1 || staff[0].StaffID != "STF-42" {
		t.Errorf("unexpected staff data: %+v", staff)
	}
}

func TestAssignProject(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assign_project/" || r.Method != http.MethodPost {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}

		var assignment models.Assignment
		if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
			t.Errorf("decoding assignment: %v", err)
		}
		if assignment.StaffID != "STF-42" || assignment.ProductID != 10001 {
			t.Errorf("unexpected assignment: %+v", assignment)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "assigned"})
	})

	err := client.AssignProject(context.Background(), models.Assignment{
		StaffID:   "STF-42",
		ProductID: 10001,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
