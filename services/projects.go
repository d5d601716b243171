package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/snsihub/showcase-portal-backend/models"
)

// GetProjects fetches the published project collection. When staffID is
// non-empty only that staff member's projects are returned.
func (c *Client) GetProjects(ctx context.Context, staffID string) ([]models.Project, error) {
	path := "/get-projects/"
	if staffID != "" {
		path += "?staff_id=" + url.QueryEscape(staffID)
	}

	var projects []models.Project
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches one project by its product identifier.
func (c *Client) GetProject(ctx context.Context, productID int) (models.Project, error) {
	var project models.Project
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/%d/", productID), nil, &project)
	return project, err
}

// UpdateProject replaces a project record, used for staff edits.
func (c *Client) UpdateProject(ctx context.Context, productID int, project models.Project) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/%d/", productID), project, nil)
}

// DeleteProject removes a project by its product identifier.
func (c *Client) DeleteProject(ctx context.Context, productID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/%d/", productID), nil, nil)
}
