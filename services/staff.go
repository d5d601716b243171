package services

import (
	"context"
	"net/http"

	"github.com/snsihub/showcase-portal-backend/models"
)

// GetStaffData lists all staff members for the super-admin assignment view.
func (c *Client) GetStaffData(ctx context.Context) ([]models.StaffInfo, error) {
	var resp struct {
		StaffData []models.StaffInfo `json:"staff_data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/get_staff_data/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.StaffData, nil
}

// AssignProject pairs a staff member with a project.
func (c *Client) AssignProject(ctx context.Context, assignment models.Assignment) error {
	return c.doJSON(ctx, http.MethodPost, "/assign_project/", assignment, nil)
}
