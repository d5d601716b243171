package services

import (
	"context"
	"net/http"

	"github.com/snsihub/showcase-portal-backend/models"
)

// Login exchanges credentials for the identifier and role used for
// role-scoped routing.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	var result models.AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/login/", creds, &result)
	return result, err
}

// Register creates an account on the collaborator backend.
func (c *Client) Register(ctx context.Context, reg models.Registration) (models.AuthResult, error) {
	var result models.AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/register/", reg, &result)
	return result, err
}
