package services

import (
	"context"
	"net/http"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
)

// SubmitResponse is the collaborator backend's answer to a saved project.
type SubmitResponse struct {
	Message   string `json:"message"`
	ProductID int    `json:"product_id"`
}

// SubmitProject encodes the draft and posts it to the save-project endpoint.
// One network call, no retries. The returned product identifier names the
// published project.
func (c *Client) SubmitProject(ctx context.Context, draft *models.ProjectDraft) (int, error) {
	body, contentType, err := EncodeDraft(draft)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/save-project/"), body)
	if err != nil {
		return 0, errs.NewTransportError(errs.GenericTransportMessage, err)
	}
	req.Header.Set("Content-Type", contentType)

	var resp SubmitResponse
	if err := c.do(req, &resp); err != nil {
		return 0, err
	}
	if resp.ProductID == 0 {
		return 0, errs.NewTransportError(errs.GenericTransportMessage, nil)
	}

	c.logger.Info().Int("productId", resp.ProductID).Msg("project saved")
	return resp.ProductID, nil
}
