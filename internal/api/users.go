package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListCompanyUsers retrieves the users of one company
func (c *Client) ListCompanyUsers(ctx context.Context, companyID int) ([]UserDTO, error) {
	var rows []UserDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/companies/%d/users", companyID), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCompanyUser creates a user inside one company
func (c *Client) CreateCompanyUser(ctx context.Context, companyID int, payload UserCreateDTO) (*UserDTO, error) {
	var row UserDTO
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/companies/%d/users", companyID), payload, &row); err != nil {
		return nil, err
	}
	return &row, nil
}
