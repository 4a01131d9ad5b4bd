package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListCompanies retrieves all companies visible to the caller
func (c *Client) ListCompanies(ctx context.Context) ([]CompanyDTO, error) {
	var rows []CompanyDTO
	if err := c.getJSON(ctx, "/companies", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetCompany retrieves one company by id
func (c *Client) GetCompany(ctx context.Context, companyID int) (*CompanyDTO, error) {
	var row CompanyDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/companies/%d", companyID), &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateCompany creates a company
func (c *Client) CreateCompany(ctx context.Context, payload CompanyCreateDTO) (*CompanyDTO, error) {
	var row CompanyDTO
	if err := c.sendJSON(ctx, http.MethodPost, "/companies", payload, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateCompany patches a company
func (c *Client) UpdateCompany(ctx context.Context, companyID int, payload CompanyUpdateDTO) (*CompanyDTO, error) {
	var row CompanyDTO
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/companies/%d", companyID), payload, &row); err != nil {
		return nil, err
	}
	return &row, nil
}
