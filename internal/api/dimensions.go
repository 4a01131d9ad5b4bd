package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ListDimensions retrieves the dimensions of one company
func (c *Client) ListDimensions(ctx context.Context, companyID int) ([]DimensionDTO, error) {
	var rows []DimensionDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/companies/%d/dimensions", companyID), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateDimension creates a dimension inside one company
func (c *Client) CreateDimension(ctx context.Context, companyID int, payload DimensionCreateDTO) (*DimensionDTO, error) {
	var row DimensionDTO
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/companies/%d/dimensions", companyID), payload, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateDimension patches a dimension
func (c *Client) UpdateDimension(ctx context.Context, companyID, dimensionID int, payload DimensionUpdateDTO) (*DimensionDTO, error) {
	path := fmt.Sprintf("/companies/%d/dimensions/%d", companyID, dimensionID)

	var row DimensionDTO
	if err := c.sendJSON(ctx, http.MethodPatch, path, payload, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// ListDimensionValues retrieves the values of one dimension
func (c *Client) ListDimensionValues(ctx context.Context, companyID, dimensionID int) ([]DimensionValueDTO, error) {
	path := fmt.Sprintf("/companies/%d/dimensions/%d/values", companyID, dimensionID)

	var rows []DimensionValueDTO
	if err := c.getJSON(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateDimensionValue creates a value inside one dimension
func (c *Client) CreateDimensionValue(ctx context.Context, companyID, dimensionID int, payload DimensionValueCreateDTO) (*DimensionValueDTO, error) {
	path := fmt.Sprintf("/companies/%d/dimensions/%d/values", companyID, dimensionID)

	var row DimensionValueDTO
	if err := c.sendJSON(ctx, http.MethodPost, path, payload, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateDimensionValue patches a dimension value
func (c *Client) UpdateDimensionValue(ctx context.Context, companyID, dimensionID, valueID int, payload DimensionValueUpdateDTO) (*DimensionValueDTO, error) {
	path := fmt.Sprintf("/companies/%d/dimensions/%d/values/%d", companyID, dimensionID, valueID)

	var row DimensionValueDTO
	if err := c.sendJSON(ctx, http.MethodPatch, path, payload, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// ImportDimensions uploads a dimensions workbook and returns the
// per-bucket created/updated/skipped/error summary. Callers own any
// follow-up cache reloads.
func (c *Client) ImportDimensions(ctx context.Context, companyID int, filename string, file io.Reader) (*ImportSummaryDTO, error) {
	path := fmt.Sprintf("/companies/%d/dimensions/import", companyID)

	var summary ImportSummaryDTO
	if err := c.uploadFile(ctx, path, filename, file, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
