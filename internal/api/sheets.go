package api

import (
	"context"
	"fmt"
)

// ListSheets retrieves the sheets of one company
func (c *Client) ListSheets(ctx context.Context, companyID int) ([]SheetDTO, error) {
	var rows []SheetDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/companies/%d/sheets", companyID), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
