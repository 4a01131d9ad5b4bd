package api

import (
	"context"
	"fmt"
	"io"
)

// calendarPageSize caps calendar reads at one full page; the server is
// not paginated incrementally on this route.
const calendarPageSize = 20000

// ListCalendar retrieves the fiscal calendar rows of one company
func (c *Client) ListCalendar(ctx context.Context, companyID int) ([]CalendarRowDTO, error) {
	path := fmt.Sprintf("/companies/%d/calendar?limit=%d&offset=0", companyID, calendarPageSize)

	var rows []CalendarRowDTO
	if err := c.getJSON(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ImportCalendar uploads a calendar workbook for one company. Server-side
// this activates the company and links its calendar sheet, so callers
// should reload company, sheets, and calendar afterward.
func (c *Client) ImportCalendar(ctx context.Context, companyID int, filename string, file io.Reader) error {
	path := fmt.Sprintf("/companies/%d/calendar/import", companyID)
	return c.uploadFile(ctx, path, filename, file, nil)
}
