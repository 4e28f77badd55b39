package sheets_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Cell is a single formatted cell value. Numeric and boolean cells are kept in
// their JSON text form so UNFORMATTED_VALUE responses decode as well.
type Cell string

func (c *Cell) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(s)
		return nil
	}
	if string(data) == "null" {
		*c = ""
		return nil
	}
	*c = Cell(strings.TrimSpace(string(data)))
	return nil
}

func (c Cell) String() string {
	return string(c)
}

// ValueRange is the row-oriented payload returned by the values endpoint.
type ValueRange struct {
	Range          string   `json:"range"`
	MajorDimension string   `json:"majorDimension"`
	Values         [][]Cell `json:"values"`
}

type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *SheetsClient) GetResults(ctx context.Context) (*ValueRange, error) {
	return c.GetValues(ctx, ResultsRange)
}

func (c *SheetsClient) GetValues(ctx context.Context, valueRange string) (*ValueRange, error) {
	endpoint := fmt.Sprintf("%s/%s%s/%s",
		SpreadsheetsEndpoint, url.PathEscape(c.sheetID), ValuesEndpoint, url.PathEscape(valueRange))
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get values: %w", err)
	}

	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil {
		return nil, fmt.Errorf("API returned error %d (%s): %s", apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message)
	}

	var response ValueRange
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return &response, nil
}

// Rows returns the payload as plain strings, header row included.
func (v *ValueRange) Rows() [][]string {
	rows := make([][]string, len(v.Values))
	for i, row := range v.Values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = cell.String()
		}
	}
	return rows
}
