package sheets_client

import (
	"github.com/mcdev12/devprix/go/clients"
)

// SheetsClient reads values from a single spreadsheet using a static API key.
type SheetsClient struct {
	*clients.BaseClient
	sheetID string
}

func NewSheetsClient(apiKey, sheetID string) *SheetsClient {
	return NewSheetsClientWithBaseURL(BaseURL, apiKey, sheetID)
}

func NewSheetsClientWithBaseURL(baseURL, apiKey, sheetID string) *SheetsClient {
	client := &SheetsClient{
		BaseClient: clients.NewBaseClient(baseURL),
		sheetID:    sheetID,
	}

	client.SetHeader(APIKeyHeader, apiKey)

	return client
}

func (c *SheetsClient) SheetID() string {
	return c.sheetID
}
