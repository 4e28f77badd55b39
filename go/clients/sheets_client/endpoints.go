package sheets_client

const (
	// Base URL
	BaseURL = "https://sheets.googleapis.com/v4"

	// API Endpoints
	SpreadsheetsEndpoint = "/spreadsheets"
	ValuesEndpoint       = "/values"

	// Ranges
	ResultsRange = "Results"

	// Headers
	APIKeyHeader = "X-goog-api-key"
)
