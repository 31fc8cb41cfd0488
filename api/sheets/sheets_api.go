package sheets

import "schedule-server/models"

// Credentials carries the per-request authorization for a sheet fetch:
// either an API key (the keyed sync path) or a delegated OAuth access
// token (the signed-in path). Both produce the same raw row shape.
type Credentials struct {
	APIKey      string
	AccessToken string
}

// Empty reports whether no credential is present.
func (c Credentials) Empty() bool {
	return c.APIKey == "" && c.AccessToken == ""
}

// GoogleSheetsAPI defines the interface for fetching spreadsheet values.
// Credentials travel with each call so a single shared client can serve
// concurrent fetches with different keys.
type GoogleSheetsAPI interface {
	GetValues(spreadsheetID, valueRange string, creds Credentials) (*models.SheetValuesResponse, error)
}
