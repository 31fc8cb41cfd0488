package sheets

import (
	"fmt"

	"schedule-server/models"
	"schedule-server/util"
)

const SHEET_VALUES_RESPONSE_PATH = "./resources/sheet_values_response.json"

// SheetsApiClientMock embeds mocked logic for the sheets api client
type SheetsApiClientMock struct {
}

// NewSheetsApiClientMock creates a new instance of SheetsApiClientMock
func NewSheetsApiClientMock() *SheetsApiClientMock {
	return &SheetsApiClientMock{}
}

// GetValues retrieves the canned sheet values fixture regardless of the
// requested spreadsheet or range.
func (c *SheetsApiClientMock) GetValues(spreadsheetID, valueRange string, creds Credentials) (*models.SheetValuesResponse, error) {
	response, err := util.ReadSheetValuesResponseFromJSON(SHEET_VALUES_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read sheet values response from json")
		return nil, err
	}
	return response, nil
}
