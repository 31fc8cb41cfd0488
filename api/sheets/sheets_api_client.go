package sheets

import (
	"fmt"
	"net/url"

	"schedule-server/api"
	"schedule-server/models"
)

// SheetsApiClient embeds the common HTTPClient. The client holds no
// credential state; callers pass credentials with each fetch.
type SheetsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewSheetsApiClient creates a new instance of SheetsApiClient
func NewSheetsApiClient(httpClient *api.HTTPClient) *SheetsApiClient {
	return &SheetsApiClient{
		HTTPClient: httpClient,
	}
}

// GetValues fetches the raw cell values of a range. The access token wins
// when both credentials are set; with neither set the fetch fails before
// touching the network.
func (c *SheetsApiClient) GetValues(spreadsheetID, valueRange string, creds Credentials) (*models.SheetValuesResponse, error) {
	if creds.Empty() {
		return nil, &models.AuthRequiredError{}
	}

	endpoint := fmt.Sprintf("/spreadsheets/%s/values/%s",
		url.PathEscape(spreadsheetID), url.PathEscape(valueRange))

	headers := map[string]string{}
	if creds.AccessToken != "" {
		headers["Authorization"] = "Bearer " + creds.AccessToken
	} else {
		endpoint += "?key=" + url.QueryEscape(creds.APIKey)
	}

	var response models.SheetValuesResponse
	if err := c.Request("GET", endpoint, headers, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
