package models

// SheetValuesResponse mirrors the Google Sheets API values.get payload for
// a fetched range.
type SheetValuesResponse struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}
