package models

import "fmt"

// FormatError reports an unparseable 12-hour login time string.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid 12-hour time format: %q", e.Input)
}

// EmptyDataError reports a sync payload with no data rows.
type EmptyDataError struct {
	Rows int
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("sheet must have at least a header row and one data row, got %d rows", e.Rows)
}

// ValidationError reports a roster record that failed schema validation,
// identified by its data row index and offending field.
type ValidationError struct {
	Row   int
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid data format: row %d field %q: %v", e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("invalid data format: row %d field %q", e.Row, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UpstreamFetchError reports a non-success response from the sheets API.
type UpstreamFetchError struct {
	Status string
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("Google Sheets API error: %s", e.Status)
}

// AuthRequiredError reports a fetch attempted without any credential set.
type AuthRequiredError struct{}

func (e *AuthRequiredError) Error() string {
	return "authentication required: no API key or access token configured"
}
