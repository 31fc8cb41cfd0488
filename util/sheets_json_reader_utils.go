package util

import (
	"encoding/json"
	"fmt"
	"os"

	"schedule-server/models"
)

// ReadSheetValuesResponseFromJSON loads a SheetValuesResponse from JSON on disk.
func ReadSheetValuesResponseFromJSON(filePath string) (*models.SheetValuesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SheetValuesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SheetValuesResponse: %w", err)
	}
	return &resp, nil
}

// ReadRosterRecordsFromJSON loads a slice of RosterRecords from JSON on disk.
func ReadRosterRecordsFromJSON(filePath string) ([]models.RosterRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var records []models.RosterRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster records: %w", err)
	}
	return records, nil
}
