package services

import (
	"schedule-server/api/sheets"
	"schedule-server/config"
	"schedule-server/dao"
	"schedule-server/models"
	"schedule-server/timeutil"
	"schedule-server/util"
)

// SyncService turns raw spreadsheet rows into a validated roster and
// swaps it into the schedule store. Both ingestion paths (keyed sheet
// fetch and already-normalized OAuth payloads) funnel through the same
// validation, so a failed sync never touches the prior roster.
type SyncService struct {
	scheduleDao dao.ScheduleDAO
	sheetsApi   sheets.GoogleSheetsAPI
}

// NewSyncService constructs a SyncService with its dependencies.
func NewSyncService(scheduleDao dao.ScheduleDAO, sheetsApi sheets.GoogleSheetsAPI) *SyncService {
	return &SyncService{
		scheduleDao: scheduleDao,
		sheetsApi:   sheetsApi,
	}
}

// NormalizeRows maps a rectangular table of raw cell strings into roster
// records. Row 0 is dropped when headerPresent. Short rows are padded
// with empty cells, never dropped.
func (s *SyncService) NormalizeRows(rows [][]string, headerPresent bool) ([]models.RosterRecord, error) {
	minRows := 1
	if headerPresent {
		minRows = 2
	}
	if len(rows) < minRows {
		return nil, &models.EmptyDataError{Rows: len(rows)}
	}

	data := rows
	if headerPresent {
		data = rows[1:]
	}

	records := make([]models.RosterRecord, 0, len(data))
	for _, row := range data {
		records = append(records, models.RosterRecord{
			TeamMember: cell(row, 0),
			Analyst:    cell(row, 1),
			LoginTime:  cell(row, 2),
			TimeOffs:   cell(row, 3),
		})
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ValidateRecords applies schema validation to every record: team member
// and analyst must be non-empty and the login time must decode. Rows are
// validated eagerly at sync time rather than lazily at query time, so a
// malformed sheet is rejected before it can replace a good roster. The
// row index in the error is the zero-based data row.
func (s *SyncService) ValidateRecords(records []models.RosterRecord) error {
	for i, rec := range records {
		if rec.TeamMember == "" {
			return &models.ValidationError{Row: i, Field: "teamMember"}
		}
		if rec.Analyst == "" {
			return &models.ValidationError{Row: i, Field: "analyst"}
		}
		if _, err := timeutil.ConvertTo24Hour(rec.LoginTime); err != nil {
			return &models.ValidationError{Row: i, Field: "loginTime", Err: err}
		}
	}
	return nil
}

// SyncFromSheets runs the keyed ingestion path: fetch the schedule range
// with the given API key, normalize, validate and replace the roster.
// Returns the number of synced records.
func (s *SyncService) SyncFromSheets(spreadsheetID, apiKey string) (int, error) {
	logger := util.GetLogger().Sugar()
	logger.Infof("[SyncService] Syncing roster from spreadsheet %s", spreadsheetID)

	creds := sheets.Credentials{APIKey: apiKey}
	response, err := s.sheetsApi.GetValues(spreadsheetID, config.SCHEDULE_SHEET_RANGE, creds)
	if err != nil {
		logger.Warnf("[SyncService] Sheet fetch failed: %v", err)
		return 0, err
	}

	records, err := s.NormalizeRows(response.Values, true)
	if err != nil {
		return 0, err
	}
	return s.SyncRecords(records)
}

// SyncRecords runs the already-normalized ingestion path (the OAuth
// client posts records it read with its own delegated credentials).
func (s *SyncService) SyncRecords(records []models.RosterRecord) (int, error) {
	if err := s.ValidateRecords(records); err != nil {
		return 0, err
	}
	if err := s.scheduleDao.Replace(records); err != nil {
		return 0, err
	}
	util.GetLogger().Sugar().Infof("[SyncService] Roster replaced with %d records", len(records))
	return len(records), nil
}
