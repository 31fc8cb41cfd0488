package services

import (
	"time"

	"schedule-server/util"
)

// ScheduleRefresherService periodically re-syncs the roster from the
// configured spreadsheet. It only runs when sheet credentials are
// configured; a failed refresh leaves the prior roster intact and the
// next tick tries again.
type ScheduleRefresherService struct {
	syncService   *SyncService
	spreadsheetID string
	apiKey        string
}

// NewScheduleRefresherService constructs a new Refresher with dependencies.
func NewScheduleRefresherService(syncService *SyncService, spreadsheetID, apiKey string) *ScheduleRefresherService {
	return &ScheduleRefresherService{
		syncService:   syncService,
		spreadsheetID: spreadsheetID,
		apiKey:        apiKey,
	}
}

// Enabled reports whether the refresher has credentials to work with.
func (sr *ScheduleRefresherService) Enabled() bool {
	return sr.spreadsheetID != "" && sr.apiKey != ""
}

// StartPeriodicJob launches the background loop at the given interval.
func (sr *ScheduleRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *ScheduleRefresherService) startPeriodicJob(interval time.Duration) {
	logger := util.GetLogger().Sugar()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		logger.Info("[ScheduleRefresherService] Running periodic roster refresh job.")
		count, err := sr.syncService.SyncFromSheets(sr.spreadsheetID, sr.apiKey)
		if err != nil {
			logger.Warnf("[ScheduleRefresherService] Refresh returned error: %v", err)
		} else {
			logger.Infof("[ScheduleRefresherService] Refresh completed successfully, %d records.", count)
		}
	}
}
