package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"schedule-server/dao"
	"schedule-server/models"
	services "schedule-server/service"
	"schedule-server/timeutil"
	"schedule-server/util"
	"schedule-server/view"
)

const (
	ANALYST_QUERY_ARG = "analyst"
	DAY_QUERY_ARG     = "day"
)

// SyncSheetsRequest is the keyed sync payload.
type SyncSheetsRequest struct {
	SpreadsheetID string `json:"spreadsheetId"`
	APIKey        string `json:"apiKey"`
}

// SyncDataRequest is the already-normalized sync payload used by the
// OAuth client.
type SyncDataRequest struct {
	TeamMembers []models.RosterRecord `json:"teamMembers"`
}

// SyncResponse reports a successful roster replacement.
type SyncResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type ScheduleHandler struct {
	scheduleDao dao.ScheduleDAO
	syncService *services.SyncService
}

func NewScheduleHandler(scheduleDao dao.ScheduleDAO, syncService *services.SyncService) *ScheduleHandler {
	return &ScheduleHandler{scheduleDao: scheduleDao, syncService: syncService}
}

// SyncSheets handles POST /api/sync-sheets: fetch the configured range
// with the caller's API key and replace the roster.
func (h *ScheduleHandler) SyncSheets(w http.ResponseWriter, r *http.Request) {
	var req SyncSheetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SpreadsheetID == "" || req.APIKey == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: spreadsheetId and apiKey")
		return
	}

	count, err := h.syncService.SyncFromSheets(req.SpreadsheetID, req.APIKey)
	if err != nil {
		util.GetLogger().Sugar().Warnf("Error syncing Google Sheets: %v", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SyncResponse{Message: "Data synced successfully", Count: count})
}

// SyncData handles POST /api/sync-data: replace the roster with records
// the signed-in client already normalized.
func (h *ScheduleHandler) SyncData(w http.ResponseWriter, r *http.Request) {
	var req SyncDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TeamMembers == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: teamMembers")
		return
	}

	count, err := h.syncService.SyncRecords(req.TeamMembers)
	if err != nil {
		util.GetLogger().Sugar().Warnf("Error syncing data: %v", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SyncResponse{Message: "Data synced successfully", Count: count})
}

// GetAnalysts handles GET /api/analysts
func (h *ScheduleHandler) GetAnalysts(w http.ResponseWriter, r *http.Request) {
	options, err := h.scheduleDao.ListAnalysts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch analysts")
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// GetTeamMembers handles GET /api/team-members
func (h *ScheduleHandler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.scheduleDao.GetTeamMembers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch team members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// GetDays handles GET /api/days
func (h *ScheduleHandler) GetDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, timeutil.DaysOfWeek)
}

// GetSchedule handles GET /api/schedule?analyst=&day=
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	analyst := r.URL.Query().Get(ANALYST_QUERY_ARG)
	day := r.URL.Query().Get(DAY_QUERY_ARG)

	views, err := h.scheduleDao.DeriveSchedule(analyst, day)
	if err != nil {
		util.GetLogger().Sugar().Warnf("Error fetching schedule data: %v", err)
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// GetScheduleGrid handles GET /api/schedule/grid?analyst=&day=, the
// projected calendar blocks.
func (h *ScheduleHandler) GetScheduleGrid(w http.ResponseWriter, r *http.Request) {
	analyst := r.URL.Query().Get(ANALYST_QUERY_ARG)
	day := r.URL.Query().Get(DAY_QUERY_ARG)

	views, err := h.scheduleDao.DeriveSchedule(analyst, day)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.ProjectAll(views))
}

// GetStatistics handles GET /api/statistics?analyst=&day=
func (h *ScheduleHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	analyst := r.URL.Query().Get(ANALYST_QUERY_ARG)
	day := r.URL.Query().Get(DAY_QUERY_ARG)

	stats, err := h.scheduleDao.DeriveStatistics(analyst, day)
	if err != nil {
		util.GetLogger().Sugar().Warnf("Error fetching statistics: %v", err)
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetStatisticsChart handles GET /api/statistics/chart?analyst=: an HTML
// bar chart of per-day counts for the filtered roster.
func (h *ScheduleHandler) GetStatisticsChart(w http.ResponseWriter, r *http.Request) {
	analyst := r.URL.Query().Get(ANALYST_QUERY_ARG)

	stats := make([]models.Statistics, 0, len(timeutil.DaysOfWeek))
	for _, day := range timeutil.DaysOfWeek {
		dayStats, err := h.scheduleDao.DeriveStatistics(analyst, day.Value)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}
		stats = append(stats, dayStats)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotWeeklyStatistics(w, timeutil.DaysOfWeek, stats); err != nil {
		util.GetLogger().Sugar().Warnf("Error rendering statistics chart: %v", err)
	}
}

// Ping handles GET /ping
func (h *ScheduleHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// statusForError maps the error taxonomy onto HTTP statuses: bad input
// and upstream failures are the caller's problem, validation failures
// surface as 500 like the reference API.
func statusForError(err error) int {
	var (
		formatErr   *models.FormatError
		emptyErr    *models.EmptyDataError
		fetchErr    *models.UpstreamFetchError
		authErr     *models.AuthRequiredError
		validateErr *models.ValidationError
	)
	switch {
	case errors.As(err, &validateErr):
		return http.StatusInternalServerError
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &formatErr), errors.As(err, &emptyErr), errors.As(err, &fetchErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		util.GetLogger().Sugar().Warnf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
