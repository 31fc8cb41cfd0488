package server

import (
	"schedule-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	scheduleHandler *handlers.ScheduleHandler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	scheduleHandler *handlers.ScheduleHandler,
	router *mux.Router) *Router {
	return &Router{
		scheduleHandler: scheduleHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects {spreadsheetId, apiKey} in the body
	r.router.HandleFunc("/api/sync-sheets", r.scheduleHandler.SyncSheets).Methods("POST")
	// expects {teamMembers: [...]} in the body (OAuth path)
	r.router.HandleFunc("/api/sync-data", r.scheduleHandler.SyncData).Methods("POST")

	r.router.HandleFunc("/api/analysts", r.scheduleHandler.GetAnalysts).Methods("GET")
	r.router.HandleFunc("/api/team-members", r.scheduleHandler.GetTeamMembers).Methods("GET")
	r.router.HandleFunc("/api/days", r.scheduleHandler.GetDays).Methods("GET")

	// expects ?analyst={slug|all}&day={weekday}
	r.router.HandleFunc("/api/schedule", r.scheduleHandler.GetSchedule).Methods("GET")
	r.router.HandleFunc("/api/schedule/grid", r.scheduleHandler.GetScheduleGrid).Methods("GET")
	r.router.HandleFunc("/api/statistics", r.scheduleHandler.GetStatistics).Methods("GET")
	r.router.HandleFunc("/api/statistics/chart", r.scheduleHandler.GetStatisticsChart).Methods("GET")

	r.router.HandleFunc("/ping", r.scheduleHandler.Ping).Methods("GET")
}
