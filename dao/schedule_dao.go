package dao

import "schedule-server/models"

// ScheduleDAO is the capability interface over the current roster. The
// roster is only ever replaced wholesale; every read derives its view on
// demand from a single consistent snapshot. The in-memory implementation
// is the default; a persistent backend can be swapped in without touching
// call sites.
type ScheduleDAO interface {
	// Replace atomically swaps the entire roster. It never partially
	// applies: on error the prior roster is left intact.
	Replace(records []models.RosterRecord) error

	// GetTeamMembers returns the raw roster in insertion order.
	GetTeamMembers() ([]models.RosterRecord, error)

	// ListAnalysts returns the distinct analyst options in first-seen
	// order. Distinctness is by raw label, so two labels may share a
	// slugged value.
	ListAnalysts() ([]models.AnalystOption, error)

	// DeriveSchedule filters the roster by analyst slug ("all" or ""
	// match everything) and computes each member's shift window and
	// time-off status for the given day.
	DeriveSchedule(analyst, day string) ([]models.ScheduleView, error)

	// DeriveStatistics aggregates DeriveSchedule over the same roster
	// snapshot.
	DeriveStatistics(analyst, day string) (models.Statistics, error)
}
