package memory

import (
	"sync/atomic"

	"schedule-server/dao"
	"schedule-server/models"
)

// MemoryScheduleDAO holds the roster behind an atomically swapped
// immutable snapshot. Replace publishes a fresh copy; readers capture the
// current snapshot once per call and never mutate it, so no locks are
// needed and in-flight derivations always see a single consistent roster.
type MemoryScheduleDAO struct {
	roster atomic.Pointer[[]models.RosterRecord]
}

// NewMemoryScheduleDAO initializes an empty in-memory roster store.
func NewMemoryScheduleDAO() *MemoryScheduleDAO {
	m := &MemoryScheduleDAO{}
	empty := make([]models.RosterRecord, 0)
	m.roster.Store(&empty)
	return m
}

// Replace swaps the entire roster in one atomic store.
func (m *MemoryScheduleDAO) Replace(records []models.RosterRecord) error {
	snapshot := make([]models.RosterRecord, len(records))
	copy(snapshot, records)
	m.roster.Store(&snapshot)
	return nil
}

func (m *MemoryScheduleDAO) snapshot() []models.RosterRecord {
	return *m.roster.Load()
}

// GetTeamMembers returns the current roster in insertion order.
func (m *MemoryScheduleDAO) GetTeamMembers() ([]models.RosterRecord, error) {
	return m.snapshot(), nil
}

// ListAnalysts returns the distinct analyst filter options.
func (m *MemoryScheduleDAO) ListAnalysts() ([]models.AnalystOption, error) {
	return dao.ListAnalystOptions(m.snapshot()), nil
}

// DeriveSchedule computes the filtered per-day schedule views.
func (m *MemoryScheduleDAO) DeriveSchedule(analyst, day string) ([]models.ScheduleView, error) {
	return dao.DeriveViews(m.snapshot(), analyst, day)
}

// DeriveStatistics aggregates the schedule derivation. The snapshot is
// captured once, so the counts always agree with a DeriveSchedule over
// the same roster even while a Replace is in flight.
func (m *MemoryScheduleDAO) DeriveStatistics(analyst, day string) (models.Statistics, error) {
	views, err := dao.DeriveViews(m.snapshot(), analyst, day)
	if err != nil {
		return models.Statistics{}, err
	}
	return dao.StatisticsOf(views), nil
}
