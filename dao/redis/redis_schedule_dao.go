package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"schedule-server/dao"
	"schedule-server/db"
	"schedule-server/models"

	goredis "github.com/go-redis/redis/v8"
)

const TEAM_ROSTER_KEY_V1 = "team_roster_v1"

// RedisScheduleDAO keeps the roster as a single JSON blob in Redis. The
// blob is written with one SET and read once per derivation, so each read
// observes one consistent roster, matching the in-memory snapshot
// semantics. Durability is best-effort cache semantics only.
type RedisScheduleDAO struct {
	client db.RedisClient
}

// NewRedisScheduleDAO initializes a RedisScheduleDAO with the Redis client.
func NewRedisScheduleDAO(client db.RedisClient) *RedisScheduleDAO {
	return &RedisScheduleDAO{client: client}
}

// Replace serializes the records and swaps the roster blob in one SET.
func (d *RedisScheduleDAO) Replace(records []models.RosterRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}
	if err := d.client.Set(TEAM_ROSTER_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set roster in redis: %w", err)
	}
	return nil
}

// loadRoster reads the roster blob. A missing key is an empty roster.
func (d *RedisScheduleDAO) loadRoster() ([]models.RosterRecord, error) {
	str, err := d.client.Get(TEAM_ROSTER_KEY_V1)
	if errors.Is(err, goredis.Nil) {
		return []models.RosterRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster from redis: %w", err)
	}

	var records []models.RosterRecord
	if err := json.Unmarshal([]byte(str), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster JSON: %w", err)
	}
	return records, nil
}

// GetTeamMembers returns the stored roster in insertion order.
func (d *RedisScheduleDAO) GetTeamMembers() ([]models.RosterRecord, error) {
	return d.loadRoster()
}

// ListAnalysts returns the distinct analyst filter options.
func (d *RedisScheduleDAO) ListAnalysts() ([]models.AnalystOption, error) {
	records, err := d.loadRoster()
	if err != nil {
		return nil, err
	}
	return dao.ListAnalystOptions(records), nil
}

// DeriveSchedule computes the filtered per-day schedule views.
func (d *RedisScheduleDAO) DeriveSchedule(analyst, day string) ([]models.ScheduleView, error) {
	records, err := d.loadRoster()
	if err != nil {
		return nil, err
	}
	return dao.DeriveViews(records, analyst, day)
}

// DeriveStatistics aggregates over a single roster read.
func (d *RedisScheduleDAO) DeriveStatistics(analyst, day string) (models.Statistics, error) {
	records, err := d.loadRoster()
	if err != nil {
		return models.Statistics{}, err
	}
	views, err := dao.DeriveViews(records, analyst, day)
	if err != nil {
		return models.Statistics{}, err
	}
	return dao.StatisticsOf(views), nil
}
