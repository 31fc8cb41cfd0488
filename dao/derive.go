package dao

import (
	"strings"

	"schedule-server/models"
	"schedule-server/timeutil"
)

// DeriveViews computes the schedule views for one roster snapshot. Both
// backends go through this so schedule and statistics derivations agree.
// A login time that fails to decode aborts the whole derivation.
func DeriveViews(records []models.RosterRecord, analyst, day string) ([]models.ScheduleView, error) {
	day = strings.ToLower(day)

	views := make([]models.ScheduleView, 0, len(records))
	for _, rec := range records {
		if analyst != "all" && analyst != "" && models.Slug(rec.Analyst) != analyst {
			continue
		}

		shiftStart, err := timeutil.ConvertTo24Hour(rec.LoginTime)
		if err != nil {
			return nil, err
		}

		timeOffs := SplitTimeOffs(rec.TimeOffs)
		isTimeOff := false
		for _, off := range timeOffs {
			if off == day {
				isTimeOff = true
				break
			}
		}

		views = append(views, models.ScheduleView{
			TeamMember: rec.TeamMember,
			Analyst:    rec.Analyst,
			LoginTime:  rec.LoginTime,
			TimeOffs:   timeOffs,
			ShiftStart: shiftStart,
			ShiftEnd:   timeutil.ShiftEnd(shiftStart),
			IsTimeOff:  isTimeOff,
		})
	}
	return views, nil
}

// SplitTimeOffs breaks the raw comma-separated day list into trimmed
// lowercase tokens.
func SplitTimeOffs(raw string) []string {
	parts := strings.Split(raw, ",")
	days := make([]string, len(parts))
	for i, p := range parts {
		days[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return days
}

// ListAnalystOptions collects the distinct analyst labels in first-seen
// order, paired with their slugged filter values.
func ListAnalystOptions(records []models.RosterRecord) []models.AnalystOption {
	seen := make(map[string]struct{})
	options := make([]models.AnalystOption, 0)
	for _, rec := range records {
		if _, ok := seen[rec.Analyst]; ok {
			continue
		}
		seen[rec.Analyst] = struct{}{}
		options = append(options, models.AnalystOption{
			Value: models.Slug(rec.Analyst),
			Label: rec.Analyst,
		})
	}
	return options
}

// StatisticsOf counts a derivation. TotalMembers == ActiveShifts + TimeOffs
// holds by construction.
func StatisticsOf(views []models.ScheduleView) models.Statistics {
	stats := models.Statistics{TotalMembers: len(views)}
	for _, sv := range views {
		if sv.IsTimeOff {
			stats.TimeOffs++
		} else {
			stats.ActiveShifts++
		}
	}
	return stats
}
