package models

// ScheduleView is the derived, per-query view of one roster record: the
// decoded shift window plus the time-off status for the queried day.
type ScheduleView struct {
	TeamMember string   `json:"teamMember"`
	Analyst    string   `json:"analyst"`
	LoginTime  string   `json:"loginTime"`
	TimeOffs   []string `json:"timeOffs"`
	ShiftStart int      `json:"shiftStart"`
	ShiftEnd   int      `json:"shiftEnd"`
	IsTimeOff  bool     `json:"isTimeOff"`
}

// Statistics aggregates a schedule derivation. TotalMembers always equals
// ActiveShifts + TimeOffs.
type Statistics struct {
	TotalMembers int `json:"totalMembers"`
	ActiveShifts int `json:"activeShifts"`
	TimeOffs     int `json:"timeOffs"`
}

// DayOption is a selectable weekday: the lowercase value matched against
// time-off lists plus the display label.
type DayOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
