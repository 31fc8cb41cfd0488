package view

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"schedule-server/models"
	"schedule-server/timeutil"
)

// memberColors is the fixed palette cycled through by roster position.
var memberColors = []string{
	"from-blue-500 to-blue-600",
	"from-green-500 to-green-600",
	"from-purple-500 to-purple-600",
	"from-pink-500 to-pink-600",
	"from-indigo-500 to-indigo-600",
	"from-red-500 to-red-600",
	"from-yellow-500 to-yellow-600",
	"from-teal-500 to-teal-600",
}

// ScheduleBlock carries the rendering hints for one shift on the calendar
// grid: its horizontal placement as percentages of the 12-column track,
// a deterministic member color and the member's initials.
type ScheduleBlock struct {
	TeamMember   string  `json:"teamMember"`
	Analyst      string  `json:"analyst"`
	Initials     string  `json:"initials"`
	Color        string  `json:"color"`
	TimeLabel    string  `json:"timeLabel"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
	IsTimeOff    bool    `json:"isTimeOff"`
	Visible      bool    `json:"visible"`
}

// Project maps a derived schedule view into grid coordinates. The index is
// the view's position in the derivation, used for stable color assignment.
// Time-off days and shifts outside the visible window come back hidden.
func Project(sv models.ScheduleView, index int) ScheduleBlock {
	startCol, spanCols := timeutil.CalculateShiftPosition(sv.ShiftStart)

	return ScheduleBlock{
		TeamMember:   sv.TeamMember,
		Analyst:      sv.Analyst,
		Initials:     MemberInitials(sv.TeamMember),
		Color:        MemberColor(index),
		TimeLabel:    timeutil.FormatShiftTime(sv.ShiftStart),
		LeftPercent:  float64((startCol-timeutil.ReservedColumns)*100) / timeutil.GridColumns,
		WidthPercent: float64(spanCols*100) / timeutil.GridColumns,
		IsTimeOff:    sv.IsTimeOff,
		Visible:      !sv.IsTimeOff && spanCols > 0,
	}
}

// ProjectAll projects a whole derivation in order.
func ProjectAll(views []models.ScheduleView) []ScheduleBlock {
	blocks := make([]ScheduleBlock, 0, len(views))
	for i, sv := range views {
		blocks = append(blocks, Project(sv, i))
	}
	return blocks
}

// MemberColor returns the palette entry for a roster position.
func MemberColor(index int) string {
	return memberColors[index%len(memberColors)]
}

// MemberInitials builds a 2-letter initials string from the first letter
// of each whitespace-separated name token.
func MemberInitials(name string) string {
	initials := make([]rune, 0, 2)
	for _, token := range strings.Fields(name) {
		if len(initials) == 2 {
			break
		}
		first, _ := utf8.DecodeRuneInString(token)
		initials = append(initials, unicode.ToUpper(first))
	}
	return string(initials)
}
