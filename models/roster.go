package models

import (
	"fmt"
	"regexp"
	"strings"
)

// RosterRecord is one team member's static schedule definition as synced
// from the spreadsheet: display name, supervising analyst, raw 12-hour
// login time and a raw comma-separated list of time-off day names.
type RosterRecord struct {
	TeamMember string `json:"teamMember"`
	Analyst    string `json:"analyst"`
	LoginTime  string `json:"loginTime"`
	TimeOffs   string `json:"timeOffs"`
}

func (r *RosterRecord) ToString() string {
	return fmt.Sprintf("RosterRecord(teamMember=%s, analyst=%s, loginTime=%s, timeOffs=%s)",
		r.TeamMember, r.Analyst, r.LoginTime, r.TimeOffs)
}

// AnalystOption is a filter option derived from the roster: the slugged
// analyst name plus the original label.
type AnalystOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug normalizes an analyst name into its filter key: lowercase with
// whitespace runs replaced by '-'. Total for any input, including "".
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}
