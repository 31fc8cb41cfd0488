package timeutil

import (
	"fmt"
	"strconv"
	"strings"

	"schedule-server/models"
)

// Shift and grid business rules: every shift is 9 hours long and the
// calendar grid shows 12 one-hour columns starting at 10 AM, with 2
// leading columns reserved for the member label.
const (
	ShiftLengthHours = 9
	GridStartHour    = 10
	GridColumns      = 12
	ReservedColumns  = 2
	MaxShiftSpanCols = 9
)

// TimeSlots holds the 12 column header labels of the calendar grid.
var TimeSlots = []string{
	"10 AM", "11 AM", "12 PM", "1 PM", "2 PM", "3 PM",
	"4 PM", "5 PM", "6 PM", "7 PM", "8 PM", "9 PM",
}

// DaysOfWeek holds the selectable weekday options, Sunday first.
var DaysOfWeek = []models.DayOption{
	{Value: "sunday", Label: "Sunday"},
	{Value: "monday", Label: "Monday"},
	{Value: "tuesday", Label: "Tuesday"},
	{Value: "wednesday", Label: "Wednesday"},
	{Value: "thursday", Label: "Thursday"},
	{Value: "friday", Label: "Friday"},
	{Value: "saturday", Label: "Saturday"},
}

// ConvertTo24Hour parses a 12-hour clock string like "10:00 AM" into an
// hour-of-day in 0..23. The hour 12 maps to 0 before the modifier is
// applied, so "12:00 AM" -> 0 and "12:00 PM" -> 12.
func ConvertTo24Hour(time12h string) (int, error) {
	timePart, modifier, found := strings.Cut(time12h, " ")
	if !found {
		return 0, &models.FormatError{Input: time12h}
	}

	hourDigits, _, _ := strings.Cut(timePart, ":")
	hour, err := strconv.Atoi(hourDigits)
	if err != nil {
		return 0, &models.FormatError{Input: time12h}
	}
	if hour < 1 || hour > 12 {
		return 0, &models.FormatError{Input: time12h}
	}

	if hour == 12 {
		hour = 0
	}
	if modifier == "PM" {
		hour += 12
	}
	return hour, nil
}

// ConvertTo12Hour formats an hour-of-day in 0..23 back into its short
// 12-hour form, e.g. 0 -> "12 AM", 13 -> "1 PM".
func ConvertTo12Hour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// CalculateShiftPosition maps a shift start hour onto grid columns.
// Shifts starting before the grid window are clipped on the left and
// shifts running past it are clipped on the right, never wrapped.
// A spanCols <= 0 means the shift is entirely outside the visible window.
func CalculateShiftPosition(startHour int) (startCol, spanCols int) {
	offset := startHour - GridStartHour
	startCol = max(0, offset+ReservedColumns)
	spanCols = min(MaxShiftSpanCols, GridColumns-max(0, offset))
	return startCol, spanCols
}

// ShiftEnd returns the hour a shift ends, wrapping past midnight.
func ShiftEnd(startHour int) int {
	return (startHour + ShiftLengthHours) % 24
}

// FormatShiftTime renders the "10 AM - 7 PM" style range label for a
// shift starting at the given hour.
func FormatShiftTime(startHour int) string {
	return fmt.Sprintf("%s - %s", ConvertTo12Hour(startHour), ConvertTo12Hour(ShiftEnd(startHour)))
}
