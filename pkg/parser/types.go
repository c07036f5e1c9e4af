// Package parser converts raw WhatsApp chat exports into structured message records.
package parser

import "time"

// NotificationSender is the sentinel user assigned to system-generated
// lines (joins, leaves, subject changes) that have no human sender.
const NotificationSender = "group_notification"

// MessageRecord represents a single parsed chat message.
type MessageRecord struct {
	// Timestamp is the parsed message time (minute granularity).
	Timestamp time.Time

	// User is the participant who sent the message, or NotificationSender
	// for system-generated lines.
	User string

	// Text is the raw message body. May be empty or a media placeholder,
	// and may span multiple lines in the source export.
	Text string

	// Derived calendar fields, computed once at parse time.

	// OnlyDate is the timestamp truncated to midnight.
	OnlyDate time.Time

	// Year is the four-digit year.
	Year int

	// MonthNum is the month number (1-12).
	MonthNum int

	// MonthName is the English month name.
	MonthName string

	// Day is the day of the month.
	Day int

	// DayName is the English weekday name.
	DayName string

	// Hour is the hour of day (0-23).
	Hour int

	// Minute is the minute of the hour.
	Minute int

	// Period is the one-hour bucket label for this message, e.g. "10-11".
	// The label wraps at day boundaries: hour 23 is "23-0", hour 0 is "0-1".
	Period string
}

// newRecord builds a MessageRecord with all derived fields populated.
func newRecord(ts time.Time, user, text string) MessageRecord {
	return MessageRecord{
		Timestamp: ts,
		User:      user,
		Text:      text,
		OnlyDate:  time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()),
		Year:      ts.Year(),
		MonthNum:  int(ts.Month()),
		MonthName: ts.Month().String(),
		Day:       ts.Day(),
		DayName:   ts.Weekday().String(),
		Hour:      ts.Hour(),
		Minute:    ts.Minute(),
		Period:    PeriodLabel(ts.Hour()),
	}
}
