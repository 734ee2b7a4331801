// Package ics serializes resolved events as an iCalendar document.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"ecal/internal/dateutil"
	"ecal/internal/event"
)

const productID = "-//ecal//event calendar//EN"

// Export renders the events as all-day VEVENTs in one VCALENDAR. UIDs
// are derived from the event's date and position so repeated runs over
// the same input produce the same identifiers; now feeds only DTSTAMP.
func Export(events []event.Event, name string, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetCalscale("GREGORIAN")
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for i, e := range events {
		uid := fmt.Sprintf("%s-%d@ecal", dateutil.Key(e.Date), i)
		ev := cal.AddEvent(uid)
		ev.SetDtStampTime(now.UTC())
		ev.SetAllDayStartAt(e.Date)
		ev.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
		summary := e.Description
		if summary == "" {
			summary = "Event"
		}
		ev.SetSummary(summary)
		if e.Style.Category != "" {
			ev.SetDescription(e.Style.Category)
		}
	}

	return cal.Serialize()
}
