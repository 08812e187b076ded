// Package stats computes the read-only aggregates behind the history views:
// overall mood distribution, per-weekday counts and the trailing-30-days
// comparison. It never mutates a record; views fetch a normalized record from
// the store and hand it here.
package stats

import (
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/journal"
)

// MoodDistribution counts the emotion entries per quadrant (the pie chart).
// Entries with an unknown quadrant tag are ignored.
func MoodDistribution(r *journal.Record) map[journal.Mood]int {
	counts := make(map[journal.Mood]int, len(journal.Moods))
	for _, m := range journal.Moods {
		counts[m] = 0
	}
	for _, e := range r.Emotions {
		if _, ok := counts[e.Mood]; ok {
			counts[e.Mood]++
		}
	}
	return counts
}

// WeeklyCounts buckets entries per weekday and quadrant (the weekly bar
// chart). Index 0 is Sunday. Entries with unparseable dates are skipped.
func WeeklyCounts(r *journal.Record) map[journal.Mood][7]int {
	weekly := make(map[journal.Mood][7]int, len(journal.Moods))
	for _, m := range journal.Moods {
		weekly[m] = [7]int{}
	}
	for _, e := range r.Emotions {
		t, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			continue
		}
		if counts, ok := weekly[e.Mood]; ok {
			counts[int(t.Local().Weekday())]++
			weekly[e.Mood] = counts
		}
	}
	return weekly
}

// MonthlyComparison counts entries per quadrant in the trailing 30 days and
// in the 30 days before that (the monthly comparison chart). The current
// window ends at local midnight of tomorrow, so today's entries are included.
func MonthlyComparison(r *journal.Record, now time.Time) (thisPeriod, prevPeriod map[journal.Mood]int) {
	endThis := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	startThis := endThis.AddDate(0, 0, -30)
	startPrev := startThis.AddDate(0, 0, -30)

	thisPeriod = make(map[journal.Mood]int, len(journal.Moods))
	prevPeriod = make(map[journal.Mood]int, len(journal.Moods))
	for _, m := range journal.Moods {
		thisPeriod[m] = 0
		prevPeriod[m] = 0
	}

	for _, e := range r.Emotions {
		t, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			continue
		}
		t = t.In(now.Location())
		switch {
		case !t.Before(startThis) && t.Before(endThis):
			thisPeriod[e.Mood]++
		case !t.Before(startPrev) && t.Before(startThis):
			prevPeriod[e.Mood]++
		}
	}
	return thisPeriod, prevPeriod
}

// CalendarEntry is one line of the calendar view.
type CalendarEntry struct {
	Date    string // e.g. "Mon Jan 2 2006"
	Emotion string
	Mood    journal.Mood
}

// CalendarEntries renders the emotion log in insertion (chronological) order.
// Entries with unparseable dates keep the raw stored string.
func CalendarEntries(r *journal.Record) []CalendarEntry {
	out := make([]CalendarEntry, 0, len(r.Emotions))
	for _, e := range r.Emotions {
		date := e.Date
		if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
			date = t.Local().Format("Mon Jan 2 2006")
		}
		out = append(out, CalendarEntry{Date: date, Emotion: e.Emotion, Mood: e.Mood})
	}
	return out
}
