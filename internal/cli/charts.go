package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/journal"
	"github.com/dmitrijs2005/moodkeeper/internal/stats"
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Charts renders the three history views as text: overall distribution,
// per-weekday counts and the trailing-30-days comparison.
func (a *App) Charts(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	rec, err := a.store.Record(ctx, sess.Username)
	if err != nil {
		a.log.Error(ctx, "loading record failed", "err", err)
		return err
	}

	counts := stats.MoodDistribution(rec)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		fmt.Fprintln(a.out, "No emotions logged")
		return nil
	}

	fmt.Fprintln(a.out, "Mood distribution:")
	for _, m := range journal.Moods {
		bar := strings.Repeat("#", counts[m])
		fmt.Fprintf(a.out, "  %-7s %3d %s\n", m.Pretty(), counts[m], bar)
	}

	fmt.Fprintln(a.out, "By weekday:")
	weekly := stats.WeeklyCounts(rec)
	for day := 0; day < 7; day++ {
		n := 0
		for _, m := range journal.Moods {
			n += weekly[m][day]
		}
		fmt.Fprintf(a.out, "  %s %3d\n", weekdays[day], n)
	}

	thisPeriod, prevPeriod := stats.MonthlyComparison(rec, time.Now())
	fmt.Fprintln(a.out, "Last 30 days vs the 30 before:")
	for _, m := range journal.Moods {
		fmt.Fprintf(a.out, "  %-7s %3d (was %d)\n", m.Pretty(), thisPeriod[m], prevPeriod[m])
	}
	return nil
}

// Calendar lists the emotion log chronologically, one line per entry.
func (a *App) Calendar(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	rec, err := a.store.Record(ctx, sess.Username)
	if err != nil {
		a.log.Error(ctx, "loading record failed", "err", err)
		return err
	}

	entries := stats.CalendarEntries(rec)
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No emotion entries yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%s - %s (%s)\n", e.Date, e.Emotion, e.Mood.Pretty())
	}
	return nil
}
