package stats

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(mood journal.Mood, label string, at time.Time) journal.EmotionEntry {
	return journal.EmotionEntry{
		Emotion: label,
		Mood:    mood,
		Date:    at.UTC().Format(time.RFC3339),
	}
}

func TestMoodDistribution(t *testing.T) {
	now := time.Now()
	r := journal.NewRecord("p")
	r.Emotions = []journal.EmotionEntry{
		entry(journal.MoodHighPositive, "Joyful", now),
		entry(journal.MoodHighPositive, "Proud", now),
		entry(journal.MoodLowNegative, "Tired", now),
		{Emotion: "???", Mood: "bogus", Date: "not-a-date"},
	}

	counts := MoodDistribution(r)

	assert.Equal(t, 2, counts[journal.MoodHighPositive])
	assert.Equal(t, 0, counts[journal.MoodLowPositive])
	assert.Equal(t, 0, counts[journal.MoodHighNegative])
	assert.Equal(t, 1, counts[journal.MoodLowNegative])
	assert.Len(t, counts, 4, "unknown quadrants are not counted")
}

func TestWeeklyCounts(t *testing.T) {
	// a known Sunday, noon local time
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	require.Equal(t, time.Sunday, sunday.Weekday())

	r := journal.NewRecord("p")
	r.Emotions = []journal.EmotionEntry{
		entry(journal.MoodHighNegative, "Angry", sunday),
		entry(journal.MoodHighNegative, "Anxious", sunday.AddDate(0, 0, 1)), // Monday
		{Emotion: "X", Mood: journal.MoodHighNegative, Date: "garbage"},
	}

	weekly := WeeklyCounts(r)

	assert.Equal(t, 1, weekly[journal.MoodHighNegative][0])
	assert.Equal(t, 1, weekly[journal.MoodHighNegative][1])
	assert.Equal(t, [7]int{}, weekly[journal.MoodLowPositive])
}

func TestMonthlyComparison_WindowBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)

	r := journal.NewRecord("p")
	r.Emotions = []journal.EmotionEntry{
		entry(journal.MoodLowPositive, "Calm", now),                      // today: this window
		entry(journal.MoodLowPositive, "Content", now.AddDate(0, 0, -29)), // this window
		entry(journal.MoodLowPositive, "Safe", now.AddDate(0, 0, -35)),    // previous window
		entry(journal.MoodLowPositive, "Peaceful", now.AddDate(0, 0, -70)), // outside both
	}

	thisPeriod, prevPeriod := MonthlyComparison(r, now)

	assert.Equal(t, 2, thisPeriod[journal.MoodLowPositive])
	assert.Equal(t, 1, prevPeriod[journal.MoodLowPositive])
	assert.Equal(t, 0, thisPeriod[journal.MoodHighPositive])
}

func TestCalendarEntries_PreservesOrder(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	r := journal.NewRecord("p")
	r.Emotions = []journal.EmotionEntry{
		entry(journal.MoodHighPositive, "Joyful", now.AddDate(0, 0, -1)),
		entry(journal.MoodLowNegative, "Sad", now),
		{Emotion: "Numb", Mood: journal.MoodLowNegative, Date: "garbage"},
	}

	entries := CalendarEntries(r)

	require.Len(t, entries, 3)
	assert.Equal(t, "Joyful", entries[0].Emotion)
	assert.Equal(t, "Sad", entries[1].Emotion)
	assert.Equal(t, "garbage", entries[2].Date, "unparseable date kept raw")
}
