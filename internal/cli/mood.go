package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/journal"
)

// Mood runs the two-step survey: pick a quadrant, then one of its eight
// emotion labels. Only valid quadrant/label pairs are offered, which is why
// the store trusts them. The picked quadrant is held in the session while the
// second step is pending and cleared afterwards.
func (a *App) Mood(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	quadrants := make([]string, len(journal.Moods))
	for i, m := range journal.Moods {
		quadrants[i] = fmt.Sprintf("%s (%s)", m.Pretty(), m)
	}
	idx, err := GetChoice(a.reader, "How are you feeling?", quadrants, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	mood := journal.Moods[idx]
	sess.Mood = mood
	defer func() { sess.Mood = "" }()

	labels := journal.Emotions[mood]
	idx, err = GetChoice(a.reader, "Pick the closest emotion:", labels, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.store.RecordEmotion(ctx, sess.Username, mood, labels[idx]); err != nil {
		a.log.Error(ctx, "recording emotion failed", "err", err)
		return err
	}
	fmt.Fprintf(a.out, "Logged %q. Maybe write about it on a board?\n", labels[idx])
	return a.Boards(ctx)
}
