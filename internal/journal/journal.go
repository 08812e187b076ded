// Package journal defines the mood-journal domain model: mood quadrants and
// their fixed emotion label sets, the default boards every user starts with,
// and the per-user record persisted in the local store.
package journal

// Mood is one of the four fixed quadrants classifying an emotion entry.
type Mood string

const (
	MoodHighPositive Mood = "highPositive"
	MoodLowPositive  Mood = "lowPositive"
	MoodHighNegative Mood = "highNegative"
	MoodLowNegative  Mood = "lowNegative"
)

// Moods lists the quadrants in display order.
var Moods = []Mood{MoodHighPositive, MoodLowPositive, MoodHighNegative, MoodLowNegative}

// Emotions maps each quadrant to its fixed set of eight emotion labels.
// The view offers only these pairs; the store does not re-validate them.
var Emotions = map[Mood][]string{
	MoodHighPositive: {"Joyful", "Confident", "Inspired", "Grateful", "Loved", "Hopeful", "Excited", "Proud"},
	MoodLowPositive:  {"Calm", "Content", "Relieved", "Peaceful", "Comforted", "Safe", "Optimistic", "Balanced"},
	MoodHighNegative: {"Angry", "Anxious", "Overwhelmed", "Jealous", "Panicked", "Hopeless", "Frustrated", "Hurt"},
	MoodLowNegative:  {"Sad", "Lonely", "Tired", "Numb", "Unmotivated", "Insecure", "Drained", "Disconnected"},
}

// Valid reports whether m is one of the four known quadrants.
func (m Mood) Valid() bool {
	_, ok := Emotions[m]
	return ok
}

// Pretty returns a short human label for the quadrant, used in chart legends.
func (m Mood) Pretty() string {
	switch m {
	case MoodHighPositive:
		return "High +"
	case MoodLowPositive:
		return "Low +"
	case MoodHighNegative:
		return "High -"
	default:
		return "Low -"
	}
}

// DefaultAdminPass is the factory admin password seeded into every record
// and restored by recovery when the field is missing.
const DefaultAdminPass = "admin123"

// DefaultBoardKeys lists the four board keys guaranteed by normalization,
// in creation order.
var DefaultBoardKeys = []string{"proud", "happy", "sad", "pain"}

// DefaultBoards maps the default board keys to their canonical titles.
var DefaultBoards = map[string]string{
	"proud": "Proud of u",
	"happy": "A piece of happiness",
	"sad":   "Overwhelming sadness",
	"pain":  "Pain that I can't show",
}
