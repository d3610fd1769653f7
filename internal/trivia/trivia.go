// Package trivia defines the core domain types and game rules.
// It has zero external dependencies — everything here is pure Go.
package trivia

import (
	"math/rand/v2"
	"strings"
)

// OptionCount is the number of answer options per question: the correct
// city plus three distractors.
const OptionCount = 4

type Question struct {
	CityName    string
	Country     string
	Lat         float64
	Lng         float64
	FunFact     string
	Options     []string
	ImageURL    string
	ImageCredit *ImageCredit
}

// ImageCredit attributes a real photo to its photographer. Nil for
// AI-generated images.
type ImageCredit struct {
	Name string
	Link string
}

type CityStat struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Correct int     `json:"correct"`
	Wrong   int     `json:"wrong"`
}

type Screen string

const (
	ScreenMenu    Screen = "menu"
	ScreenLoading Screen = "loading"
	ScreenPlaying Screen = "playing"
	ScreenResult  Screen = "result"
	ScreenError   Screen = "error"
	ScreenMap     Screen = "map"
)

// Normalize prepares a guess or answer for comparison: surrounding
// whitespace stripped, lowercased. No fuzzy or alias matching beyond that.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsCorrect reports whether guess matches answer after normalization.
func IsCorrect(guess, answer string) bool {
	return Normalize(guess) == Normalize(answer)
}

// ScoreGuess applies one guess to a score/streak pair. A correct guess is
// worth 100 plus 10 per streak point held before the guess, and extends the
// streak; a miss leaves the score alone and resets the streak.
func ScoreGuess(score, streak int, correct bool) (int, int) {
	if !correct {
		return score, 0
	}
	return score + 100 + streak*10, streak + 1
}

// ShuffleOptions combines the correct city with its distractors and returns
// them in random order (Fisher-Yates).
func ShuffleOptions(correct string, distractors []string) []string {
	opts := make([]string, 0, len(distractors)+1)
	opts = append(opts, distractors...)
	opts = append(opts, correct)
	rand.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
