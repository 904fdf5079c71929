// Package models defines diary entry types and their validation rules.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/evkarev/cozydiary/internal/common"
	"github.com/google/uuid"
)

// Mood classifies how the author felt when writing an entry.
type Mood string

const (
	// MoodNone marks an entry written without picking a mood.
	MoodNone    Mood = ""
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodExcited Mood = "excited"
	MoodTired   Mood = "tired"
)

// ParseMood converts user input into a Mood. The empty string is valid and
// means "no mood selected"; anything outside the known set is a validation
// error.
func ParseMood(s string) (Mood, error) {
	switch Mood(strings.ToLower(strings.TrimSpace(s))) {
	case MoodNone:
		return MoodNone, nil
	case MoodHappy:
		return MoodHappy, nil
	case MoodSad:
		return MoodSad, nil
	case MoodExcited:
		return MoodExcited, nil
	case MoodTired:
		return MoodTired, nil
	default:
		return MoodNone, fmt.Errorf("%w: unknown mood %q", common.ErrValidation, s)
	}
}

// Emoji returns the display glyph for the mood, or an empty string for
// MoodNone.
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodSad:
		return "😢"
	case MoodExcited:
		return "🤗"
	case MoodTired:
		return "😴"
	default:
		return ""
	}
}

// DefaultTheme is the visual theme assigned when the author does not pick one.
const DefaultTheme = "default"

// DiaryEntry is one journal record. ID is a stable opaque identifier
// assigned at creation time; Date and Weather are stamped when the entry is
// built and are not edited directly by the user. Content is an opaque
// rich-text markup string, never parsed here.
type DiaryEntry struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Mood     Mood      `json:"mood,omitempty"`
	Stickers []string  `json:"stickers,omitempty"`
	Theme    string    `json:"theme"`
	Date     time.Time `json:"date"`
	Weather  string    `json:"weather"`
}

// Matches reports whether the query is a case-insensitive substring of the
// entry title or content (markup included). The empty query matches
// everything.
func (e DiaryEntry) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Content), q)
}

// CalendarEvent is the read-only projection consumed by the calendar widget.
type CalendarEvent struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// Draft holds the caller-supplied fields of an entry, before the service
// stamps date, weather, and identity. It replaces the loose field bags of
// earlier revisions with an explicit, validated shape.
type Draft struct {
	Title    string
	Content  string
	Mood     Mood
	Stickers []string
	Theme    string
}

// Validate checks the required fields. Title must be non-empty after
// trimming; content must be non-empty; the mood must belong to the known
// set. All failures wrap common.ErrValidation.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if d.Content == "" {
		return fmt.Errorf("%w: content must not be empty", common.ErrValidation)
	}
	if _, err := ParseMood(string(d.Mood)); err != nil {
		return err
	}
	return nil
}

// NormalizeStickers deduplicates sticker labels preserving first occurrence
// and drops empty ones. Sticker order is not significant, so keeping input
// order is just a stable choice.
func NormalizeStickers(stickers []string) []string {
	if len(stickers) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(stickers))
	result := make([]string, 0, len(stickers))
	for _, s := range stickers {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// NewEntry builds a DiaryEntry from a validated draft, stamping the creation
// instant and the weather snapshot and assigning a fresh identifier.
// The caller is expected to have called Validate first.
func NewEntry(d Draft, now time.Time, weather string) DiaryEntry {
	theme := strings.TrimSpace(d.Theme)
	if theme == "" {
		theme = DefaultTheme
	}
	return DiaryEntry{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(d.Title),
		Content:  d.Content,
		Mood:     d.Mood,
		Stickers: NormalizeStickers(d.Stickers),
		Theme:    theme,
		Date:     now,
		Weather:  weather,
	}
}
