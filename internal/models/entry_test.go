package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/evkarev/cozydiary/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		in      string
		want    Mood
		wantErr bool
	}{
		{"happy", MoodHappy, false},
		{"  Excited ", MoodExcited, false},
		{"SAD", MoodSad, false},
		{"tired", MoodTired, false},
		{"", MoodNone, false},
		{"angry", MoodNone, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMood(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, common.ErrValidation))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDraftValidate(t *testing.T) {
	valid := Draft{Title: "Day One", Content: "<p>Hello</p>"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		draft Draft
	}{
		{"empty title", Draft{Title: "", Content: "x"}},
		{"whitespace title", Draft{Title: "   ", Content: "x"}},
		{"empty content", Draft{Title: "x", Content: ""}},
		{"unknown mood", Draft{Title: "x", Content: "y", Mood: "furious"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, common.ErrValidation))
		})
	}
}

func TestNormalizeStickers(t *testing.T) {
	assert.Nil(t, NormalizeStickers(nil))
	assert.Nil(t, NormalizeStickers([]string{"", "  "}))
	assert.Equal(t, []string{"⭐", "🌈"}, NormalizeStickers([]string{"⭐", "🌈", "⭐", ""}))
}

func TestNewEntry_StampsIdentityDateWeather(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d := Draft{Title: "  Day One  ", Content: "<p>Hello</p>", Mood: MoodHappy, Stickers: []string{"⭐"}}

	e := NewEntry(d, now, "22°C sunny")

	require.NotEmpty(t, e.ID)
	assert.Equal(t, "Day One", e.Title)
	assert.Equal(t, "<p>Hello</p>", e.Content)
	assert.Equal(t, MoodHappy, e.Mood)
	assert.Equal(t, []string{"⭐"}, e.Stickers)
	assert.Equal(t, DefaultTheme, e.Theme)
	assert.Equal(t, now, e.Date)
	assert.Equal(t, "22°C sunny", e.Weather)

	other := NewEntry(d, now, "")
	assert.NotEqual(t, e.ID, other.ID, "each entry must get its own identifier")
}

func TestDiaryEntry_Matches(t *testing.T) {
	e := DiaryEntry{Title: "Day One", Content: "<p>Hello Again</p>"}

	assert.True(t, e.Matches(""))
	assert.True(t, e.Matches("day"))
	assert.True(t, e.Matches("AGAIN"))
	assert.True(t, e.Matches("<p>"), "markup is searched, not stripped")
	assert.False(t, e.Matches("absent"))
}

func TestDiaryEntry_JSONRoundTrip_OptionalFieldsDefault(t *testing.T) {
	// A record persisted by an older revision may lack mood/stickers.
	raw := `{"id":"abc","title":"T","content":"C","theme":"default","date":"2025-06-01T12:00:00Z","weather":""}`

	var e DiaryEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, MoodNone, e.Mood)
	assert.Nil(t, e.Stickers)
}
