package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-reactbot/internal/bot/rules"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

func TestMatchesText(t *testing.T) {
	sensitive := true

	tests := []struct {
		name      string
		match     models.MatchMode
		sensitive *bool
		text      string
		want      bool
	}{
		{name: "full equal", match: models.MatchFull, text: "good bot", want: true},
		{name: "full ignores case", match: models.MatchFull, text: "Good Bot", want: true},
		{name: "full longer text", match: models.MatchFull, text: "good bot!", want: false},
		{name: "full case sensitive", match: models.MatchFull, sensitive: &sensitive, text: "Good Bot", want: false},
		{name: "start", match: models.MatchStart, text: "good bot, thanks", want: true},
		{name: "start miss", match: models.MatchStart, text: "a good bot", want: false},
		{name: "end", match: models.MatchEnd, text: "what a good bot", want: true},
		{name: "end miss", match: models.MatchEnd, text: "good bot indeed", want: false},
		{name: "any", match: models.MatchAny, text: "such a GOOD BOT today", want: true},
		{name: "any case sensitive miss", match: models.MatchAny, sensitive: &sensitive, text: "such a GOOD BOT", want: false},
		{name: "any miss", match: models.MatchAny, text: "bad bot", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &models.Rule{
				Kind:      models.KindText,
				Match:     tt.match,
				Sensitive: tt.sensitive,
				Triggers:  []string{"nothing", "good bot"},
				Responses: []string{"thanks"},
			}

			assert.Equal(t, tt.want, rules.MatchesText(rule, tt.text))
		})
	}
}

func TestAllowed(t *testing.T) {
	zero := int64(0)
	two := int64(2)

	rule := &models.Rule{Users: []int64{1}, Channels: []int64{100}}

	assert.True(t, rules.Allowed(rule, 1, 100))
	assert.False(t, rules.Allowed(rule, 2, 100))
	assert.False(t, rules.Allowed(rule, 1, 200))
	assert.True(t, rules.Allowed(&models.Rule{}, 42, 42))
	assert.True(t, rules.Allowed(&models.Rule{Counter: &two}, 1, 1))
	assert.False(t, rules.Allowed(&models.Rule{Counter: &zero}, 1, 1))
}

func TestFindMatch_FirstInOrder(t *testing.T) {
	set := []models.NamedRule{
		{Name: "restricted", Rule: &models.Rule{Match: models.MatchAny, Triggers: []string{"hi"}, Users: []int64{7}}},
		{Name: "first", Rule: &models.Rule{Match: models.MatchAny, Triggers: []string{"hi"}}},
		{Name: "second", Rule: &models.Rule{Match: models.MatchAny, Triggers: []string{"hi"}}},
	}

	found, ok := rules.FindMatch(set, &models.Message{ChatID: 1, UserID: 2, Text: "oh hi"})

	assert.True(t, ok)
	assert.Equal(t, "first", found.Name)

	_, ok = rules.FindMatch(set, &models.Message{ChatID: 1, UserID: 2, Text: "bye"})
	assert.False(t, ok)
}

func TestPickResponse(t *testing.T) {
	rule := &models.Rule{Responses: []string{"a", "b", "c"}}

	assert.Equal(t, "c", rules.PickResponse(rule, func(n int) int { return n - 1 }))
	assert.Equal(t, "a", rules.PickResponse(rule, func(int) int { return 0 }))
	assert.Empty(t, rules.PickResponse(&models.Rule{}, func(int) int { return 0 }))
}
