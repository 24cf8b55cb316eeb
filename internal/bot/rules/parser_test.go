package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reactbot/internal/bot/rules"
	"github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const fullBody = "type text\n" +
	"match start\n" +
	"sensitive true\n" +
	`triggers "a b c" "d e" f` + "\n" +
	`responses "abc def"` + "\n" +
	"users 1 2 3\n" +
	"channels 10\n" +
	"counter 10\n"

func TestParse_FullBody(t *testing.T) {
	partial, err := rules.Parse(fullBody, true)

	require.NoError(t, err)
	require.NotNil(t, partial.Kind)
	assert.Equal(t, models.KindText, *partial.Kind)
	require.NotNil(t, partial.Match)
	assert.Equal(t, models.MatchStart, *partial.Match)
	require.NotNil(t, partial.Sensitive)
	assert.True(t, *partial.Sensitive)
	assert.Equal(t, []string{"a b c", "d e", "f"}, partial.Triggers)
	assert.Equal(t, []string{"abc def"}, partial.Responses)
	assert.Equal(t, []int64{1, 2, 3}, partial.Users)
	assert.Equal(t, []int64{10}, partial.Channels)
	require.NotNil(t, partial.Counter)
	assert.Equal(t, int64(10), *partial.Counter)
}

func TestParse_CodeBlockAndBlankLines(t *testing.T) {
	body := "```\ntype image\n\nmatch any\n   \ntriggers cat\nresponses cat.png\n```"

	partial, err := rules.Parse(body, true)

	require.NoError(t, err)
	assert.Equal(t, models.KindImage, *partial.Kind)
	assert.Equal(t, models.MatchAny, *partial.Match)
	assert.Equal(t, []string{"cat"}, partial.Triggers)
	assert.Equal(t, []string{"cat.png"}, partial.Responses)
	assert.Nil(t, partial.Sensitive)
	assert.Nil(t, partial.Users)
	assert.Nil(t, partial.Counter)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := rules.Parse("foo bar", false)

	require.Error(t, err)

	var keyErr *errors.ErrUnknownKey
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "foo", keyErr.Key)
}

func TestParse_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
	}{
		{name: "unknown type", body: "type banana", key: "type"},
		{name: "unknown match", body: "match regex", key: "match"},
		{name: "sensitive not bool", body: "sensitive yes", key: "sensitive"},
		{name: "empty triggers", body: "triggers", key: "triggers"},
		{name: "empty quoted trigger", body: `triggers ""`, key: "triggers"},
		{name: "unbalanced quote", body: `responses "abc`, key: "responses"},
		{name: "users with word", body: "users 1 two 3", key: "users"},
		{name: "quoted users with word", body: `users "1 two 3"`, key: "users"},
		{name: "channels float", body: "channels 1.5", key: "channels"},
		{name: "counter word", body: "counter ten", key: "counter"},
		{name: "counter two numbers", body: "counter 1 2", key: "counter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.Parse(tt.body, false)

			require.Error(t, err)

			var valueErr *errors.ErrInvalidValue
			require.ErrorAs(t, err, &valueErr)
			assert.Equal(t, tt.key, valueErr.FieldName)
		})
	}
}

func TestParse_QuotedUsers(t *testing.T) {
	partial, err := rules.Parse(`users "1 2 3"`, false)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, partial.Users)
}

func TestParse_EmptyUsersClearsRestriction(t *testing.T) {
	partial, err := rules.Parse("users", false)

	require.NoError(t, err)
	assert.NotNil(t, partial.Users)
	assert.Empty(t, partial.Users)
}

func TestParse_LastWriteWins(t *testing.T) {
	partial, err := rules.Parse("match full\nmatch end\ncounter 1\ncounter 7", false)

	require.NoError(t, err)
	assert.Equal(t, models.MatchEnd, *partial.Match)
	assert.Equal(t, int64(7), *partial.Counter)
}

func TestParse_Strict(t *testing.T) {
	t.Run("missing responses", func(t *testing.T) {
		_, err := rules.Parse("type text\nmatch full\ntriggers hi", true)

		var missingErr *errors.ErrMissingRequiredField
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "responses", missingErr.FieldName)
	})

	t.Run("missing type reported first", func(t *testing.T) {
		_, err := rules.Parse("", true)

		var missingErr *errors.ErrMissingRequiredField
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "type", missingErr.FieldName)
	})

	t.Run("lenient accepts empty body", func(t *testing.T) {
		partial, err := rules.Parse("", false)

		require.NoError(t, err)
		assert.True(t, partial.IsEmpty())
	})
}

func TestNewRule(t *testing.T) {
	partial, err := rules.Parse(fullBody, true)
	require.NoError(t, err)

	rule, err := rules.NewRule(partial)

	require.NoError(t, err)
	assert.Equal(t, models.KindText, rule.Kind)
	assert.Equal(t, models.MatchStart, rule.Match)
	assert.True(t, rule.CaseSensitive())
	assert.Equal(t, []string{"a b c", "d e", "f"}, rule.Triggers)
	assert.Equal(t, []int64{1, 2, 3}, rule.Users)
	assert.Equal(t, int64(10), *rule.Counter)

	_, err = rules.NewRule(&models.PartialRule{})
	assert.ErrorIs(t, err, &errors.ErrMissingRequiredField{})
}
