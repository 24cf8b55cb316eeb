package rules

import (
	"slices"
	"strings"

	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

func MatchesText(rule *models.Rule, text string) bool {
	if !rule.CaseSensitive() {
		text = strings.ToLower(text)
	}

	for _, trigger := range rule.Triggers {
		if !rule.CaseSensitive() {
			trigger = strings.ToLower(trigger)
		}

		if matchTrigger(rule.Match, trigger, text) {
			return true
		}
	}

	return false
}

func matchTrigger(mode models.MatchMode, trigger, text string) bool {
	switch mode {
	case models.MatchFull:
		return text == trigger
	case models.MatchStart:
		return strings.HasPrefix(text, trigger)
	case models.MatchEnd:
		return strings.HasSuffix(text, trigger)
	case models.MatchAny:
		return strings.Contains(text, trigger)
	default:
		return false
	}
}

// Allowed проверяет ограничения по пользователям, чатам и оставшемуся числу срабатываний.
func Allowed(rule *models.Rule, userID, chatID int64) bool {
	if rule.Exhausted() {
		return false
	}

	if len(rule.Users) > 0 && !slices.Contains(rule.Users, userID) {
		return false
	}

	if len(rule.Channels) > 0 && !slices.Contains(rule.Channels, chatID) {
		return false
	}

	return true
}

// FindMatch возвращает первую по порядку реакцию, которая должна сработать на сообщение.
func FindMatch(rules []models.NamedRule, msg *models.Message) (models.NamedRule, bool) {
	for _, named := range rules {
		if Allowed(named.Rule, msg.UserID, msg.ChatID) && MatchesText(named.Rule, msg.Text) {
			return named, true
		}
	}

	return models.NamedRule{}, false
}

// PickResponse выбирает ответ; intn должна вести себя как rand.IntN.
func PickResponse(rule *models.Rule, intn func(n int) int) string {
	if len(rule.Responses) == 0 {
		return ""
	}

	return rule.Responses[intn(len(rule.Responses))]
}
