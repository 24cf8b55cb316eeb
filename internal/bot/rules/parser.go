package rules

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"

	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const (
	KeyType      = "type"
	KeyMatch     = "match"
	KeySensitive = "sensitive"
	KeyTriggers  = "triggers"
	KeyResponses = "responses"
	KeyUsers     = "users"
	KeyChannels  = "channels"
	KeyCounter   = "counter"
)

var requiredKeys = []string{KeyType, KeyMatch, KeyTriggers, KeyResponses}

// Parse разбирает тело команды вида "ключ значение" построчно.
// Строка с самой командой должна быть отброшена вызывающей стороной.
// В строгом режиме (создание реакции) обязательны type, match, triggers и responses.
func Parse(text string, strict bool) (*models.PartialRule, error) {
	result := &models.PartialRule{}

	for _, line := range strings.Split(strings.ReplaceAll(text, "`", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value := splitLine(line)

		if err := applyValue(result, key, value); err != nil {
			return nil, err
		}
	}

	if strict {
		for _, key := range requiredKeys {
			if !hasKey(result, key) {
				return nil, &domainerrors.ErrMissingRequiredField{FieldName: key}
			}
		}
	}

	return result, nil
}

func splitLine(line string) (key, value string) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}

	return line[:idx], strings.TrimSpace(line[idx:])
}

//nolint:gocyclo // Разбор каждого ключа описан явно, так проще сверять с форматом команды.
func applyValue(result *models.PartialRule, key, value string) error {
	invalid := &domainerrors.ErrInvalidValue{FieldName: key, Value: value}

	switch key {
	case KeyType:
		kind, ok := models.ParseRuleKind(value)
		if !ok {
			return invalid
		}

		result.Kind = &kind
	case KeyMatch:
		match, ok := models.ParseMatchMode(value)
		if !ok {
			return invalid
		}

		result.Match = &match
	case KeySensitive:
		if value != "true" && value != "false" {
			return invalid
		}

		sensitive := value == "true"
		result.Sensitive = &sensitive
	case KeyTriggers, KeyResponses:
		words, err := splitWords(value)
		if err != nil {
			return invalid
		}

		if key == KeyTriggers {
			result.Triggers = words
		} else {
			result.Responses = words
		}
	case KeyUsers, KeyChannels:
		ids, err := parseIDs(value)
		if err != nil {
			return invalid
		}

		if key == KeyUsers {
			result.Users = ids
		} else {
			result.Channels = ids
		}
	case KeyCounter:
		counter, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return invalid
		}

		result.Counter = &counter
	default:
		return &domainerrors.ErrUnknownKey{Key: key}
	}

	return nil
}

func splitWords(value string) ([]string, error) {
	words, err := shellquote.Split(value)
	if err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, strconv.ErrSyntax
	}

	for _, word := range words {
		if word == "" {
			return nil, strconv.ErrSyntax
		}
	}

	return words, nil
}

// parseIDs допускает как `1 2 3`, так и `"1 2 3"`. Пустое значение даёт пустой список.
func parseIDs(value string) ([]int64, error) {
	words, err := shellquote.Split(value)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(words))

	for _, word := range words {
		for _, field := range strings.Fields(word) {
			id, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, err
			}

			ids = append(ids, id)
		}
	}

	return ids, nil
}

func hasKey(p *models.PartialRule, key string) bool {
	switch key {
	case KeyType:
		return p.Kind != nil
	case KeyMatch:
		return p.Match != nil
	case KeySensitive:
		return p.Sensitive != nil
	case KeyTriggers:
		return p.Triggers != nil
	case KeyResponses:
		return p.Responses != nil
	case KeyUsers:
		return p.Users != nil
	case KeyChannels:
		return p.Channels != nil
	case KeyCounter:
		return p.Counter != nil
	default:
		return false
	}
}

// NewRule собирает полную реакцию из результата строгого разбора.
func NewRule(p *models.PartialRule) (*models.Rule, error) {
	for _, key := range requiredKeys {
		if !hasKey(p, key) {
			return nil, &domainerrors.ErrMissingRequiredField{FieldName: key}
		}
	}

	return Merge(&models.Rule{}, p), nil
}
