package rules

import (
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

// Merge возвращает копию base, в которой каждое указанное в patch поле заменено целиком.
// Списки не объединяются. Пустые users/channels снимают ограничение.
func Merge(base *models.Rule, patch *models.PartialRule) *models.Rule {
	merged := base.Clone()

	if patch.Kind != nil {
		merged.Kind = *patch.Kind
	}

	if patch.Match != nil {
		merged.Match = *patch.Match
	}

	if patch.Sensitive != nil {
		sensitive := *patch.Sensitive
		merged.Sensitive = &sensitive
	}

	if patch.Triggers != nil {
		merged.Triggers = append([]string(nil), patch.Triggers...)
	}

	if patch.Responses != nil {
		merged.Responses = append([]string(nil), patch.Responses...)
	}

	if patch.Users != nil {
		merged.Users = copyIDs(patch.Users)
	}

	if patch.Channels != nil {
		merged.Channels = copyIDs(patch.Channels)
	}

	if patch.Counter != nil {
		counter := *patch.Counter
		merged.Counter = &counter
	}

	return merged
}

func copyIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}

	return append([]int64(nil), ids...)
}
