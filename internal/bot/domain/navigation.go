package domain

import (
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const (
	CallbackPrevious = "react:prev"
	CallbackNext     = "react:next"
)

func ParseCallbackData(data string) (models.Direction, bool) {
	switch data {
	case CallbackPrevious:
		return models.DirectionPrevious, true
	case CallbackNext:
		return models.DirectionNext, true
	default:
		return 0, false
	}
}
