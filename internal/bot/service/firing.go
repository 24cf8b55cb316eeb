package service

import (
	"context"
	"fmt"

	"github.com/central-university-dev/go-reactbot/internal/bot/rules"
	"github.com/central-university-dev/go-reactbot/internal/common/metrics"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

// ProcessMessage ищет реакцию на обычное сообщение и отправляет ответ. Если ни одна реакция
// не подошла или чат исчерпал лимит, ничего не происходит.
func (s *BotService) ProcessMessage(ctx context.Context, message *models.Message) error {
	list, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	matched, ok := rules.FindMatch(list, message)
	if !ok {
		return nil
	}

	if !s.limiter.Allow(message.ChatID) {
		return nil
	}

	response := rules.PickResponse(matched.Rule, s.intn)

	if matched.Rule.Kind == models.KindImage {
		err = s.telegramClient.SendImage(ctx, message.ChatID, response)
	} else {
		err = s.telegramClient.SendMessage(ctx, message.ChatID, response)
	}

	metrics.RecordRuleTriggered(string(matched.Rule.Kind), err)

	if err != nil {
		return fmt.Errorf("ошибка при отправке ответа реакции %s: %w", matched.Name, err)
	}

	s.logger.Debug("Реакция сработала",
		"rule", matched.Name,
		"chat_id", message.ChatID,
		"user_id", message.UserID,
	)

	if err := s.store.Consume(ctx, matched.Name); err != nil {
		s.logger.Warn("Не удалось уменьшить счётчик реакции",
			"error", err,
			"rule", matched.Name,
		)
	}

	if err := s.usage.Increment(ctx, matched.Name); err != nil {
		s.logger.Warn("Не удалось обновить статистику срабатываний",
			"error", err,
			"rule", matched.Name,
		)
	}

	return nil
}
