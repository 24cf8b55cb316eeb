package service

import (
	"context"
	"errors"

	"github.com/central-university-dev/go-reactbot/internal/bot/display"
	"github.com/central-university-dev/go-reactbot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

// ProcessNavigation перелистывает список реакций в уже отправленном сообщении.
// Текущая страница берётся из подписи сообщения, число страниц - из хранилища.
func (s *BotService) ProcessNavigation(ctx context.Context, nav *models.Navigation) error {
	err := s.navigate(ctx, nav)
	metrics.RecordNavigation(nav.Direction.String(), err)

	if answerErr := s.telegramClient.AnswerCallback(ctx, nav.CallbackID, ""); answerErr != nil {
		s.logger.Warn("Не удалось ответить на нажатие кнопки",
			"error", answerErr,
			"callback_id", nav.CallbackID,
		)
	}

	return err
}

func (s *BotService) navigate(ctx context.Context, nav *models.Navigation) error {
	page, _, err := display.Decode(display.FooterLine(nav.Text))
	if err != nil {
		var malformed *domainerrors.ErrMalformedFooter
		if errors.As(err, &malformed) {
			s.logger.Debug("Нажатие кнопки на постороннем сообщении проигнорировано",
				"chat_id", nav.Handle.ChatID,
				"message_id", nav.Handle.MessageID,
			)

			return nil
		}

		return err
	}

	list, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		return s.telegramClient.UpdateDocument(ctx, nav.Handle, display.RenderEmpty(), false)
	}

	// Реакции могли удалить, пока сообщение висело в чате.
	page = min(page, len(list)-1)

	next, err := display.Advance(page, len(list), nav.Direction)
	if err != nil {
		return err
	}

	return s.telegramClient.UpdateDocument(ctx, nav.Handle, s.renderPage(ctx, list, next), len(list) > 1)
}
