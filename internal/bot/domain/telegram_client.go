package domain

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

type BotCommand struct {
	Command     string
	Description string
}

type TelegramClientAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error

	SendImage(ctx context.Context, chatID int64, source string) error

	SendDocument(ctx context.Context, chatID int64, doc *models.DisplayDocument, withNavigation bool) (models.DisplayHandle, error)

	UpdateDocument(ctx context.Context, handle models.DisplayHandle, doc *models.DisplayDocument, withNavigation bool) error

	AnswerCallback(ctx context.Context, callbackID string, text string) error

	ResolveUser(ctx context.Context, userID int64) (string, bool)

	ResolveChannel(ctx context.Context, chatID int64) (string, bool)

	SetMyCommands(ctx context.Context, commands []BotCommand) error

	GetBot() *tgbotapi.BotAPI
}
