package clients

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/central-university-dev/go-reactbot/internal/bot/domain"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

type TelegramClient struct {
	bot       *tgbotapi.BotAPI
	imagesDir string
	logger    *slog.Logger
}

// NewTelegramClient подключается к Bot API по адресу apiEndpoint в формате tgbotapi.APIEndpoint.
// Пустой адрес означает api.telegram.org.
func NewTelegramClient(token, apiEndpoint, imagesDir string, logger *slog.Logger) domain.TelegramClientAPI {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, apiEndpoint)
	if err != nil {
		logger.Error("Ошибка при создании Telegram клиента", "error", err)
	}

	return &TelegramClient{
		bot:       bot,
		imagesDir: imagesDir,
		logger:    logger,
	}
}

func (c *TelegramClient) SendMessage(_ context.Context, chatID int64, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	msg := tgbotapi.NewMessage(chatID, text)

	_, err := c.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}

func (c *TelegramClient) SendImage(_ context.Context, chatID int64, source string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	photo := tgbotapi.NewPhoto(chatID, c.imageFile(source))

	_, err := c.bot.Send(photo)
	if err != nil {
		return fmt.Errorf("ошибка при отправке изображения %s: %w", source, err)
	}

	return nil
}

func (c *TelegramClient) SendDocument(
	_ context.Context,
	chatID int64,
	doc *models.DisplayDocument,
	withNavigation bool,
) (models.DisplayHandle, error) {
	if c.bot == nil {
		return models.DisplayHandle{}, fmt.Errorf("telegram клиент не инициализирован")
	}

	msg := tgbotapi.NewMessage(chatID, FormatDocument(doc))
	msg.ParseMode = tgbotapi.ModeHTML

	if withNavigation {
		msg.ReplyMarkup = navigationKeyboard()
	}

	sent, err := c.bot.Send(msg)
	if err != nil {
		return models.DisplayHandle{}, fmt.Errorf("ошибка при отправке списка реакций: %w", err)
	}

	return models.DisplayHandle{ChatID: chatID, MessageID: sent.MessageID}, nil
}

func (c *TelegramClient) UpdateDocument(
	_ context.Context,
	handle models.DisplayHandle,
	doc *models.DisplayDocument,
	withNavigation bool,
) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	edit := tgbotapi.NewEditMessageText(handle.ChatID, handle.MessageID, FormatDocument(doc))
	edit.ParseMode = tgbotapi.ModeHTML

	if withNavigation {
		keyboard := navigationKeyboard()
		edit.ReplyMarkup = &keyboard
	}

	_, err := c.bot.Send(edit)
	if err != nil {
		// Telegram отвечает ошибкой, если текст не изменился (например, в списке одна реакция).
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}

		return fmt.Errorf("ошибка при обновлении списка реакций: %w", err)
	}

	return nil
}

func (c *TelegramClient) AnswerCallback(_ context.Context, callbackID, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	if _, err := c.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("ошибка при ответе на нажатие кнопки: %w", err)
	}

	return nil
}

func (c *TelegramClient) ResolveUser(_ context.Context, userID int64) (string, bool) {
	chat, ok := c.getChat(userID)
	if !ok {
		return "", false
	}

	if chat.UserName != "" {
		return "@" + chat.UserName, true
	}

	name := strings.TrimSpace(chat.FirstName + " " + chat.LastName)

	return name, name != ""
}

func (c *TelegramClient) ResolveChannel(_ context.Context, chatID int64) (string, bool) {
	chat, ok := c.getChat(chatID)
	if !ok {
		return "", false
	}

	if chat.UserName != "" {
		return "@" + chat.UserName, true
	}

	return chat.Title, chat.Title != ""
}

func (c *TelegramClient) SetMyCommands(_ context.Context, commands []domain.BotCommand) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	botAPICommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botAPICommands = append(botAPICommands, tgbotapi.BotCommand{
			Command:     cmd.Command,
			Description: cmd.Description,
		})
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(botAPICommands...)

	_, err := c.bot.Request(setCommandsConfig)
	if err != nil {
		return fmt.Errorf("ошибка при установке команд бота: %w", err)
	}

	return nil
}

func (c *TelegramClient) GetBot() *tgbotapi.BotAPI {
	return c.bot
}

func (c *TelegramClient) getChat(id int64) (tgbotapi.Chat, bool) {
	if c.bot == nil {
		return tgbotapi.Chat{}, false
	}

	chat, err := c.bot.GetChat(tgbotapi.ChatInfoConfig{ChatConfig: tgbotapi.ChatConfig{ChatID: id}})
	if err != nil {
		c.logger.Debug("Не удалось получить информацию о чате",
			"error", err,
			"chat_id", id,
		)

		return tgbotapi.Chat{}, false
	}

	return chat, true
}

func (c *TelegramClient) imageFile(source string) tgbotapi.RequestFileData {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return tgbotapi.FileURL(source)
	}

	return tgbotapi.FilePath(filepath.Join(c.imagesDir, source))
}

func navigationKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀", domain.CallbackPrevious),
			tgbotapi.NewInlineKeyboardButtonData("▶", domain.CallbackNext),
		),
	)
}
