package telegram

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/central-university-dev/go-reactbot/internal/bot/domain"
	"github.com/central-university-dev/go-reactbot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const genericErrorReply = "Произошла ошибка при обработке вашего сообщения. Пожалуйста, попробуйте позже."

type BotService interface {
	ProcessCommand(ctx context.Context, command *models.Command) (string, error)

	ProcessMessage(ctx context.Context, message *models.Message) error

	ProcessNavigation(ctx context.Context, nav *models.Navigation) error
}

type Poller struct {
	telegramClient domain.TelegramClientAPI
	botService     BotService
	logger         *slog.Logger
	timeout        time.Duration
	updatesChan    tgbotapi.UpdatesChannel
	stopChan       chan struct{}
	stopOnce       sync.Once
}

func NewPoller(
	telegramClient domain.TelegramClientAPI,
	botService BotService,
	timeout time.Duration,
	logger *slog.Logger,
) *Poller {
	return &Poller{
		telegramClient: telegramClient,
		botService:     botService,
		logger:         logger,
		timeout:        timeout,
		stopChan:       make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.logger.Info("Запуск Telegram поллера")

	bot := p.telegramClient.GetBot()
	if bot == nil {
		p.logger.Error("Не удалось получить доступ к API бота")
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query"}

	p.updatesChan = bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-p.stopChan:
				p.logger.Info("Получен сигнал остановки поллера")
				return
			case update, ok := <-p.updatesChan:
				if !ok {
					return
				}

				p.processUpdate(&update)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Остановка Telegram поллера")

		if bot := p.telegramClient.GetBot(); bot != nil && p.updatesChan != nil {
			bot.StopReceivingUpdates()
		}

		close(p.stopChan)
	})
}

func (p *Poller) processUpdate(update *tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		p.processCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.From != nil && update.Message.Text != "":
		p.processMessage(update.Message)
	}
}

func (p *Poller) processMessage(message *tgbotapi.Message) {
	started := time.Now()

	chatID := message.Chat.ID
	userID := message.From.ID
	text := message.Text
	username := message.From.UserName

	messageType := "message"
	if message.IsCommand() {
		messageType = "command"
	}

	defer func() {
		metrics.RecordUserMessage(messageType, time.Since(started))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if !message.IsCommand() {
		if err := p.botService.ProcessMessage(ctx, &models.Message{
			ChatID:   chatID,
			UserID:   userID,
			Text:     text,
			Username: username,
		}); err != nil {
			p.logger.Error("Ошибка при обработке сообщения",
				"error", err,
				"chat_id", chatID,
			)
		}

		return
	}

	p.logger.Info("Получена команда",
		"chat_id", chatID,
		"user_id", userID,
		"text", text,
		"username", username,
	)

	command := &models.Command{
		ChatID:   chatID,
		UserID:   userID,
		Text:     text,
		Username: username,
		Type:     getCommandType("/" + message.Command()),
	}

	response, err := p.botService.ProcessCommand(ctx, command)
	if err != nil {
		var unknown *domainerrors.ErrUnknownCommand
		if errors.As(err, &unknown) {
			p.logger.Warn("Неизвестная команда",
				"chat_id", chatID,
				"command", unknown.Command,
			)
		} else {
			p.logger.Error("Ошибка при обработке команды",
				"error", err,
				"chat_id", chatID,
				"text", text,
			)
		}

		if response == "" {
			response = genericErrorReply
		}
	}

	if response == "" {
		return
	}

	if err := p.telegramClient.SendMessage(ctx, chatID, response); err != nil {
		p.logger.Error("Ошибка при отправке ответа",
			"error", err,
			"chat_id", chatID,
		)
	}
}

func (p *Poller) processCallback(query *tgbotapi.CallbackQuery) {
	started := time.Now()

	defer func() {
		metrics.RecordUserMessage("callback", time.Since(started))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	direction, ok := domain.ParseCallbackData(query.Data)
	if !ok || query.Message == nil || query.Message.Chat == nil {
		p.logger.Debug("Пропущено нажатие неизвестной кнопки",
			"data", query.Data,
		)

		if err := p.telegramClient.AnswerCallback(ctx, query.ID, ""); err != nil {
			p.logger.Warn("Не удалось ответить на нажатие кнопки", "error", err)
		}

		return
	}

	var userID int64
	if query.From != nil {
		userID = query.From.ID
	}

	nav := &models.Navigation{
		CallbackID: query.ID,
		Handle: models.DisplayHandle{
			ChatID:    query.Message.Chat.ID,
			MessageID: query.Message.MessageID,
		},
		Direction: direction,
		UserID:    userID,
		Text:      query.Message.Text,
	}

	if err := p.botService.ProcessNavigation(ctx, nav); err != nil {
		p.logger.Error("Ошибка при перелистывании списка реакций",
			"error", err,
			"chat_id", nav.Handle.ChatID,
			"message_id", nav.Handle.MessageID,
		)
	}
}

func getCommandType(commandName string) models.CommandType {
	switch commandName {
	case "/start":
		return models.CommandStart
	case "/help":
		return models.CommandHelp
	case "/react", "/reaction", "/reactions":
		return models.CommandReact
	default:
		return models.CommandUnknown
	}
}
