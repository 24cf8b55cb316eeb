package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/central-university-dev/go-reactbot/internal/bot/domain"
	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

type RuleRepository interface {
	List(ctx context.Context) ([]models.NamedRule, error)

	Get(ctx context.Context, name string) (*models.Rule, error)

	Add(ctx context.Context, name string, rule *models.Rule) error

	Update(ctx context.Context, name string, rule *models.Rule) error

	Remove(ctx context.Context, name string) error

	Consume(ctx context.Context, name string) error
}

type UsageCounter interface {
	Increment(ctx context.Context, name string) error

	Usage(ctx context.Context) (map[string]int64, error)

	Reset(ctx context.Context, name string) error
}

type FiringLimiter interface {
	Allow(chatID int64) bool
}

type Options struct {
	// ModeratorIDs - пользователи, которым разрешено изменять реакции. Пустой список снимает ограничение.
	ModeratorIDs []int64
	FooterLabel  string
}

type BotService struct {
	store          RuleRepository
	usage          UsageCounter
	telegramClient domain.TelegramClientAPI
	limiter        FiringLimiter
	moderators     map[int64]struct{}
	footerLabel    string
	intn           func(n int) int
	logger         *slog.Logger
}

func NewBotService(
	store RuleRepository,
	usage UsageCounter,
	telegramClient domain.TelegramClientAPI,
	limiter FiringLimiter,
	opts Options,
	logger *slog.Logger,
) *BotService {
	moderators := make(map[int64]struct{}, len(opts.ModeratorIDs))
	for _, id := range opts.ModeratorIDs {
		moderators[id] = struct{}{}
	}

	footerLabel := opts.FooterLabel
	if footerLabel == "" {
		footerLabel = defaultFooterLabel
	}

	return &BotService{
		store:          store,
		usage:          usage,
		telegramClient: telegramClient,
		limiter:        limiter,
		moderators:     moderators,
		footerLabel:    footerLabel,
		intn:           rand.IntN,
		logger:         logger,
	}
}

// SetRandom подменяет источник случайных чисел для выбора ответа (используется в тестах).
func (s *BotService) SetRandom(intn func(n int) int) {
	s.intn = intn
}

func (s *BotService) ProcessCommand(ctx context.Context, command *models.Command) (string, error) {
	//nolint:exhaustive // CommandUnknown обрабатывается в блоке default
	switch command.Type {
	case models.CommandStart:
		return startText, nil
	case models.CommandHelp:
		return helpText, nil
	case models.CommandReact:
		return s.handleReactCommand(ctx, command)
	default:
		return "Неизвестная команда. Введите /help для просмотра доступных команд.",
			&domainerrors.ErrUnknownCommand{Command: command.Text}
	}
}

func (s *BotService) canModify(userID int64) bool {
	if len(s.moderators) == 0 {
		return true
	}

	_, ok := s.moderators[userID]

	return ok
}

// userReply превращает ошибку в ответ пользователю. Неожиданные ошибки возвращаются вызывающему как есть.
func (s *BotService) userReply(err error) (string, error) {
	var (
		unknownKey  *domainerrors.ErrUnknownKey
		invalid     *domainerrors.ErrInvalidValue
		missing     *domainerrors.ErrMissingRequiredField
		exists      *domainerrors.ErrRuleAlreadyExists
		notFound    *domainerrors.ErrRuleNotFound
		denied      *domainerrors.ErrPermissionDenied
		persistence *domainerrors.ErrPersistence
	)

	switch {
	case errors.As(err, &unknownKey):
		return "Неизвестный ключ «" + unknownKey.Key + "». Введите /help, чтобы посмотреть доступные ключи.", nil
	case errors.As(err, &invalid):
		return "Некорректное значение «" + invalid.Value + "» для ключа " + invalid.FieldName + ".", nil
	case errors.As(err, &missing):
		return "Не указано обязательное поле " + missing.FieldName + ".", nil
	case errors.As(err, &exists):
		return "Реакция «" + exists.Name + "» уже существует. Используйте /react edit, чтобы изменить её.", nil
	case errors.As(err, &notFound):
		return "Реакция «" + notFound.Name + "» не найдена.", nil
	case errors.As(err, &denied):
		return "У вас нет прав на изменение реакций.", nil
	case errors.As(err, &persistence):
		s.logger.Error("Не удалось сохранить реакции",
			"error", err,
			"path", persistence.Path,
		)

		return "Не удалось сохранить реакции, изменение отменено. Попробуйте позже.", nil
	default:
		return "", err
	}
}

// cutWord отделяет первое слово строки от остатка.
func cutWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}

	return s[:idx], strings.TrimLeftFunc(s[idx:], unicode.IsSpace)
}

// splitReactArgs разбирает текст команды вида "/react add greet\ntype text\n...".
// Всё, что идёт после имени в первой строке, считается первой строкой тела.
func splitReactArgs(text string) (action models.ReactAction, name, body string) {
	head, body, _ := strings.Cut(text, "\n")

	_, rest := cutWord(head)
	word, rest := cutWord(rest)
	name, rest = cutWord(rest)

	if rest = strings.TrimSpace(rest); rest != "" {
		body = rest + "\n" + body
	}

	return models.ReactAction(strings.ToLower(word)), name, body
}
