package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/central-university-dev/go-reactbot/internal/bot/display"
	"github.com/central-university-dev/go-reactbot/internal/bot/rules"
	"github.com/central-university-dev/go-reactbot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const defaultFooterLabel = display.ListTitle

const startText = "Привет! Я отвечаю на сообщения по заданным реакциям. Введите /help для просмотра доступных команд."

const helpText = `Доступные команды:
/react list - показать реакции
/react add <имя> - добавить реакцию (поля на следующих строках)
/react edit <имя> - изменить поля реакции
/react remove <имя> - удалить реакцию
/react usage - статистика срабатываний

Поля реакции, по одному на строку:
type text|image
match full|start|end|any
sensitive true|false
triggers слово "фраза из слов" ...
responses ответ "ещё один ответ" ...
users <id> <id> ...
channels <id> <id> ...
counter <число>

Обязательные поля при добавлении: type, match, triggers, responses.`

func (s *BotService) handleReactCommand(ctx context.Context, command *models.Command) (string, error) {
	action, name, body := splitReactArgs(command.Text)

	var (
		reply string
		err   error
	)

	switch action {
	case models.ActionList:
		reply, err = s.handleListCommand(ctx, command)
	case models.ActionUsage:
		reply, err = s.handleUsageCommand(ctx)
	case models.ActionAdd, models.ActionEdit, models.ActionRemove:
		if name == "" {
			return helpText, nil
		}

		if !s.canModify(command.UserID) {
			err = &domainerrors.ErrPermissionDenied{UserID: command.UserID}
			break
		}

		reply, err = s.handleModifyCommand(ctx, command, action, name, body)
	default:
		return helpText, nil
	}

	metrics.RecordCommand(string(action), err)

	if err != nil {
		return s.userReply(err)
	}

	return reply, nil
}

func (s *BotService) handleModifyCommand(
	ctx context.Context,
	command *models.Command,
	action models.ReactAction,
	name, body string,
) (string, error) {
	//nolint:exhaustive // остальные действия не изменяют реакции
	switch action {
	case models.ActionAdd:
		return s.handleAddCommand(ctx, command, name, body)
	case models.ActionEdit:
		return s.handleEditCommand(ctx, command, name, body)
	default:
		return s.handleRemoveCommand(ctx, command, name)
	}
}

func (s *BotService) handleListCommand(ctx context.Context, command *models.Command) (string, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return "", err
	}

	if len(list) == 0 {
		if _, err := s.telegramClient.SendDocument(ctx, command.ChatID, display.RenderEmpty(), false); err != nil {
			return "", err
		}

		return "", nil
	}

	doc := s.renderPage(ctx, list, 0)

	if _, err := s.telegramClient.SendDocument(ctx, command.ChatID, doc, len(list) > 1); err != nil {
		return "", err
	}

	return "", nil
}

func (s *BotService) handleAddCommand(ctx context.Context, command *models.Command, name, body string) (string, error) {
	partial, err := rules.Parse(body, true)
	if err != nil {
		return "", err
	}

	rule, err := rules.NewRule(partial)
	if err != nil {
		return "", err
	}

	if err := s.store.Add(ctx, name, rule); err != nil {
		return "", err
	}

	s.audit(command, "rule_added", name)

	return fmt.Sprintf("Реакция «%s» добавлена.", name), nil
}

func (s *BotService) handleEditCommand(ctx context.Context, command *models.Command, name, body string) (string, error) {
	patch, err := rules.Parse(body, false)
	if err != nil {
		return "", err
	}

	if patch.IsEmpty() {
		return "Укажите поля, которые нужно изменить. Введите /help для просмотра формата.", nil
	}

	current, err := s.store.Get(ctx, name)
	if err != nil {
		return "", err
	}

	if err := s.store.Update(ctx, name, rules.Merge(current, patch)); err != nil {
		return "", err
	}

	s.audit(command, "rule_updated", name)

	return fmt.Sprintf("Реакция «%s» изменена.", name), nil
}

func (s *BotService) handleRemoveCommand(ctx context.Context, command *models.Command, name string) (string, error) {
	if err := s.store.Remove(ctx, name); err != nil {
		return "", err
	}

	s.audit(command, "rule_removed", name)

	if err := s.usage.Reset(ctx, name); err != nil {
		s.logger.Warn("Не удалось сбросить статистику удалённой реакции",
			"error", err,
			"rule", name,
		)
	}

	return fmt.Sprintf("Реакция «%s» удалена.", name), nil
}

func (s *BotService) handleUsageCommand(ctx context.Context) (string, error) {
	usage, err := s.usage.Usage(ctx)
	if err != nil {
		return "", err
	}

	if len(usage) == 0 {
		return "Реакции ещё не срабатывали.", nil
	}

	names := make([]string, 0, len(usage))
	for name := range usage {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if usage[names[i]] != usage[names[j]] {
			return usage[names[i]] > usage[names[j]]
		}

		return names[i] < names[j]
	})

	var sb strings.Builder

	sb.WriteString("Статистика срабатываний:\n")

	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%s: %d\n", name, usage[name]))
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

// renderPage строит страницу списка для реакции с номером page.
func (s *BotService) renderPage(ctx context.Context, list []models.NamedRule, page int) *models.DisplayDocument {
	entry := list[page]

	doc := display.Render(ctx, entry.Rule, s.telegramClient)
	doc.Title = entry.Name

	return display.Attach(doc, s.footerLabel, page, len(list))
}

func (s *BotService) audit(command *models.Command, event, name string) {
	s.logger.Info("Изменение реакций",
		"event", event,
		"rule", name,
		"user_id", command.UserID,
		"username", command.Username,
		"chat_id", command.ChatID,
	)
}
