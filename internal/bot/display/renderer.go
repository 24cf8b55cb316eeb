package display

import (
	"context"
	"strconv"

	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const (
	ListTitle = "react list"

	unknownUser    = "(неизвестный пользователь)"
	unknownChannel = "(неизвестный чат)"
)

type IdentityResolver interface {
	ResolveUser(ctx context.Context, userID int64) (string, bool)

	ResolveChannel(ctx context.Context, chatID int64) (string, bool)
}

// Render строит документ для одной реакции. Побочных эффектов нет, кроме обращений к resolver.
func Render(ctx context.Context, rule *models.Rule, resolver IdentityResolver) *models.DisplayDocument {
	doc := &models.DisplayDocument{Title: ListTitle}

	doc.AddSection("triggers", false, rule.Triggers...)
	doc.AddSection("responses", false, rule.Responses...)
	doc.AddSection("type", true, string(rule.Kind))
	doc.AddSection("match", true, string(rule.Match))
	doc.AddSection("sensitive", true, strconv.FormatBool(rule.CaseSensitive()))

	if len(rule.Users) > 0 {
		lines := make([]string, 0, len(rule.Users))

		for _, id := range rule.Users {
			name, ok := resolver.ResolveUser(ctx, id)
			if !ok {
				name = unknownUser
			}

			lines = append(lines, strconv.FormatInt(id, 10)+" "+name)
		}

		doc.AddSection("users", false, lines...)
	}

	if len(rule.Channels) > 0 {
		lines := make([]string, 0, len(rule.Channels))

		for _, id := range rule.Channels {
			ref, ok := resolver.ResolveChannel(ctx, id)
			if !ok {
				ref = unknownChannel
			}

			lines = append(lines, strconv.FormatInt(id, 10)+" "+ref)
		}

		doc.AddSection("channels", false, lines...)
	}

	if rule.Counter != nil {
		doc.AddSection("counter", true, strconv.FormatInt(*rule.Counter, 10))
	}

	return doc
}

func RenderEmpty() *models.DisplayDocument {
	return &models.DisplayDocument{Title: ListTitle}
}
