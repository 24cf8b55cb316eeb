package clients

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

// FormatDocument переводит документ в HTML для Telegram. Футер всегда остается
// последней строкой текста без разметки, чтобы его можно было прочитать из callback.
func FormatDocument(doc *models.DisplayDocument) string {
	var sb strings.Builder

	if doc.Title != "" {
		sb.WriteString("<b>")
		sb.WriteString(escape(doc.Title))
		sb.WriteString("</b>")
	}

	for _, section := range doc.Sections {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}

		sb.WriteString("<b>")
		sb.WriteString(escape(section.Name))
		sb.WriteString("</b>")

		if section.Inline {
			sb.WriteString(": ")
			sb.WriteString(escape(strings.Join(section.Lines, ", ")))

			continue
		}

		for _, line := range section.Lines {
			sb.WriteString("\n")
			sb.WriteString(escape(line))
		}
	}

	if doc.Footer != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}

		sb.WriteString(escape(doc.Footer))
	}

	return sb.String()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}
