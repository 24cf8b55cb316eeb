package display

import (
	"fmt"
	"strconv"
	"strings"

	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const FooterDelimiter = " | "

// Attach записывает номер страницы в подпись документа. Для одной страницы подпись не нужна.
func Attach(doc *models.DisplayDocument, label string, page, total int) *models.DisplayDocument {
	if total <= 1 {
		doc.Footer = ""
		return doc
	}

	doc.Footer = fmt.Sprintf("%s%s%d/%d", label, FooterDelimiter, page+1, total)

	return doc
}

// Decode возвращает номер страницы (с нуля) и число страниц из подписи.
// Ошибка означает, что сообщение создано не этим ботом.
func Decode(footer string) (page, total int, err error) {
	malformed := &domainerrors.ErrMalformedFooter{Footer: footer}

	idx := strings.LastIndex(footer, FooterDelimiter)
	if idx < 0 {
		return 0, 0, malformed
	}

	current, count, ok := strings.Cut(footer[idx+len(FooterDelimiter):], "/")
	if !ok {
		return 0, 0, malformed
	}

	page, ok = parseDigits(current)
	if !ok {
		return 0, 0, malformed
	}

	total, ok = parseDigits(count)
	if !ok {
		return 0, 0, malformed
	}

	if total < 1 || page < 1 || page > total {
		return 0, 0, malformed
	}

	return page - 1, total, nil
}

// parseDigits принимает только десятичные цифры: знаки и пробелы strconv.Atoi пропустил бы.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)

	return n, err == nil
}

func Advance(page, total int, direction models.Direction) (int, error) {
	if total <= 0 {
		return 0, &domainerrors.ErrEmptyPagination{}
	}

	if direction != models.DirectionPrevious && direction != models.DirectionNext {
		return 0, fmt.Errorf("некорректное направление перелистывания: %d", direction)
	}

	return ((page+int(direction))%total + total) % total, nil
}

// FooterLine достаёт подпись из текста уже отправленного сообщения: это его последняя непустая строка.
func FooterLine(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n "), "\n")

	return strings.TrimSpace(lines[len(lines)-1])
}
