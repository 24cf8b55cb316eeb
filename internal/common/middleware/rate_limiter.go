package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type chatLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ChatRateLimiter ограничивает частоту срабатывания реакций в каждом чате отдельно.
// Лишние срабатывания просто отбрасываются.
type ChatRateLimiter struct {
	chats      map[int64]*chatLimiter
	mu         sync.Mutex
	rate       rate.Limit
	burst      int
	expiration time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewChatRateLimiter(
	ctx context.Context,
	requests int,
	window time.Duration,
	logger *slog.Logger,
) *ChatRateLimiter {
	l := newChatRateLimiter(requests, window, logger, time.Now)

	go l.cleanupChats(ctx)

	return l
}

func newChatRateLimiter(requests int, window time.Duration, logger *slog.Logger, now func() time.Time) *ChatRateLimiter {
	return &ChatRateLimiter{
		chats:      make(map[int64]*chatLimiter),
		rate:       rate.Limit(float64(requests) / window.Seconds()),
		burst:      requests,
		expiration: 1 * time.Hour,
		logger:     logger,
		now:        now,
	}
}

func (l *ChatRateLimiter) Allow(chatID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	chat, exists := l.chats[chatID]
	if !exists {
		chat = &chatLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.chats[chatID] = chat
	}

	chat.lastSeen = now

	if !chat.limiter.AllowN(now, 1) {
		l.logger.Debug("Срабатывание реакции отброшено ограничителем",
			"chat_id", chatID,
		)

		return false
	}

	return true
}

func (l *ChatRateLimiter) cleanupChats(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.removeExpired()
		case <-ctx.Done():
			return
		}
	}
}

func (l *ChatRateLimiter) removeExpired() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	for chatID, chat := range l.chats {
		if now.Sub(chat.lastSeen) > l.expiration {
			delete(l.chats, chatID)
		}
	}
}
