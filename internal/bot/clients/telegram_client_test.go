package clients_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reactbot/internal/bot/clients"
	"github.com/central-university-dev/go-reactbot/internal/bot/domain"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

const testToken = "123:test"

type botAPIRequest struct {
	method   string
	form     map[string]string
	fileName string
}

// fakeBotAPI отвечает на запросы Bot API заранее заданными JSON ответами и запоминает полученные запросы.
type fakeBotAPI struct {
	mu        sync.Mutex
	requests  []botAPIRequest
	responses map[string]string
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	req := botAPIRequest{method: method, form: make(map[string]string)}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for key, values := range r.MultipartForm.Value {
				req.form[key] = values[0]
			}

			if files := r.MultipartForm.File["photo"]; len(files) > 0 {
				req.fileName = files[0].Filename
			}
		}
	} else if err := r.ParseForm(); err == nil {
		for key := range r.PostForm {
			req.form[key] = r.PostForm.Get(key)
		}
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	response, ok := f.responses[method]
	f.mu.Unlock()

	if !ok {
		response = `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":100,"type":"group"}}}`
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(response))
}

func (f *fakeBotAPI) last(t *testing.T, method string) botAPIRequest {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].method == method {
			return f.requests[i]
		}
	}

	t.Fatalf("запрос %s не отправлялся", method)

	return botAPIRequest{}
}

func newTestClient(t *testing.T, imagesDir string, responses map[string]string) (domain.TelegramClientAPI, *fakeBotAPI) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	if responses == nil {
		responses = make(map[string]string)
	}

	responses["getMe"] = `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"reactbot","username":"reactbot"}}`

	api := &fakeBotAPI{responses: responses}

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	client := clients.NewTelegramClient(testToken, server.URL+"/bot%s/%s", imagesDir, logger)
	require.NotNil(t, client.GetBot())

	return client, api
}

func TestTelegramClient_SendImage_URL(t *testing.T) {
	client, api := newTestClient(t, t.TempDir(), nil)

	err := client.SendImage(context.Background(), 100, "https://example.com/cat.png")
	require.NoError(t, err)

	req := api.last(t, "sendPhoto")
	assert.Equal(t, "https://example.com/cat.png", req.form["photo"])
	assert.Empty(t, req.fileName, "картинка по ссылке не загружается ботом")
	assert.Equal(t, "100", req.form["chat_id"])
}

func TestTelegramClient_SendImage_LocalFile(t *testing.T) {
	imagesDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "cat.png"), []byte("png"), 0o600))

	client, api := newTestClient(t, imagesDir, nil)

	err := client.SendImage(context.Background(), 100, "cat.png")
	require.NoError(t, err)

	req := api.last(t, "sendPhoto")
	assert.Equal(t, "cat.png", req.fileName)
	assert.Empty(t, req.form["photo"])
}

func TestTelegramClient_SendImage_MissingFile(t *testing.T) {
	client, _ := newTestClient(t, t.TempDir(), nil)

	err := client.SendImage(context.Background(), 100, "missing.png")
	require.Error(t, err)
}

func TestTelegramClient_SendDocument(t *testing.T) {
	client, api := newTestClient(t, t.TempDir(), map[string]string{
		"sendMessage": `{"ok":true,"result":{"message_id":77,"date":0,"chat":{"id":100,"type":"group"}}}`,
	})

	doc := &models.DisplayDocument{Title: "greet", Footer: "react list | 1/2"}

	handle, err := client.SendDocument(context.Background(), 100, doc, true)
	require.NoError(t, err)
	assert.Equal(t, models.DisplayHandle{ChatID: 100, MessageID: 77}, handle)

	req := api.last(t, "sendMessage")
	assert.Equal(t, "HTML", req.form["parse_mode"])
	assert.Contains(t, req.form["reply_markup"], domain.CallbackPrevious)
	assert.Contains(t, req.form["reply_markup"], domain.CallbackNext)
}

func TestTelegramClient_UpdateDocument(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  bool
	}{
		{
			name:     "успешное обновление",
			response: `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":100,"type":"group"}}}`,
		},
		{
			name: "текст не изменился",
			response: `{"ok":false,"error_code":400,"description":"Bad Request: message is not modified: ` +
				`specified new message content and reply markup are exactly the same"}`,
		},
		{
			name:     "другая ошибка",
			response: `{"ok":false,"error_code":400,"description":"Bad Request: message to edit not found"}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, api := newTestClient(t, t.TempDir(), map[string]string{"editMessageText": tt.response})

			err := client.UpdateDocument(context.Background(), models.DisplayHandle{ChatID: 100, MessageID: 7},
				&models.DisplayDocument{Title: "greet"}, false)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			req := api.last(t, "editMessageText")
			assert.Equal(t, "7", req.form["message_id"])
			assert.Empty(t, req.form["reply_markup"])
		})
	}
}

func TestTelegramClient_ResolveUser(t *testing.T) {
	client, _ := newTestClient(t, t.TempDir(), map[string]string{
		"getChat": `{"ok":true,"result":{"id":42,"type":"private","first_name":"Alice","last_name":"Smith"}}`,
	})

	name, ok := client.ResolveUser(context.Background(), 42)
	require.True(t, ok)
	assert.Equal(t, "Alice Smith", name)
}

func TestTelegramClient_ResolveChannel_Failure(t *testing.T) {
	client, _ := newTestClient(t, t.TempDir(), map[string]string{
		"getChat": `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
	})

	_, ok := client.ResolveChannel(context.Background(), -100123)
	assert.False(t, ok)
}
