package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TelegramNotifier delivers chat replies through the Telegram bot API.
// Delivery is fire-and-forget from the caller's perspective: callers
// log a failed send and move on.
type TelegramNotifier struct {
	session *http.Client
	token   string
	baseURL string
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	if token == "" {
		return nil, errors.New("telegram bot token is empty")
	}

	return &TelegramNotifier{
		session: &http.Client{Timeout: 10 * time.Second},
		token:   token,
		baseURL: "https://api.telegram.org",
	}, nil
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage posts a plain-text message to the chat.
func (t *TelegramNotifier) SendMessage(ctx context.Context, chatID int64, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("send message: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send message: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.session.Do(req)
	if err != nil {
		return fmt.Errorf("send message: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("send message: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}
