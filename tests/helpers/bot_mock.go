package helpers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
)

// BotRequest is one Bot API call captured by MockBotClient
type BotRequest struct {
	Method string
	Params map[string]string
}

// MockBotClient is a BotClient that records every call instead of hitting Telegram
type MockBotClient struct {
	mu       sync.Mutex
	requests []BotRequest
}

func (m *MockBotClient) RequestWithContext(ctx context.Context, token string, method string, params map[string]string, data map[string]gotgbot.NamedReader, opts *gotgbot.RequestOpts) (json.RawMessage, error) {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}

	m.mu.Lock()
	m.requests = append(m.requests, BotRequest{Method: method, Params: copied})
	m.mu.Unlock()

	switch method {
	case "sendChatAction", "answerCallbackQuery", "setWebhook", "deleteWebhook":
		return json.RawMessage(`true`), nil
	default:
		mockResponse := `{"message_id":1,"date":1234567890,"chat":{"id":12345,"type":"private"},"text":"test"}`
		return json.RawMessage(mockResponse), nil
	}
}

func (m *MockBotClient) TimeoutContext(opts *gotgbot.RequestOpts) (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}

func (m *MockBotClient) GetAPIURL(opts *gotgbot.RequestOpts) string {
	return "https://api.telegram.org"
}

func (m *MockBotClient) FileURL(token string, tgFilePath string, opts *gotgbot.RequestOpts) string {
	return "https://api.telegram.org/file/bot" + token + "/" + tgFilePath
}

// Requests returns the recorded calls in order
func (m *MockBotClient) Requests() []BotRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]BotRequest(nil), m.requests...)
}

// Sent returns the recorded calls of one method
func (m *MockBotClient) Sent(method string) []BotRequest {
	var out []BotRequest
	for _, r := range m.Requests() {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// MockBot is a gotgbot.Bot wired to a recording client
type MockBot struct {
	Bot    *gotgbot.Bot
	Client *MockBotClient
}

// NewMockBot creates a new mock bot instance with a mock BotClient
func NewMockBot() *MockBot {
	client := &MockBotClient{}
	bot := &gotgbot.Bot{
		User: gotgbot.User{
			Id:        12345,
			IsBot:     true,
			FirstName: "PohodaBot",
			Username:  "pohoda_bot",
		},
		Token:     "test_token",
		BotClient: client,
	}

	return &MockBot{
		Bot:    bot,
		Client: client,
	}
}

// MockContextOptions provides options for creating a mock context
type MockContextOptions struct {
	UserID       int64
	ChatID       int64
	MessageID    int64
	MessageText  string
	CallbackID   string
	CallbackData string
}

// NewMockContext builds an ext.Context for a text message or, when callback
// data is set, a button press.
func NewMockContext(opts MockContextOptions) *ext.Context {
	if opts.UserID == 0 {
		opts.UserID = 12345
	}
	if opts.ChatID == 0 {
		opts.ChatID = 12345
	}
	if opts.MessageID == 0 {
		opts.MessageID = 1
	}

	user := gotgbot.User{Id: opts.UserID, FirstName: "Test", Username: "testuser"}
	chat := gotgbot.Chat{Id: opts.ChatID, Type: "private"}
	message := &gotgbot.Message{
		MessageId: opts.MessageID,
		From:      &user,
		Chat:      chat,
		Text:      opts.MessageText,
	}

	ctx := &ext.Context{
		Update:           &gotgbot.Update{Message: message},
		EffectiveUser:    &user,
		EffectiveChat:    &chat,
		EffectiveMessage: message,
		Data:             make(map[string]interface{}),
	}

	if opts.CallbackID != "" || opts.CallbackData != "" {
		ctx.CallbackQuery = &gotgbot.CallbackQuery{
			Id:           opts.CallbackID,
			From:         user,
			Message:      message,
			ChatInstance: "test_instance",
			Data:         opts.CallbackData,
		}
		ctx.Update = &gotgbot.Update{CallbackQuery: ctx.CallbackQuery}
	}

	return ctx
}
