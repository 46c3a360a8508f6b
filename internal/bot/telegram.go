package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/callbackquery"
	"github.com/rs/zerolog"

	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/models"
	"github.com/valpere/pohoda/internal/presenter"
	"github.com/valpere/pohoda/internal/services"
	"github.com/valpere/pohoda/pkg/weather"
)

const (
	outboxSize     = 32
	retryCallback  = "retry"
	pickPrefix     = "pick:"
	requestTimeout = 15 * time.Second
)

// Searcher is the part of the search controller the chat needs
type Searcher interface {
	Initiate(ctx context.Context, city string) error
	RetryLast(ctx context.Context) error
	QuickPicks() []string
}

type outgoing struct {
	text   string
	markup gotgbot.ReplyMarkup
	action string
}

// Telegram mirrors search transitions into one chat and turns text from
// that chat into searches. Presenter calls only enqueue; delivery happens on
// a background goroutine so the controller is never blocked by the network.
type Telegram struct {
	bot        *gotgbot.Bot
	chatID     int64
	searcher   Searcher
	logger     *zerolog.Logger
	dispatcher *ext.Dispatcher
	updater    *ext.Updater

	mu      sync.Mutex
	polling bool
	closed  bool
	outbox  chan outgoing
	done    chan struct{}
}

// NewTelegram connects to the Bot API with the configured token
func NewTelegram(cfg *config.TelegramConfig, logger *zerolog.Logger) (*Telegram, error) {
	botInstance, err := gotgbot.NewBot(cfg.Token, &gotgbot.BotOpts{
		BotClient: &gotgbot.BaseBotClient{
			Client: http.Client{Timeout: 30 * time.Second},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return NewTelegramWithBot(botInstance, cfg.ChatID, logger), nil
}

// NewTelegramWithBot wraps an existing bot, e.g. one with a mock client
func NewTelegramWithBot(b *gotgbot.Bot, chatID int64, logger *zerolog.Logger) *Telegram {
	componentLogger := logger.With().Str("component", "telegram").Logger()

	t := &Telegram{
		bot:    b,
		chatID: chatID,
		logger: &componentLogger,
		outbox: make(chan outgoing, outboxSize),
		done:   make(chan struct{}),
	}

	go t.deliverLoop()
	return t
}

// Bind attaches the search controller and registers update handlers
func (t *Telegram) Bind(searcher Searcher) {
	t.searcher = searcher

	t.dispatcher = ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			t.logger.Error().Err(err).Msg("Error handling update")
			return ext.DispatcherActionNoop
		},
	})
	t.updater = ext.NewUpdater(t.dispatcher, &ext.UpdaterOpts{})

	t.dispatcher.AddHandler(handlers.NewCommand("start", t.Start))
	t.dispatcher.AddHandler(handlers.NewCommand("retry", t.Retry))
	t.dispatcher.AddHandler(handlers.NewCallback(callbackquery.Equal(retryCallback), t.RetryCallback))
	t.dispatcher.AddHandler(handlers.NewCallback(callbackquery.Prefix(pickPrefix), t.PickCallback))
	t.dispatcher.AddHandler(handlers.NewMessage(func(msg *gotgbot.Message) bool {
		return msg.Text != "" && !strings.HasPrefix(msg.Text, "/")
	}, t.Search))
}

// Run polls for updates until ctx is cancelled
func (t *Telegram) Run(ctx context.Context) error {
	if t.updater == nil {
		return errors.New("telegram adapter is not bound to a searcher")
	}

	t.logger.Info().Int64("chat_id", t.chatID).Msg("Starting polling...")
	if err := t.updater.StartPolling(t.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 10,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 15,
			},
		},
	}); err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	t.mu.Lock()
	t.polling = true
	t.mu.Unlock()

	<-ctx.Done()
	return nil
}

// Stop ends polling and flushes queued messages
func (t *Telegram) Stop() {
	t.mu.Lock()
	polling := t.polling
	t.polling = false
	t.mu.Unlock()

	if polling {
		if err := t.updater.Stop(); err != nil {
			t.logger.Debug().Err(err).Msg("Updater stop error")
		}
	}

	t.mu.Lock()
	if !t.closed {
		t.closed = true
		close(t.outbox)
	}
	t.mu.Unlock()

	<-t.done
}

// Start greets the chat with the quick picks
func (t *Telegram) Start(b *gotgbot.Bot, ctx *ext.Context) error {
	if !t.allowed(ctx) {
		return nil
	}
	t.ShowQuickPicks(t.searcher.QuickPicks())
	return nil
}

func (t *Telegram) Retry(b *gotgbot.Bot, ctx *ext.Context) error {
	if !t.allowed(ctx) {
		return nil
	}
	return t.run(func(c context.Context) error { return t.searcher.RetryLast(c) })
}

func (t *Telegram) RetryCallback(b *gotgbot.Bot, ctx *ext.Context) error {
	t.answer(b, ctx)
	return t.Retry(b, ctx)
}

func (t *Telegram) PickCallback(b *gotgbot.Bot, ctx *ext.Context) error {
	t.answer(b, ctx)
	if !t.allowed(ctx) {
		return nil
	}
	city := strings.TrimPrefix(ctx.CallbackQuery.Data, pickPrefix)
	return t.run(func(c context.Context) error { return t.searcher.Initiate(c, city) })
}

// Search treats any plain text as a city name
func (t *Telegram) Search(b *gotgbot.Bot, ctx *ext.Context) error {
	if !t.allowed(ctx) {
		return nil
	}
	city := ctx.EffectiveMessage.Text
	return t.run(func(c context.Context) error { return t.searcher.Initiate(c, city) })
}

func (t *Telegram) run(search func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// the outcome has already been presented to the chat
	if err := search(ctx); err != nil {
		t.logger.Debug().
			Err(err).
			Bool("superseded", errors.Is(err, services.ErrSuperseded)).
			Msg("Chat search finished with error")
	}
	return nil
}

func (t *Telegram) allowed(ctx *ext.Context) bool {
	if ctx.EffectiveChat == nil || ctx.EffectiveChat.Id != t.chatID {
		var chatID int64
		if ctx.EffectiveChat != nil {
			chatID = ctx.EffectiveChat.Id
		}
		t.logger.Debug().Int64("chat_id", chatID).Msg("Ignoring update from another chat")
		return false
	}
	return true
}

func (t *Telegram) answer(b *gotgbot.Bot, ctx *ext.Context) {
	if ctx.CallbackQuery == nil {
		return
	}
	if _, err := ctx.CallbackQuery.Answer(b, nil); err != nil {
		t.logger.Debug().Err(err).Msg("Failed to answer callback query")
	}
}

func (t *Telegram) enqueue(o outgoing) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	select {
	case t.outbox <- o:
	default:
		t.logger.Warn().Msg("Telegram outbox full, dropping message")
	}
}

func (t *Telegram) deliverLoop() {
	defer close(t.done)
	for o := range t.outbox {
		t.deliver(o)
	}
}

func (t *Telegram) deliver(o outgoing) {
	if o.action != "" {
		if _, err := t.bot.SendChatAction(t.chatID, o.action, nil); err != nil {
			t.logger.Debug().Err(err).Msg("Failed to send chat action")
		}
		return
	}

	opts := &gotgbot.SendMessageOpts{}
	if o.markup != nil {
		opts.ReplyMarkup = o.markup
	}
	if _, err := t.bot.SendMessage(t.chatID, o.text, opts); err != nil {
		t.logger.Error().Err(err).Int64("chat_id", t.chatID).Msg("Failed to send message")
	}
}

func (t *Telegram) ShowLoading(loading bool) {
	if loading {
		t.enqueue(outgoing{action: "typing"})
	}
}

func (t *Telegram) ShowWeather(reading weather.Reading) {
	t.enqueue(outgoing{text: presenter.FormatReading(reading)})
}

func (t *Telegram) ShowError(message string, hasRetry bool) {
	o := outgoing{text: "❌ " + message}
	if hasRetry {
		o.markup = gotgbot.InlineKeyboardMarkup{
			InlineKeyboard: [][]gotgbot.InlineKeyboardButton{
				{{Text: "🔄 Retry", CallbackData: retryCallback}},
			},
		}
	}
	t.enqueue(o)
}

// ShowToast sends success toasts only; error toasts repeat the error message
func (t *Telegram) ShowToast(toast models.Toast) {
	if toast.Kind != models.ToastSuccess {
		return
	}
	t.enqueue(outgoing{text: "✅ " + toast.Message})
}

func (t *Telegram) HideToast(string) {}

func (t *Telegram) ShowQuickPicks(cities []string) {
	o := outgoing{text: presenter.FormatQuickPicks(cities)}
	if len(cities) > 0 {
		keyboard := make([][]gotgbot.InlineKeyboardButton, 0, len(cities))
		for _, city := range cities {
			keyboard = append(keyboard, []gotgbot.InlineKeyboardButton{
				{Text: city, CallbackData: pickPrefix + city},
			})
		}
		o.markup = gotgbot.InlineKeyboardMarkup{InlineKeyboard: keyboard}
	}
	t.enqueue(o)
}

func (t *Telegram) HideAll() {}

func (t *Telegram) Prefill(city string) {
	t.enqueue(outgoing{text: "📍 Last searched: " + city})
}
