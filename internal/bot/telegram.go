package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram adapts the Telegram Bot API onto the command router: it long
// polls for updates, maps them to Messages and sends the replies back.
type Telegram struct {
	api    *tgbotapi.BotAPI
	router *Router
	logger *slog.Logger
}

// NewTelegram connects to the Telegram Bot API with the given token
func NewTelegram(token string, router *Router, logger *slog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.Info("telegram bot authorized", slog.String("username", api.Self.UserName))

	return &Telegram{
		api:    api,
		router: router,
		logger: logger,
	}, nil
}

// Run registers the command menu and polls for updates until the context
// is cancelled.
func (t *Telegram) Run(ctx context.Context) error {
	if err := t.registerCommands(); err != nil {
		t.logger.Warn("could not register command menu", slog.String("error", err.Error()))
	}

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := t.api.GetUpdatesChan(updateCfg)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.handleUpdate(ctx, update)
		}
	}
}

func (t *Telegram) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || !msg.IsCommand() {
		return
	}

	reply := t.router.Dispatch(ctx, &Message{
		UserID:  msg.From.ID,
		ChatID:  msg.Chat.ID,
		Name:    displayName(msg.From),
		Command: msg.Command(),
		Args:    msg.CommandArguments(),
	})
	if reply == nil {
		return
	}

	if err := t.send(msg.Chat.ID, reply); err != nil {
		t.logger.Error("failed to send reply",
			slog.Int64("chat_id", msg.Chat.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (t *Telegram) send(chatID int64, reply *Reply) error {
	if reply.Photo != nil {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  reply.PhotoName,
			Bytes: reply.Photo,
		})
		_, err := t.api.Send(photo)
		return err
	}

	text := tgbotapi.NewMessage(chatID, reply.Text)
	text.ParseMode = tgbotapi.ModeHTML
	_, err := t.api.Send(text)
	return err
}

func (t *Telegram) registerCommands() error {
	var cmds []tgbotapi.BotCommand
	for _, cmd := range t.router.Commands() {
		cmds = append(cmds, tgbotapi.BotCommand{
			Command:     cmd.Name,
			Description: cmd.Description,
		})
	}
	_, err := t.api.Request(tgbotapi.NewSetMyCommands(cmds...))
	return err
}

// Prefer the handle; fall back to the profile name like the original bot
func displayName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
