package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/dependencies/clock"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/metrics"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/render"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/identity"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/leaderboard"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/ledger"
)

// How many rows the top commands show
const topN = 10

// Authorizer reports whether the user may run privileged commands
type Authorizer func(userID int64) bool

// AdminAuthorizer authorizes exactly the configured admin id
func AdminAuthorizer(adminID int64) Authorizer {
	return func(userID int64) bool {
		return userID == adminID
	}
}

// Handlers implements the bot's command set over the core services
type Handlers struct {
	identity    *identity.Service
	ledger      *ledger.Service
	leaderboard *leaderboard.Service
	render      *render.Service
	clock       clock.Clock
	authorize   Authorizer
	logger      *slog.Logger
}

// Config holds the dependencies for the command handlers
type Config struct {
	Identity    *identity.Service
	Ledger      *ledger.Service
	Leaderboard *leaderboard.Service
	Render      *render.Service
	Clock       clock.Clock
	Authorize   Authorizer
	Logger      *slog.Logger
}

// NewHandlers creates the command handlers
func NewHandlers(cfg Config) *Handlers {
	return &Handlers{
		identity:    cfg.Identity,
		ledger:      cfg.Ledger,
		leaderboard: cfg.Leaderboard,
		render:      cfg.Render,
		clock:       cfg.Clock,
		authorize:   cfg.Authorize,
		logger:      cfg.Logger,
	}
}

// NewRouter builds the command table for the given handlers
func NewRouter(logger *slog.Logger, h *Handlers) *Router {
	r := newRouter(logger)
	r.Register(Command{Name: "start", Description: "Botni ishga tushirish", Handler: h.Start})
	r.Register(Command{Name: "help", Description: "Yordam", Handler: h.Help})
	r.Register(Command{Name: "farosat", Description: "Farosat olish 🧠", Handler: h.Claim})
	r.Register(Command{Name: "top10", Description: "Chat Top-10 🏆", Handler: h.TopChat})
	r.Register(Command{Name: "worldtop10", Description: "Dunyodagi Top-10 🌍", Handler: h.TopGlobal})
	r.Register(Command{Name: "add_farosat", Description: "Farosat qo‘shish (admin)", Handler: h.Adjust})
	r.Register(Command{Name: "pic_farosat", Description: "Rasmda farosat 🌠️", Handler: h.Picture})
	r.Register(Command{Name: "mycertificate", Description: "Sertifikat 🎖️", Handler: h.Certificate})
	return r
}

// Start greets the user and registers them
func (h *Handlers) Start(ctx context.Context, msg *Message) (*Reply, error) {
	if err := h.identity.EnsureUser(ctx, msg.UserID, msg.Name); err != nil {
		return nil, err
	}
	return &Reply{Text: startText(msg.Name)}, nil
}

// Help lists the available commands
func (h *Handlers) Help(ctx context.Context, msg *Message) (*Reply, error) {
	return &Reply{Text: msgHelp}, nil
}

// Claim runs the daily farosat claim for the sender in this chat
func (h *Handlers) Claim(ctx context.Context, msg *Message) (*Reply, error) {
	if err := h.identity.EnsureUser(ctx, msg.UserID, msg.Name); err != nil {
		metrics.ObserveClaim(metrics.OutcomeError)
		return nil, err
	}

	today := model.DayOf(h.clock.Now())
	result, err := h.ledger.Claim(ctx, msg.UserID, msg.ChatID, today)
	if err != nil {
		metrics.ObserveClaim(metrics.OutcomeError)
		return nil, err
	}

	if !result.Accepted {
		metrics.ObserveClaim(metrics.OutcomeAlreadyClaimed)
		return &Reply{Text: msgAlreadyClaimed}, nil
	}

	metrics.ObserveClaim(metrics.OutcomeAccepted)
	return &Reply{Text: claimText(result.Delta, result.Score)}, nil
}

// TopChat shows this chat's top scorers
func (h *Handlers) TopChat(ctx context.Context, msg *Message) (*Reply, error) {
	rows, err := h.leaderboard.TopInChat(ctx, msg.ChatID, topN)
	if err != nil {
		return nil, err
	}
	return &Reply{Text: topText("🏆 <b>Chat Top-10 Farosatchilar:</b>", rows)}, nil
}

// TopGlobal shows the top scorers summed across every chat
func (h *Handlers) TopGlobal(ctx context.Context, msg *Message) (*Reply, error) {
	rows, err := h.leaderboard.TopGlobal(ctx, topN)
	if err != nil {
		return nil, err
	}
	return &Reply{Text: topText("🌍 <b>Dunyodagi Top-10 Farosatchilar:</b>", rows)}, nil
}

// Adjust adds an arbitrary amount to a target user's score in this chat.
// Only the configured admin may call it; the ledger is never reached for
// anyone else.
func (h *Handlers) Adjust(ctx context.Context, msg *Message) (*Reply, error) {
	if !h.authorize(msg.UserID) {
		h.logger.Warn("unauthorized adjust attempt",
			slog.Int64("user_id", msg.UserID),
			slog.Int64("chat_id", msg.ChatID),
		)
		return &Reply{Text: msgAdminOnly}, nil
	}

	targetID, amount, ok := parseAdjustArgs(msg.Args)
	if !ok {
		return &Reply{Text: msgAdjustUsage}, nil
	}

	score, err := h.ledger.Adjust(ctx, targetID, msg.ChatID, amount)
	if err != nil {
		return nil, err
	}

	metrics.ObserveAdjustment()
	return &Reply{Text: adjustText(amount, score)}, nil
}

// Picture sends the sender's score in this chat as an image
func (h *Handlers) Picture(ctx context.Context, msg *Message) (*Reply, error) {
	return h.image(ctx, msg, "farosat.png", h.render.ScoreCard)
}

// Certificate sends the sender's score in this chat as a certificate image
func (h *Handlers) Certificate(ctx context.Context, msg *Message) (*Reply, error) {
	return h.image(ctx, msg, "certificate.png", h.render.Certificate)
}

func (h *Handlers) image(ctx context.Context, msg *Message, filename string, draw func(string, int64) ([]byte, error)) (*Reply, error) {
	score, err := h.ledger.GetScore(ctx, msg.UserID, msg.ChatID)
	if err != nil {
		return nil, err
	}

	png, err := draw(msg.Name, score)
	if err != nil {
		return nil, err
	}
	return &Reply{Photo: png, PhotoName: filename}, nil
}

func parseAdjustArgs(args string) (targetID, amount int64, ok bool) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return 0, 0, false
	}
	targetID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	amount, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return targetID, amount, true
}
