package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/metrics"
)

// Message is one inbound chat command, already stripped of transport
// detail. Name is the sender's display name as the transport saw it.
type Message struct {
	UserID  int64
	ChatID  int64
	Name    string
	Command string
	Args    string
}

// Reply is what a command handler wants sent back to the chat. Either
// Text or Photo is set.
type Reply struct {
	Text      string
	Photo     []byte
	PhotoName string
}

// HandlerFunc processes one command message
type HandlerFunc func(ctx context.Context, msg *Message) (*Reply, error)

// Command pairs a command name with its handler and the description shown
// in the Telegram command menu.
type Command struct {
	Name        string
	Description string
	Handler     HandlerFunc
}

// Router is an explicit command table: one entry per command, no pattern
// matching.
type Router struct {
	commands map[string]Command
	order    []string
	logger   *slog.Logger
}

func newRouter(logger *slog.Logger) *Router {
	return &Router{
		commands: make(map[string]Command),
		logger:   logger,
	}
}

// Register adds a command to the table. Re-registering a name replaces the
// handler but keeps its menu position.
func (r *Router) Register(cmd Command) {
	if _, ok := r.commands[cmd.Name]; !ok {
		r.order = append(r.order, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
}

// Commands returns the registered commands in registration order, for
// command-menu setup.
func (r *Router) Commands() []Command {
	cmds := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Dispatch routes the message to its handler. Unknown commands return nil.
// Handler errors are logged and converted into a generic failure reply so
// storage detail never leaks into the chat.
func (r *Router) Dispatch(ctx context.Context, msg *Message) *Reply {
	name := msg.Command
	// Group chats address commands as /cmd@botname
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}

	cmd, ok := r.commands[name]
	if !ok {
		return nil
	}

	metrics.ObserveCommand(name)

	reply, err := cmd.Handler(ctx, msg)
	if err != nil {
		r.logger.Error("command failed",
			slog.String("command", name),
			slog.Int64("user_id", msg.UserID),
			slog.Int64("chat_id", msg.ChatID),
			slog.String("error", err.Error()),
		)
		return &Reply{Text: msgInternalError}
	}
	return reply
}
