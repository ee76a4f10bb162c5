package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/nmehta/movebot/internal/listing"
	"github.com/nmehta/movebot/internal/metrics"
	"github.com/nmehta/movebot/internal/model"
	"github.com/nmehta/movebot/internal/render"
	"github.com/nmehta/movebot/internal/telegram"
)

// Transport is the slice of the chat API the handlers need.
type Transport interface {
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
	EditMessageText(ctx context.Context, chatID, messageID int64, text string, markup *telegram.InlineKeyboardMarkup) error
	SendMessage(ctx context.Context, chatID int64, text string, markup *telegram.InlineKeyboardMarkup) (*telegram.Message, error)
}

// Lister runs the credential-gated move listing flow.
type Lister interface {
	ListMoves(ctx context.Context, user model.User, asset string) listing.Outcome
}

// Router registers callback handlers by token.
type Router interface {
	HandleCallback(data string, h telegram.CallbackHandler)
}

// MoveListHandler serves the move options menu and per-asset listings.
type MoveListHandler struct {
	transport Transport
	lister    Lister
	logger    *slog.Logger
}

// NewMoveListHandler creates the handler.
func NewMoveListHandler(transport Transport, lister Lister, logger *slog.Logger) *MoveListHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MoveListHandler{
		transport: transport,
		lister:    lister,
		logger:    logger,
	}
}

// Register wires the handler's callback tokens into the router.
func (h *MoveListHandler) Register(r Router) {
	r.HandleCallback(render.CallbackMoveMenu, h.HandleMenu)
	r.HandleCallback(render.CallbackBTCMoves, h.assetHandler("BTC"))
	r.HandleCallback(render.CallbackETHMoves, h.assetHandler("ETH"))
}

// HandleMenu shows the asset picker.
func (h *MoveListHandler) HandleMenu(ctx context.Context, cb telegram.CallbackQuery) {
	if err := h.transport.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		h.logger.Warn("answer callback failed", "error", err)
	}
	h.reply(ctx, cb, render.MoveListMenu())
}

func (h *MoveListHandler) assetHandler(asset string) telegram.CallbackHandler {
	return func(ctx context.Context, cb telegram.CallbackQuery) {
		h.HandleMoveList(ctx, cb, asset)
	}
}

// HandleMoveList runs one listing flow for a button press: acknowledge,
// show a loading placeholder, run the flow, then replace the placeholder
// with the rendered outcome.
func (h *MoveListHandler) HandleMoveList(ctx context.Context, cb telegram.CallbackQuery, asset string) {
	if err := h.transport.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		h.logger.Warn("answer callback failed", "error", err)
	}

	h.reply(ctx, cb, render.Loading(asset))

	user := model.User{
		ID:        cb.From.ID,
		Username:  cb.From.Username,
		FirstName: cb.From.FirstName,
	}

	start := time.Now()
	out := h.lister.ListMoves(ctx, user, asset)
	metrics.RecordFlow(out.Asset, out.Kind.String(), time.Since(start))

	h.reply(ctx, cb, render.MoveList(out))
}

// reply edits the message the button lives on; when the press arrives
// without one, it falls back to a fresh message in the same chat.
func (h *MoveListHandler) reply(ctx context.Context, cb telegram.CallbackQuery, p render.Payload) {
	markup := toMarkup(p.Keyboard)
	text := p.Text()

	if cb.Message != nil {
		err := h.transport.EditMessageText(ctx, cb.Message.Chat.ID, cb.Message.MessageID, text, markup)
		if err == nil {
			return
		}
		h.logger.Warn("edit message failed", "chat_id", cb.Message.Chat.ID, "error", err)
		return
	}

	if _, err := h.transport.SendMessage(ctx, cb.From.ID, text, markup); err != nil {
		h.logger.Error("send message failed", "user_id", cb.From.ID, "error", err)
	}
}

func toMarkup(kb render.Keyboard) *telegram.InlineKeyboardMarkup {
	rows := make([][]telegram.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]telegram.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, telegram.InlineKeyboardButton{
				Text:         b.Text,
				CallbackData: b.Data,
			})
		}
		rows = append(rows, buttons)
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}
