// Package notify delivers order events to an admin Telegram chat.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/Beka01247/bistro-api/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	chatID int64
	events map[string]bool
}

type Config struct {
	Token  string
	ChatID int64
	// Events limits delivery to these event types. Empty means paid and
	// cancelled orders only.
	Events []string
}

func NewTelegramNotifier(cfg Config) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return newTelegramNotifier(api, cfg), nil
}

func newTelegramNotifier(bot sender, cfg Config) *TelegramNotifier {
	events := cfg.Events
	if len(events) == 0 {
		events = []string{domain.EventOrderPaid, domain.EventOrderCancelled}
	}

	n := &TelegramNotifier{
		bot:    bot,
		chatID: cfg.ChatID,
		events: make(map[string]bool, len(events)),
	}
	for _, e := range events {
		n.events[e] = true
	}
	return n
}

func (n *TelegramNotifier) Notify(_ context.Context, event domain.OrderEvent) error {
	if !n.events[event.EventType] {
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, FormatEvent(event))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

func FormatEvent(event domain.OrderEvent) string {
	var b strings.Builder

	switch event.EventType {
	case domain.EventOrderPlaced:
		b.WriteString("New order")
	case domain.EventOrderPaid:
		b.WriteString("Order paid")
	case domain.EventOrderCancelled:
		b.WriteString("Payment failed, order cancelled")
	case domain.EventOrderDeleted:
		b.WriteString("Order deleted")
	default:
		b.WriteString(event.EventType)
	}

	fmt.Fprintf(&b, "\nTransaction: %s", event.TransactionID)
	if event.Name != "" || event.Email != "" {
		fmt.Fprintf(&b, "\nCustomer: %s <%s>", event.Name, event.Email)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f %s", event.TotalAmount, event.Currency)

	return b.String()
}
