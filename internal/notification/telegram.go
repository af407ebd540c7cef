package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts operator alerts to a single admin chat. Guest
// contact details are never included.
type TelegramNotifier struct {
	bot     sender
	chatID  int64
	metrics *metrics.Metrics
	logger  logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, m *metrics.Metrics, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		log.Warn("telegram bot token or admin chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, metrics: m, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, metrics: m, logger: log}, nil
}

func (n *TelegramNotifier) NotifyHoldCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New hold*\n\n"+"Room: %s\n"+"Stay: %s → %s (%d nights, %d guests)\n"+"Amount due: %d KRW",
		b.RoomID, b.CheckIn.Format(domain.DateLayout), b.CheckOut.Format(domain.DateLayout),
		b.Nights, b.Guests, b.TotalAmount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n"+"Room: %s\n"+"Stay: %s → %s\n"+"Paid: %d KRW\n"+"Booking: `%s`",
		b.RoomID, b.CheckIn.Format(domain.DateLayout), b.CheckOut.Format(domain.DateLayout),
		b.TotalAmount, b.ID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Hold expired (not paid in time)*\n\n"+"Room: %s\n"+"Stay: %s → %s",
		b.RoomID, b.CheckIn.Format(domain.DateLayout), b.CheckOut.Format(domain.DateLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyAmountMismatch(ctx context.Context, b *domain.Booking, paid int64) {
	text := fmt.Sprintf(
		"*Payment amount mismatch, booking cancelled*\n\n"+"Booking: `%s`\n"+"Expected: %d KRW\n"+"Provider reported: %d KRW\n"+"Check the payment for a refund.",
		b.ID, b.TotalAmount, paid,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReconcileAnomaly(ctx context.Context, b *domain.Booking, cause string) {
	text := fmt.Sprintf(
		"*Reconciliation anomaly*\n\n"+"Booking `%s` is confirmed but its payment record was not saved.\n"+"Cause: `%s`",
		b.ID, cause,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPaidAfterCancel(ctx context.Context, b *domain.Booking, paymentID string, paid int64) {
	text := fmt.Sprintf(
		"*Payment received for a cancelled booking*\n\n"+"Booking: `%s`, cancelled `%s`\n"+"Payment: `%s`\n"+"Paid: %d KRW\n"+"The room was released. Refund or rebook manually.",
		b.ID, b.CancelReason, paymentID, paid,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.metrics.NotificationFailures.WithLabelValues("telegram").Inc()
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
