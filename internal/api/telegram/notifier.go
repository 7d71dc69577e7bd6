package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/domain/port"
)

// Максимальная длина подписи к документу в Telegram
const maxCaptionLength = 1024

// sender часть tgbotapi.BotAPI, которая нужна уведомителю
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет результат замера в чат Telegram
type Notifier struct {
	api    sender
	chatID int64
	log    zerolog.Logger
}

// NewNotifier авторизуется в Telegram и создаёт уведомитель
func NewNotifier(token string, chatID int64, log zerolog.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("account", api.Self.UserName).Msg("telegram authorized")

	return newNotifier(api, chatID, log), nil
}

func newNotifier(api sender, chatID int64, log zerolog.Logger) *Notifier {
	return &Notifier{api: api, chatID: chatID, log: log}
}

// Notify отправляет выходное изображение с подписью.
// Если документ отправить не удалось, отправляется только текст.
func (n *Notifier) Notify(ctx context.Context, report *entity.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	caption := Caption(report)

	doc := tgbotapi.NewDocument(n.chatID, tgbotapi.FilePath(report.OutputPath))
	doc.Caption = caption
	_, err := n.api.Send(doc)
	if err == nil {
		return nil
	}
	n.log.Warn().Err(err).Msg("send document failed, falling back to text")

	if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, caption)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Caption собирает текст с итогами запуска
func Caption(report *entity.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s filter\n", report.Backend.Title)
	fmt.Fprintf(&b, "Parameters: %s\n", report.Parameters)
	fmt.Fprintf(&b, "Image: %dx%d, %s\n", report.ImageWidth, report.ImageHeight, humanize.Bytes(uint64(max(report.OutputBytes, 0))))
	fmt.Fprintf(&b, "Threads: %d\n", report.Threads)
	fmt.Fprintf(&b, "Time elapsed: %s", entity.FormatElapsed(report.Elapsed))
	if report.Summary.Count > 1 {
		fmt.Fprintf(&b, "\nMean elapsed: %s (±%s, n=%d)",
			entity.FormatElapsed(report.Summary.Mean),
			entity.FormatElapsed(report.Summary.StdDev),
			report.Summary.Count)
	}

	text := b.String()
	if len(text) > maxCaptionLength {
		text = text[:maxCaptionLength]
	}
	return text
}

// Проверка реализации интерфейса
var _ port.Notifier = (*Notifier)(nil)
