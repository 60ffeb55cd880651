package tg

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"ledgerbot/internal/logger"
	"ledgerbot/internal/model/messages"
)

const (
	// sendAttempts Количество попыток отправки сообщения.
	sendAttempts = 3
	// sendRetryBackoff Пауза между попытками отправки.
	sendRetryBackoff = 500 * time.Millisecond
)

type HandlerFunc func(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model)

func (f HandlerFunc) RunFunc(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	f(tgUpdate, c, msgModel)
}

type Client struct {
	client                *tgbotapi.BotAPI
	handlerProcessingFunc HandlerFunc // Функция обработки входящих сообщений.
}

type TokenGetter interface {
	Token() string
}

func New(tokenGetter TokenGetter, handlerProcessingFunc HandlerFunc) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка NewBotAPI")
	}

	return &Client{
		client:                client,
		handlerProcessingFunc: handlerProcessingFunc,
	}, nil
}

// SendMessage Отправка сообщения в чат с ограниченным числом повторов.
// Исчерпание попыток не роняет процесс: ошибка возвращается вызывающему.
func (c *Client) SendMessage(text string, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, text)

	var err error
	for attempt := 0; attempt < sendAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(sendRetryBackoff)
		}
		_, err = c.client.Send(msg)
		if err == nil {
			return nil
		}
		logger.Warn("Ошибка отправки сообщения client.Send", "attempt", attempt+1, "err", err)
	}
	return errors.Wrap(err, "Ошибка отправки сообщения client.Send")
}

func (c *Client) ListenUpdates(msgModel *messages.Model) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for tg messages")

	for update := range updates {
		// Функция обработки сообщений (обернутая в middleware).
		c.handlerProcessingFunc.RunFunc(update, c, msgModel)
	}
}

// ProcessingMessages функция обработки сообщений.
func ProcessingMessages(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	if tgUpdate.Message == nil {
		return
	}
	// Пользователь написал текстовое сообщение.
	logger.Info(fmt.Sprintf("[%s][%v] %s", tgUpdate.Message.From.UserName, tgUpdate.Message.From.ID, tgUpdate.Message.Text))
	err := msgModel.IncomingMessage(messages.Message{
		Text:     tgUpdate.Message.Text,
		UserID:   tgUpdate.Message.From.ID,
		UserName: tgUpdate.Message.From.UserName,
		ChatID:   tgUpdate.Message.Chat.ID,
		ChatType: tgUpdate.Message.Chat.Type,
	})
	if err != nil {
		logger.Error("error processing message:", "err", err)
	}
}
