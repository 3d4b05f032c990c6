package services

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Fahad-kn/bot-binance/domain"
)

type usersService interface {
	CheckAddUser(user *domain.User)
	GetUsers() []domain.User
}

type telegramBotCredentials interface {
	GetTelegramBotAPIToken() string
}

type telegramBotLogger interface {
	Panic(args ...interface{})
	Errorf(format string, args ...interface{})
}

type TelegramBot struct {
	bot          *tgbotapi.BotAPI
	usersService usersService
	logger       telegramBotLogger
}

// NewTelegramBot starts the update loop, /start subscribes a chat to
// order notifications.
func NewTelegramBot(usersService usersService, telegramBotCredentials telegramBotCredentials, telegramBotLogger telegramBotLogger) *TelegramBot {
	telegramBot := TelegramBot{usersService: usersService, logger: telegramBotLogger}

	var err error

	telegramBot.bot, err = tgbotapi.NewBotAPI(telegramBotCredentials.GetTelegramBotAPIToken())
	if err != nil {
		telegramBot.logger.Panic(err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 10

	updates := telegramBot.bot.GetUpdatesChan(u)

	go func() {
		for update := range updates {
			if update.Message == nil {
				continue
			}

			if update.Message.Text == "/start" {
				telegramBot.usersService.CheckAddUser(&domain.User{ChatID: update.Message.Chat.ID})
				msg := tgbotapi.NewMessage(update.Message.Chat.ID, "You are subscribed to order notifications 👍")
				telegramBot.bot.Send(msg)
			}
		}
	}()

	return &telegramBot
}

func (telegramBot *TelegramBot) SendOrderInfo(chatID int64, orderInfo *domain.OrderInfo) {
	textSide := "Bought ➕"
	if orderInfo.Side == domain.OrderSideSell {
		textSide = "Sold ➖"
	}

	price := orderInfo.AvgPrice
	if price == 0 {
		price = orderInfo.Price
	}

	t := time.UnixMilli(orderInfo.UpdateTime).UTC()

	text := fmt.Sprintf("%s %s %s at %s 💵\n%s ⏱",
		textSide,
		strconv.FormatFloat(orderInfo.Quantity, 'f', -1, 64),
		orderInfo.Symbol,
		strconv.FormatFloat(price, 'f', -1, 64),
		t.Format(time.RFC1123))

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := telegramBot.bot.Send(msg); err != nil {
		telegramBot.logger.Errorf("Failed to notify chat %d: %v", chatID, err)
	}
}
