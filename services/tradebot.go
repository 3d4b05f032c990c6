package services

import (
	"math"

	"github.com/Fahad-kn/bot-binance/domain"
	"github.com/Fahad-kn/bot-binance/metrics"
)

type algorithmService interface {
	GetActionChannel() <-chan domain.Action
}

type instrumentService interface {
	GetInstrument() (domain.InstrumentConfig, bool)
}

type httpClientService interface {
	PlaceMarketOrder(symbol string, side domain.OrderSide, quantity float64, reduceOnly bool) (*domain.OrderInfo, error)
	PositionRisk(symbol string) ([]domain.Position, error)
}

type orderInfosService interface {
	NewOrderInfo(orderInfo *domain.OrderInfo)
}

type telegramBotService interface {
	SendOrderInfo(chatID int64, orderInfo *domain.OrderInfo)
}

type tradeBotUsersService interface {
	GetUsers() []domain.User
}

type tradeBotLogger interface {
	Printf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type TradeBot struct {
	httpClient httpClientService
	logger     tradeBotLogger
}

// NewTradeBot consumes the action channel, executes the matching
// market orders, persists every accepted order and pushes it to all
// subscribed Telegram chats. Order failures are logged and counted,
// never fatal.
func NewTradeBot(algorithmService algorithmService, instrumentService instrumentService, httpClientService httpClientService, orderInfosService orderInfosService, usersService tradeBotUsersService, telegramBot telegramBotService, tradeBotLogger tradeBotLogger) *TradeBot {
	tradeBot := TradeBot{httpClient: httpClientService, logger: tradeBotLogger}

	go func() {
		for action := range algorithmService.GetActionChannel() {
			if action != domain.ActionBuy && action != domain.ActionSell {
				continue
			}

			instrument, ok := instrumentService.GetInstrument()
			if !ok {
				continue
			}

			var orderInfo *domain.OrderInfo
			var err error
			if action == domain.ActionBuy {
				orderInfo, err = httpClientService.PlaceMarketOrder(instrument.Symbol, domain.OrderSideBuy, instrument.Quantity, false)
			} else {
				orderInfo, err = tradeBot.closePosition(instrument.Symbol)
			}

			if err != nil {
				metrics.OrderFailures.Inc()
				tradeBotLogger.Errorf("Failed to send %s order for %s: %v", action, instrument.Symbol, err)
				continue
			}
			if orderInfo == nil {
				// Nothing to close
				continue
			}

			metrics.OrdersPlaced.WithLabelValues(orderInfo.Symbol, string(orderInfo.Side)).Inc()
			tradeBotLogger.Printf("Successfully sent %s %s order (id %d)", orderInfo.Side, orderInfo.Symbol, orderInfo.OrderID)

			orderInfosService.NewOrderInfo(orderInfo)

			for _, user := range usersService.GetUsers() {
				telegramBot.SendOrderInfo(user.ChatID, orderInfo)
			}
		}
	}()

	return &tradeBot
}

// closePosition flattens the open position with an opposite reduce-only
// market order sized from positionAmt. Returns nil when already flat.
func (tradeBot *TradeBot) closePosition(symbol string) (*domain.OrderInfo, error) {
	positions, err := tradeBot.httpClient.PositionRisk(symbol)
	if err != nil {
		return nil, err
	}

	for _, position := range positions {
		if position.Symbol != symbol || position.PositionAmt == 0 {
			continue
		}

		side := domain.OrderSideSell
		if position.PositionAmt < 0 {
			side = domain.OrderSideBuy
		}

		return tradeBot.httpClient.PlaceMarketOrder(symbol, side, math.Abs(position.PositionAmt), true)
	}

	tradeBot.logger.Printf("No open %s position to close", symbol)
	return nil, nil
}
