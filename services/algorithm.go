package services

import (
	"github.com/Fahad-kn/bot-binance/domain"
)

type algorithmInstrumentService interface {
	GetInstrument() (domain.InstrumentConfig, bool)
}

type tickerSource interface {
	GetTickerChannel() <-chan domain.Ticker
}

// Algorithm turns the book ticker stream into trade actions: buy once
// the ask drops to the configured entry price, sell once the bid
// recovers past the recorded entry by the take-profit fraction.
type Algorithm struct {
	holding       bool
	entryPrice    float64
	lastSymbol    string
	actionChannel <-chan domain.Action
}

func NewAlgorithm(tickerSource tickerSource, instrumentService algorithmInstrumentService) *Algorithm {
	algorithm := Algorithm{}
	actionChannel := make(chan domain.Action)

	go func() {
		defer close(actionChannel)
		for ticker := range tickerSource.GetTickerChannel() {
			action := domain.ActionNothing

			tickerSymbol := ticker.GetSymbol()
			if algorithm.lastSymbol != tickerSymbol {
				algorithm.lastSymbol = tickerSymbol
				algorithm.holding = false
				algorithm.entryPrice = 0.0
				actionChannel <- action
				continue
			}

			instrument, ok := instrumentService.GetInstrument()
			if !ok || instrument.Symbol != tickerSymbol {
				actionChannel <- action
				continue
			}

			ask := ticker.GetAsk()
			bid := ticker.GetBid()

			if !algorithm.holding {
				if instrument.EntryPrice > 0 && ask <= instrument.EntryPrice {
					algorithm.holding = true
					algorithm.entryPrice = ask
					action = domain.ActionBuy
				}
			} else if bid >= algorithm.entryPrice*(1+instrument.TakeProfit) {
				algorithm.holding = false
				action = domain.ActionSell
			}

			actionChannel <- action
		}
	}()

	algorithm.actionChannel = actionChannel
	return &algorithm
}

func (algorithm *Algorithm) GetActionChannel() <-chan domain.Action {
	return algorithm.actionChannel
}
