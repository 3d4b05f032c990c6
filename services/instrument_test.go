package services_test

import (
	"testing"

	"github.com/Fahad-kn/bot-binance/domain"
	"github.com/Fahad-kn/bot-binance/services"
	"github.com/stretchr/testify/assert"
)

type instrumentStorageTest struct {
	instrument domain.InstrumentConfig
}

func (instrumentStorageTest *instrumentStorageTest) SaveInstrument(newInstrument domain.InstrumentConfig) {
	instrumentStorageTest.instrument = newInstrument
}

func (instrumentStorageTest *instrumentStorageTest) GetInstrument() (domain.InstrumentConfig, bool) {
	return instrumentStorageTest.instrument, true
}

func TestInstrumentService(t *testing.T) {
	instrumentService := services.NewInstrumentService(&instrumentStorageTest{})

	testInstrument := domain.InstrumentConfig{Symbol: "BTCUSDT", EntryPrice: 30000, Quantity: 0.001, TakeProfit: 0.001}
	instrumentService.SaveInstrument(testInstrument)

	instrument, ok := instrumentService.GetInstrument()

	assert.Equal(t, true, ok)
	assert.Equal(t, testInstrument, instrument)
}
