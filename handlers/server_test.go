package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fahad-kn/bot-binance/domain"
	"github.com/Fahad-kn/bot-binance/handlers"
	"github.com/stretchr/testify/assert"
)

type instrumentServiceTest struct {
	instrument domain.InstrumentConfig
	saved      bool
}

func (instrumentServiceTest *instrumentServiceTest) SaveInstrument(newInstrument domain.InstrumentConfig) {
	instrumentServiceTest.instrument = newInstrument
	instrumentServiceTest.saved = true
}

func (instrumentServiceTest *instrumentServiceTest) GetInstrument() (domain.InstrumentConfig, bool) {
	return instrumentServiceTest.instrument, instrumentServiceTest.instrument.Symbol != ""
}

type orderInfosServiceTest struct {
	orderInfos []domain.OrderInfo
}

func (orderInfosServiceTest *orderInfosServiceTest) GetOrderInfos() []domain.OrderInfo {
	return orderInfosServiceTest.orderInfos
}

type websocketClientServiceTest struct {
	subscribed   []string
	unsubscribed []string
}

func (websocketClientServiceTest *websocketClientServiceTest) SubscribeToTicker(symbols []string) {
	websocketClientServiceTest.subscribed = append(websocketClientServiceTest.subscribed, symbols...)
}

func (websocketClientServiceTest *websocketClientServiceTest) UnsubscribeFromTicker(symbols []string) {
	websocketClientServiceTest.unsubscribed = append(websocketClientServiceTest.unsubscribed, symbols...)
}

type serverLoggerTest struct{}

func (serverLoggerTest *serverLoggerTest) Panic(args ...interface{}) {}

func newTestServer(instrumentService *instrumentServiceTest, orderInfosService *orderInfosServiceTest, websocketClient *websocketClientServiceTest) *httptest.Server {
	server := handlers.NewServer(instrumentService, orderInfosService, websocketClient, &serverLoggerTest{})
	return httptest.NewServer(server.Routes())
}

func TestInstrumentUpdate(t *testing.T) {
	instrumentService := &instrumentServiceTest{instrument: domain.InstrumentConfig{Symbol: "ETHUSDT"}}
	websocketClient := &websocketClientServiceTest{}

	testServer := newTestServer(instrumentService, &orderInfosServiceTest{}, websocketClient)
	defer testServer.Close()

	postBody, _ := json.Marshal(domain.InstrumentConfig{Symbol: "BTCUSDT", EntryPrice: 30000, Quantity: 0.001, TakeProfit: 0.001})

	newRequest, _ := http.NewRequest("PUT", testServer.URL+"/instrument", bytes.NewBuffer(postBody))

	resp, err := http.DefaultClient.Do(newRequest)
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, instrumentService.saved)
	assert.Equal(t, "BTCUSDT", instrumentService.instrument.Symbol)
	assert.Equal(t, []string{"ETHUSDT"}, websocketClient.unsubscribed)
	assert.Equal(t, []string{"BTCUSDT"}, websocketClient.subscribed)
}

func TestInstrumentUpdateRejectsEmptySymbol(t *testing.T) {
	instrumentService := &instrumentServiceTest{}

	testServer := newTestServer(instrumentService, &orderInfosServiceTest{}, &websocketClientServiceTest{})
	defer testServer.Close()

	newRequest, _ := http.NewRequest("PUT", testServer.URL+"/instrument", bytes.NewBufferString(`{"entry_price":30000}`))

	resp, err := http.DefaultClient.Do(newRequest)
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, instrumentService.saved)
}

func TestInstrumentGet(t *testing.T) {
	instrumentService := &instrumentServiceTest{instrument: domain.InstrumentConfig{Symbol: "BTCUSDT", EntryPrice: 30000}}

	testServer := newTestServer(instrumentService, &orderInfosServiceTest{}, &websocketClientServiceTest{})
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/instrument")
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var instrument domain.InstrumentConfig
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&instrument))
	assert.Equal(t, instrumentService.instrument, instrument)
}

func TestOrdersList(t *testing.T) {
	orderInfosService := &orderInfosServiceTest{orderInfos: []domain.OrderInfo{
		{OrderID: 10, Symbol: "BTCUSDT", Side: domain.OrderSideBuy},
		{OrderID: 11, Symbol: "BTCUSDT", Side: domain.OrderSideSell},
	}}

	testServer := newTestServer(&instrumentServiceTest{}, orderInfosService, &websocketClientServiceTest{})
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/orders")
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var orderInfos []domain.OrderInfo
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&orderInfos))
	assert.Equal(t, orderInfosService.orderInfos, orderInfos)
}
