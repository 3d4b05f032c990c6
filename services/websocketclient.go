package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Fahad-kn/bot-binance/domain"
	"nhooyr.io/websocket"
)

type websocketCredentials interface {
	GetWebsocketURL() string
}

type websocketClientLogger interface {
	Panicf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}

type WebsocketClient struct {
	connection *websocket.Conn
	context    context.Context
	logger     websocketClientLogger
	requestID  int64
}

// NewWebsocketClient dials the futures stream endpoint and keeps the
// connection alive with periodic pings.
func NewWebsocketClient(ctx context.Context, websocketCredentials websocketCredentials, websocketClientLogger websocketClientLogger) *WebsocketClient {
	var websocketClient = WebsocketClient{logger: websocketClientLogger}
	websocketClient.context = ctx

	var err error

	for {
		websocketClient.connection, _, err = websocket.Dial(websocketClient.context, websocketCredentials.GetWebsocketURL(), nil)
		if err != nil {
			time.Sleep(1 * time.Second)
			websocketClient.logger.Debugf("Attempting to establish a websocket connection...")
			continue
		}
		break
	}
	websocketClient.logger.Debugf("Websocket connection established")

	// Ping every 30 sec
	go func() {
		for {
			select {
			case <-websocketClient.context.Done():
				return
			default:
				time.Sleep(time.Second * 30)
				websocketClient.connection.Ping(websocketClient.context)
			}
		}
	}()

	return &websocketClient
}

func bookTickerStream(symbol string) string {
	return strings.ToLower(symbol) + "@bookTicker"
}

func (websocketClient *WebsocketClient) send(method string, symbols []string) {
	streams := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		streams = append(streams, bookTickerStream(symbol))
	}

	bytes, err := json.Marshal(map[string]interface{}{
		"method": method,
		"params": streams,
		"id":     atomic.AddInt64(&websocketClient.requestID, 1),
	})

	if err != nil {
		websocketClient.logger.Panicf("%v", err)
	}

	websocketClient.connection.Write(websocketClient.context, websocket.MessageText, bytes)
}

func (websocketClient *WebsocketClient) SubscribeToTicker(symbols []string) {
	websocketClient.send("SUBSCRIBE", symbols)
	websocketClient.logger.Printf("Subscribed to %s book ticker", symbols[0])
}

func (websocketClient *WebsocketClient) UnsubscribeFromTicker(symbols []string) {
	websocketClient.send("UNSUBSCRIBE", symbols)
	websocketClient.logger.Printf("Unsubscribed from %s book ticker", symbols[0])
}

func (websocketClient WebsocketClient) GetTickerChannel() <-chan domain.Ticker {
	tickers := make(chan domain.Ticker)

	go func() {
		defer close(tickers)

		for {
			select {
			case <-websocketClient.context.Done():
				return
			default:
				_, bytes, err := websocketClient.connection.Read(websocketClient.context)

				if err != nil {
					return
				}

				var newTicker domain.Ticker
				err = json.Unmarshal(bytes, &newTicker)

				if err != nil {
					continue
				}

				// Subscription acks carry no symbol, real events do
				if _, ok := newTicker["s"]; ok {
					tickers <- newTicker
				}
			}
		}
	}()

	return tickers
}

func (websocketClient *WebsocketClient) CloseConnection() {
	websocketClient.connection.Close(websocket.StatusNormalClosure, "")
}
