package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/Fahad-kn/bot-binance/domain"
	"github.com/stretchr/testify/assert"
)

func TestTickerParsesBookTickerEvent(t *testing.T) {
	raw := `{"e":"bookTicker","u":400900217,"s":"BTCUSDT","b":"29999.50","B":"31.21","a":"30000.10","A":"40.66"}`

	var ticker domain.Ticker
	err := json.Unmarshal([]byte(raw), &ticker)

	assert.Nil(t, err)
	assert.Equal(t, "BTCUSDT", ticker.GetSymbol())
	assert.Equal(t, 29999.50, ticker.GetBid())
	assert.Equal(t, 30000.10, ticker.GetAsk())
}
