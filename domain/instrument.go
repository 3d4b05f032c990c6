package domain

// InstrumentConfig describes the single instrument the bot trades:
// enter with a market buy once the ask reaches EntryPrice, close the
// position after the bid recovers by TakeProfit (a fraction, 0.001 = 0.1%).
type InstrumentConfig struct {
	Symbol     string  `json:"symbol" gorm:"primaryKey"`
	EntryPrice float64 `json:"entry_price"`
	Quantity   float64 `json:"quantity"`
	TakeProfit float64 `json:"take_profit"`
}
