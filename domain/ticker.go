package domain

import "strconv"

// Ticker is a raw bookTicker event from the futures stream.
// Prices come as quoted decimals.
type Ticker map[string]interface{}

func (ticker *Ticker) GetSymbol() string {
	return (*ticker)["s"].(string)
}

func (ticker *Ticker) GetBid() float64 {
	bid, _ := strconv.ParseFloat((*ticker)["b"].(string), 64)
	return bid
}

func (ticker *Ticker) GetAsk() float64 {
	ask, _ := strconv.ParseFloat((*ticker)["a"].(string), 64)
	return ask
}
