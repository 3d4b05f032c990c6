package domain

// Position is an entry of GET /fapi/v2/positionRisk.
type Position struct {
	Symbol           string  `json:"symbol"`
	PositionAmt      float64 `json:"positionAmt,string"`
	EntryPrice       float64 `json:"entryPrice,string"`
	UnRealizedProfit float64 `json:"unRealizedProfit,string"`
	Leverage         int     `json:"leverage,string"`
	MarginType       string  `json:"marginType"`
}

// Balance is an entry of GET /fapi/v2/balance.
type Balance struct {
	Asset            string  `json:"asset"`
	Balance          float64 `json:"balance,string"`
	AvailableBalance float64 `json:"availableBalance,string"`
}
