package domain

type OrderSide string

const (
	OrderSideBuy  = OrderSide("BUY")
	OrderSideSell = OrderSide("SELL")
)

func (side OrderSide) Opposite() OrderSide {
	if side == OrderSideBuy {
		return OrderSideSell
	}
	return OrderSideBuy
}

type OrderType string

const (
	OrderTypeMarket = OrderType("MARKET")
	OrderTypeLimit  = OrderType("LIMIT")
)

// OrderInfo mirrors the order object returned by POST /fapi/v1/order.
// Decimal fields arrive as quoted numbers, hence the ",string" tags.
type OrderInfo struct {
	OrderID       int64     `json:"orderId" gorm:"primaryKey"`
	ClientOrderID string    `json:"clientOrderId"`
	Symbol        string    `json:"symbol"`
	Side          OrderSide `json:"side"`
	Type          OrderType `json:"type"`
	Status        string    `json:"status"`
	Price         float64   `json:"price,string"`
	AvgPrice      float64   `json:"avgPrice,string"`
	Quantity      float64   `json:"origQty,string"`
	ExecutedQty   float64   `json:"executedQty,string"`
	ReduceOnly    bool      `json:"reduceOnly"`
	UpdateTime    int64     `json:"updateTime"`
}
