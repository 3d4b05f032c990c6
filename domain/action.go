package domain

type Action string

const (
	ActionNothing = Action("nothing")
	ActionBuy     = Action("buy")
	ActionSell    = Action("sell")
)
