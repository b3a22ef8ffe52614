package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const PaymentUnspecified = "unspecified"

type Money struct {
	Currency string
	Amount   decimal.Decimal
}

type QuoteLine struct {
	ProductID int
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines     []QuoteLine
	ItemCount int
	Total     Money
}

// OrderInfo is taken as submitted; blank fields pass through unchanged.
type OrderInfo struct {
	Name    string
	Address string
	Phone   string
	Payment string
}

type Receipt struct {
	OrderID       string
	CustomerName  string
	Address       string
	Phone         string
	PaymentMethod string
	ItemCount     int
	Total         Money
	PlacedAt      time.Time
}
