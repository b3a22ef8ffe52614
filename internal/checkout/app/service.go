package app

import (
	"context"
	"strings"
	"time"

	"github.com/dwikikusuma/soundshop/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartReader interface {
	GetCart(ctx context.Context, sessionID string) ([]CartLine, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type CartLine struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Quantity  int64
}

type Service struct {
	Cart CartReader

	currency string
	now      func() time.Time
	newID    func() string
}

func NewService(cart CartReader, currency string) *Service {
	return &Service{
		Cart:     cart,
		currency: currency,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Quote prices the session cart for the checkout form. An empty cart yields an empty quote.
func (s *Service) Quote(ctx context.Context, sessionID string) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	lines := make([]domain.QuoteLine, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		lineTotal := it.Price.Mul(decimal.NewFromInt(it.Quantity))
		lines = append(lines, domain.QuoteLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: domain.Money{Currency: s.currency, Amount: it.Price},
			LineTotal: domain.Money{Currency: s.currency, Amount: lineTotal},
		})
		total = total.Add(lineTotal)
	}

	return domain.Quote{
		Lines:     lines,
		ItemCount: len(lines),
		Total:     domain.Money{Currency: s.currency, Amount: total},
	}, nil
}

// Checkout finalizes the session cart and clears it, whether or not it held anything.
func (s *Service) Checkout(ctx context.Context, sessionID string, info domain.OrderInfo) (domain.Receipt, error) {
	items, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt := Finalize(items, info, s.currency)
	receipt.OrderID = s.newID()
	receipt.PlacedAt = s.now()

	if err := s.Cart.ClearCart(ctx, sessionID); err != nil {
		return domain.Receipt{}, err
	}
	return receipt, nil
}

// Finalize totals the lines into a receipt. ItemCount is the number of distinct lines.
func Finalize(lines []CartLine, info domain.OrderInfo, currency string) domain.Receipt {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(l.Quantity)))
	}

	payment := info.Payment
	if strings.TrimSpace(payment) == "" {
		payment = domain.PaymentUnspecified
	}

	return domain.Receipt{
		CustomerName:  info.Name,
		Address:       info.Address,
		Phone:         info.Phone,
		PaymentMethod: payment,
		ItemCount:     len(lines),
		Total:         domain.Money{Currency: currency, Amount: total},
	}
}
