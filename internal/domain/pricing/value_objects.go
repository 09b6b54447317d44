package pricing

import (
	"errors"
	"strings"
	"time"

	"luna-storefront/internal/domain/money"
)

var (
	ErrEmptyProductID    = errors.New("cart line product id is empty")
	ErrNegativeUnitPrice = errors.New("cart line unit price cannot be negative")
	ErrInvalidQuantity   = errors.New("cart line quantity must be positive")
	ErrEmptyVoucherCode  = errors.New("voucher code is empty")
	ErrInvalidPercent    = errors.New("percent voucher value must be between 0 and 100")
	ErrNegativeFlatValue = errors.New("flat voucher value cannot be negative")
	ErrVoucherExpired    = errors.New("voucher has expired")
)

// CartLine is one immutable line of the cart snapshot a checkout runs over.
type CartLine struct {
	productID string
	title     string
	unitPrice money.Money
	quantity  int
	imageRef  string
}

func NewCartLine(productID, title string, unitPrice money.Money, quantity int, imageRef string) (CartLine, error) {
	if strings.TrimSpace(productID) == "" {
		return CartLine{}, ErrEmptyProductID
	}
	if unitPrice.IsNegative() {
		return CartLine{}, ErrNegativeUnitPrice
	}
	if quantity <= 0 {
		return CartLine{}, ErrInvalidQuantity
	}
	return CartLine{
		productID: productID,
		title:     title,
		unitPrice: unitPrice,
		quantity:  quantity,
		imageRef:  imageRef,
	}, nil
}

func (l CartLine) ProductID() string      { return l.productID }
func (l CartLine) Title() string          { return l.title }
func (l CartLine) UnitPrice() money.Money { return l.unitPrice }
func (l CartLine) Quantity() int          { return l.quantity }
func (l CartLine) ImageRef() string       { return l.imageRef }

func (l CartLine) LineTotal() money.Money {
	return l.unitPrice.MulInt(l.quantity)
}

type VoucherKind string

const (
	VoucherPercent VoucherKind = "percent"
	VoucherFlat    VoucherKind = "flat"
)

// Voucher is a single-select discount applied at checkout. A percent voucher
// carries a 0-100 percentage, a flat voucher a money amount.
type Voucher struct {
	code       string
	kind       VoucherKind
	percent    float64
	flatAmount money.Money
	validUntil *time.Time
}

func NewPercentVoucher(code string, percent float64, validUntil *time.Time) (Voucher, error) {
	if strings.TrimSpace(code) == "" {
		return Voucher{}, ErrEmptyVoucherCode
	}
	if percent < 0 || percent > 100 {
		return Voucher{}, ErrInvalidPercent
	}
	return Voucher{code: code, kind: VoucherPercent, percent: percent, validUntil: validUntil}, nil
}

func NewFlatVoucher(code string, amount money.Money, validUntil *time.Time) (Voucher, error) {
	if strings.TrimSpace(code) == "" {
		return Voucher{}, ErrEmptyVoucherCode
	}
	if amount.IsNegative() {
		return Voucher{}, ErrNegativeFlatValue
	}
	return Voucher{code: code, kind: VoucherFlat, flatAmount: amount, validUntil: validUntil}, nil
}

func (v Voucher) Code() string      { return v.code }
func (v Voucher) Kind() VoucherKind { return v.kind }
func (v Voucher) Percent() float64  { return v.percent }

func (v Voucher) FlatAmount() money.Money { return v.flatAmount }

func (v Voucher) ValidateUsage(now time.Time) error {
	if v.validUntil != nil && now.After(*v.validUntil) {
		return ErrVoucherExpired
	}
	return nil
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// ShippingOption is one of the two delivery choices. Exactly one is selected
// per checkout; Standard with zero cost is the default.
type ShippingOption struct {
	method  ShippingMethod
	cost    money.Money
	etaMin  int
	etaMax  int
}

func StandardShipping() ShippingOption {
	return ShippingOption{method: ShippingStandard, cost: 0, etaMin: 5, etaMax: 7}
}

func ExpressShipping() ShippingOption {
	return ShippingOption{method: ShippingExpress, cost: money.FromFils(12000), etaMin: 1, etaMax: 2}
}

// ShippingByMethod resolves a wire method name, defaulting to Standard for
// anything unrecognized.
func ShippingByMethod(method string) ShippingOption {
	if ShippingMethod(strings.ToLower(strings.TrimSpace(method))) == ShippingExpress {
		return ExpressShipping()
	}
	return StandardShipping()
}

func (s ShippingOption) Method() ShippingMethod { return s.method }
func (s ShippingOption) Cost() money.Money      { return s.cost }
func (s ShippingOption) ETADaysMin() int        { return s.etaMin }
func (s ShippingOption) ETADaysMax() int        { return s.etaMax }
