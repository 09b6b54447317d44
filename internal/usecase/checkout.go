package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/payment"
	"luna-storefront/internal/domain/pricing"
	"luna-storefront/internal/infra"
	"luna-storefront/internal/pkg/clock"
	"luna-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errs.New("cart is empty")
	ErrInvalidCartLine   = errs.New("invalid cart line")
	ErrInvalidVoucher    = errs.New("invalid voucher")
	ErrMissingName       = errs.New("delivery name is required")
	ErrMissingPhone      = errs.New("delivery phone is required")
	ErrMissingAddress    = errs.New("delivery address is required")
	ErrPaymentInProgress = errs.New("a payment is already processing")
	ErrAttemptNotIdle    = errs.New("previous attempt must be dismissed first")
	ErrNoFailedAttempt   = errs.New("no failed attempt to retry")
	ErrNothingToDismiss  = errs.New("no finished attempt to dismiss")
)

// genericPaymentFailure is shown when the upstream fails without a
// user-facing message.
const genericPaymentFailure = "Something went wrong. Please try again."

type CartLineInput struct {
	ProductID string
	Title     string
	UnitPrice money.Money
	Quantity  int
	ImageRef  string
}

type VoucherInput struct {
	Code       string
	Kind       string
	Value      float64
	ValidUntil *time.Time
}

type QuoteInput struct {
	Lines          []CartLineInput
	ShippingMethod string
	Voucher        *VoucherInput
}

type QuoteResult struct {
	Total     pricing.Total
	Shipping  pricing.ShippingOption
	Currency  string
	LineCount int
}

type SubmitInput struct {
	QuoteInput
	PaymentMethod string
	Address       DeliveryAddress
}

// SessionView is the read projection of a user's checkout session, what the
// payment status sheet renders.
type SessionView struct {
	AttemptID uuid.UUID
	State     payment.State
	OrderRef  string
	Failure   string
}

type DismissResult struct {
	Navigate bool
}

type CheckoutCommands interface {
	Quote(in QuoteInput) (QuoteResult, error)
	Submit(ctx context.Context, userID int64, in SubmitInput) (SessionView, error)
	Retry(ctx context.Context, userID int64) (SessionView, error)
	Dismiss(userID int64) (DismissResult, error)
	Session(userID int64) SessionView
}

// checkoutSession is the one live payment session of a user. Its mutex
// serializes submits and retries; a second submit while the first is in
// flight hits the processing guard instead of queueing.
type checkoutSession struct {
	mu      sync.Mutex
	attempt *payment.Attempt
	payload OrderSubmission
}

type checkoutUseCaseImpl struct {
	gateway CheckoutGateway
	clock   clock.Clock

	mu       sync.Mutex
	sessions map[int64]*checkoutSession
}

func NewCheckoutUseCase(gateway CheckoutGateway, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{
		gateway:  gateway,
		clock:    clk,
		sessions: make(map[int64]*checkoutSession),
	}
}

func (c *checkoutUseCaseImpl) session(userID int64) *checkoutSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[userID]
	if !ok {
		s = &checkoutSession{attempt: payment.NewAttempt()}
		c.sessions[userID] = s
	}
	return s
}

func (c *checkoutUseCaseImpl) Quote(in QuoteInput) (QuoteResult, error) {
	lines, voucher, shipping, err := c.priceInputs(in)
	if err != nil {
		return QuoteResult{}, err
	}
	return QuoteResult{
		Total:     pricing.ComputeTotal(lines, shipping, voucher),
		Shipping:  shipping,
		Currency:  money.Currency,
		LineCount: len(lines),
	}, nil
}

func (c *checkoutUseCaseImpl) Submit(ctx context.Context, userID int64, in SubmitInput) (SessionView, error) {
	sub, err := c.buildSubmission(in)
	if err != nil {
		return SessionView{}, err
	}

	s := c.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.attempt.Begin(); err != nil {
		return view(s), markTransition(err)
	}
	s.payload = sub

	c.resolve(ctx, userID, s)
	return view(s), nil
}

func (c *checkoutUseCaseImpl) Retry(ctx context.Context, userID int64) (SessionView, error) {
	s := c.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.attempt.Retry(); err != nil {
		return view(s), markTransition(err)
	}

	c.resolve(ctx, userID, s)
	return view(s), nil
}

func (c *checkoutUseCaseImpl) Dismiss(userID int64) (DismissResult, error) {
	s := c.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	navigate, err := s.attempt.Dismiss()
	if err != nil {
		return DismissResult{}, errs.Mark(err, ErrNothingToDismiss)
	}
	if navigate {
		// the order went through; the next checkout is a fresh session
		s.attempt = payment.NewAttempt()
		s.payload = OrderSubmission{}
	}
	return DismissResult{Navigate: navigate}, nil
}

func (c *checkoutUseCaseImpl) Session(userID int64) SessionView {
	s := c.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(s)
}

// resolve runs the upstream submission and settles the attempt. Upstream
// failure is a session state, not an error: the caller reads it off the view.
func (c *checkoutUseCaseImpl) resolve(ctx context.Context, userID int64, s *checkoutSession) {
	orderRef, err := c.gateway.SubmitOrder(ctx, userID, s.payload)
	if err != nil {
		msg := genericPaymentFailure
		if infra.IsKind(err, infra.KindRejected) {
			if upstream := infra.GatewayMessage(err); upstream != "" {
				msg = upstream
			}
		}
		if failErr := s.attempt.Fail(msg); failErr != nil {
			slog.Error("failed to settle payment attempt", "error", failErr)
		}
		return
	}

	if err := s.attempt.Succeed(orderRef); err != nil {
		slog.Error("failed to settle payment attempt", "error", err)
		return
	}

	// best-effort: a stale remote cart must never undo a placed order
	if err := c.gateway.ClearCart(ctx, userID); err != nil {
		slog.Warn("failed to clear remote cart after checkout", "user_id", userID, "error", err)
	}
}

func (c *checkoutUseCaseImpl) buildSubmission(in SubmitInput) (OrderSubmission, error) {
	lines, voucher, shipping, err := c.priceInputs(in.QuoteInput)
	if err != nil {
		return OrderSubmission{}, err
	}
	if err := validateAddress(in.Address); err != nil {
		return OrderSubmission{}, err
	}

	total := pricing.ComputeTotal(lines, shipping, voucher)

	orderLines := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, OrderLine{
			ProductID: line.ProductID(),
			Title:     line.Title(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	voucherCode := ""
	if voucher != nil {
		voucherCode = voucher.Code()
	}

	return OrderSubmission{
		Lines:          orderLines,
		ShippingMethod: string(shipping.Method()),
		VoucherCode:    voucherCode,
		PaymentMethod:  in.PaymentMethod,
		Address:        in.Address,
		Subtotal:       total.Subtotal,
		Discount:       total.Discount,
		ShippingCost:   total.ShippingCost,
		GrandTotal:     total.GrandTotal,
	}, nil
}

func (c *checkoutUseCaseImpl) priceInputs(in QuoteInput) ([]pricing.CartLine, *pricing.Voucher, pricing.ShippingOption, error) {
	if len(in.Lines) == 0 {
		return nil, nil, pricing.ShippingOption{}, ErrEmptyCart
	}

	lines := make([]pricing.CartLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		line, err := pricing.NewCartLine(l.ProductID, l.Title, l.UnitPrice, l.Quantity, l.ImageRef)
		if err != nil {
			return nil, nil, pricing.ShippingOption{}, errs.Mark(err, ErrInvalidCartLine)
		}
		lines = append(lines, line)
	}

	var voucher *pricing.Voucher
	if in.Voucher != nil {
		v, err := buildVoucher(*in.Voucher)
		if err != nil {
			return nil, nil, pricing.ShippingOption{}, errs.Mark(err, ErrInvalidVoucher)
		}
		if err := v.ValidateUsage(c.clock.Now()); err != nil {
			return nil, nil, pricing.ShippingOption{}, errs.Mark(err, ErrInvalidVoucher)
		}
		voucher = &v
	}

	return lines, voucher, pricing.ShippingByMethod(in.ShippingMethod), nil
}

func buildVoucher(in VoucherInput) (pricing.Voucher, error) {
	if pricing.VoucherKind(in.Kind) == pricing.VoucherFlat {
		return pricing.NewFlatVoucher(in.Code, money.FromFloat(in.Value), in.ValidUntil)
	}
	return pricing.NewPercentVoucher(in.Code, in.Value, in.ValidUntil)
}

func validateAddress(a DeliveryAddress) error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return ErrMissingName
	case strings.TrimSpace(a.Phone) == "":
		return ErrMissingPhone
	case strings.TrimSpace(a.Address) == "":
		return ErrMissingAddress
	default:
		return nil
	}
}

func markTransition(err error) error {
	switch {
	case errors.Is(err, payment.ErrAlreadyProcessing):
		return errs.Mark(err, ErrPaymentInProgress)
	case errors.Is(err, payment.ErrNotIdle):
		return errs.Mark(err, ErrAttemptNotIdle)
	case errors.Is(err, payment.ErrNotFailed):
		return errs.Mark(err, ErrNoFailedAttempt)
	default:
		return err
	}
}

func view(s *checkoutSession) SessionView {
	return SessionView{
		AttemptID: s.attempt.ID(),
		State:     s.attempt.State(),
		OrderRef:  s.attempt.OrderRef(),
		Failure:   s.attempt.Failure(),
	}
}
