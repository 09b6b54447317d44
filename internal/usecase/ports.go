package usecase

import (
	"context"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/wallet"
)

// Gateway ports to the upstream commerce backend. Implementations live in
// internal/infra/commerce; the snapshot types below keep the usecases off
// the wire format.

type OrderLine struct {
	ProductID string
	Title     string
	UnitPrice money.Money
	Quantity  int
}

type DeliveryAddress struct {
	Name    string
	Phone   string
	Address string
	City    string
	Zip     string
	Country string
}

// OrderSubmission is the full payload of one checkout attempt. A retry
// re-sends the identical submission.
type OrderSubmission struct {
	Lines          []OrderLine
	ShippingMethod string
	VoucherCode    string
	PaymentMethod  string
	Address        DeliveryAddress
	Subtotal       money.Money
	Discount       money.Money
	ShippingCost   money.Money
	GrandTotal     money.Money
}

type CheckoutGateway interface {
	// SubmitOrder places the order upstream and returns its order reference.
	SubmitOrder(ctx context.Context, userID int64, sub OrderSubmission) (string, error)
	ClearCart(ctx context.Context, userID int64) error
}

type WalletInfo struct {
	Points           int64
	PointsToBHDRatio float64
}

type WalletTransaction struct {
	ID     int64
	Type   string
	Points int64
	Note   string
	At     string
}

type GiftCardPurchase struct {
	OrderNo string
	Title   string
	Amount  money.Money
	At      string
	Status  string
}

// RedeemOutcome is what the upstream reports after crediting a code. Points
// and value are always server-computed.
type RedeemOutcome struct {
	PointsAdded int64
	ValueBHD    money.Money
	Message     string
}

type WalletGateway interface {
	Info(ctx context.Context, userID int64) (WalletInfo, error)
	Transactions(ctx context.Context, userID int64) ([]WalletTransaction, error)
	Purchases(ctx context.Context, userID int64) ([]GiftCardPurchase, error)
	// SendGift locks points into a gift and returns the minted reward code
	// the sender shares with the recipient.
	SendGift(ctx context.Context, userID int64, recipient wallet.Recipient, points int64, note string) (string, error)
	RedeemRewardCode(ctx context.Context, userID int64, code wallet.RewardCode) (RedeemOutcome, error)
	RedeemGiftCard(ctx context.Context, userID int64, code wallet.GiftCardCode) (RedeemOutcome, error)
}

type OrderGateway interface {
	// OrderDetails returns the raw, schema-versioned order payload; callers
	// normalize it before anything else sees it.
	OrderDetails(ctx context.Context, userID int64, number string) (map[string]any, error)
}
