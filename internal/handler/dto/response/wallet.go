package response

import (
	"log/slog"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/usecase"

	"github.com/jinzhu/copier"
)

type WalletTransactionResponse struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Points int64  `json:"points"`
	Note   string `json:"note,omitempty"`
	At     string `json:"at"`
}

type GiftCardPurchaseResponse struct {
	OrderNo string      `json:"order_no"`
	Title   string      `json:"title"`
	Amount  money.Money `json:"amount"`
	At      string      `json:"at"`
	Status  string      `json:"status"`
}

type WalletResponse struct {
	Points       int64                       `json:"points"`
	Provisional  bool                        `json:"provisional"`
	ValueBHD     money.Money                 `json:"value_bhd"`
	Ratio        float64                     `json:"points_to_bhd_ratio"`
	Transactions []WalletTransactionResponse `json:"transactions"`
	Purchases    []GiftCardPurchaseResponse  `json:"purchases"`
}

func FromOverview(o usecase.WalletOverview) WalletResponse {
	resp := WalletResponse{
		Points:       o.Points,
		Provisional:  o.Provisional,
		ValueBHD:     o.ValueBHD,
		Ratio:        o.Ratio,
		Transactions: []WalletTransactionResponse{},
		Purchases:    []GiftCardPurchaseResponse{},
	}
	if err := copier.Copy(&resp.Transactions, o.Transactions); err != nil {
		slog.Error("failed to map wallet transactions", "error", err)
	}
	if err := copier.Copy(&resp.Purchases, o.Purchases); err != nil {
		slog.Error("failed to map gift card purchases", "error", err)
	}
	return resp
}

// SendGiftResponse carries the minted gift code the sender shares with the
// recipient, alongside the refreshed wallet.
type SendGiftResponse struct {
	Code   string         `json:"code"`
	Wallet WalletResponse `json:"wallet"`
}

func FromGift(code string, overview usecase.WalletOverview) SendGiftResponse {
	return SendGiftResponse{
		Code:   code,
		Wallet: FromOverview(overview),
	}
}

type RedeemResponse struct {
	PointsAdded int64          `json:"points_added"`
	ValueBHD    money.Money    `json:"value_bhd,omitempty"`
	Message     string         `json:"message,omitempty"`
	Wallet      WalletResponse `json:"wallet"`
}

func FromRedeem(outcome usecase.RedeemOutcome, overview usecase.WalletOverview) RedeemResponse {
	return RedeemResponse{
		PointsAdded: outcome.PointsAdded,
		ValueBHD:    outcome.ValueBHD,
		Message:     outcome.Message,
		Wallet:      FromOverview(overview),
	}
}
