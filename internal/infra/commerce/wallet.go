package commerce

import (
	"context"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/wallet"
	"luna-storefront/internal/usecase"
)

type WalletGateway struct {
	client *Client
}

func NewWalletGateway(client *Client) *WalletGateway {
	return &WalletGateway{client: client}
}

var _ usecase.WalletGateway = (*WalletGateway)(nil)

type walletInfoResponse struct {
	Points           int64   `json:"points"`
	PointsToBHDRatio float64 `json:"points_to_bhd_ratio"`
}

func (g *WalletGateway) Info(ctx context.Context, userID int64) (usecase.WalletInfo, error) {
	var resp walletInfoResponse
	if err := g.client.get(ctx, userID, "/wallet/info", &resp); err != nil {
		return usecase.WalletInfo{}, err
	}
	return usecase.WalletInfo{
		Points:           resp.Points,
		PointsToBHDRatio: resp.PointsToBHDRatio,
	}, nil
}

type walletTransactionResponse struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Points int64  `json:"points"`
	Note   string `json:"note"`
	At     string `json:"created_at"`
}

func (g *WalletGateway) Transactions(ctx context.Context, userID int64) ([]usecase.WalletTransaction, error) {
	var resp []walletTransactionResponse
	if err := g.client.get(ctx, userID, "/wallet/transactions", &resp); err != nil {
		return nil, err
	}
	transactions := make([]usecase.WalletTransaction, 0, len(resp))
	for _, t := range resp {
		transactions = append(transactions, usecase.WalletTransaction{
			ID:     t.ID,
			Type:   t.Type,
			Points: t.Points,
			Note:   t.Note,
			At:     t.At,
		})
	}
	return transactions, nil
}

type giftCardPurchaseResponse struct {
	OrderNo string      `json:"orderNo"`
	Title   string      `json:"title"`
	Amount  money.Money `json:"amount"`
	At      string      `json:"at"`
	Status  string      `json:"status"`
}

func (g *WalletGateway) Purchases(ctx context.Context, userID int64) ([]usecase.GiftCardPurchase, error) {
	var resp []giftCardPurchaseResponse
	if err := g.client.get(ctx, userID, "/giftcards/purchases", &resp); err != nil {
		return nil, err
	}
	purchases := make([]usecase.GiftCardPurchase, 0, len(resp))
	for _, p := range resp {
		purchases = append(purchases, usecase.GiftCardPurchase{
			OrderNo: p.OrderNo,
			Title:   p.Title,
			Amount:  p.Amount,
			At:      p.At,
			Status:  p.Status,
		})
	}
	return purchases, nil
}

// sendGiftPayload addresses the recipient under to_email or to_phone; the
// upstream decides the delivery channel from which key is present.
type sendGiftPayload struct {
	ToEmail string `json:"to_email,omitempty"`
	ToPhone string `json:"to_phone,omitempty"`
	Points  int64  `json:"points"`
	Note    string `json:"note,omitempty"`
}

type sendGiftResponse struct {
	Code string `json:"code"`
}

func (g *WalletGateway) SendGift(ctx context.Context, userID int64, recipient wallet.Recipient, points int64, note string) (string, error) {
	payload := sendGiftPayload{Points: points, Note: note}
	switch recipient.Channel() {
	case wallet.ChannelPhone:
		payload.ToPhone = recipient.Value()
	default:
		payload.ToEmail = recipient.Value()
	}

	var resp sendGiftResponse
	if err := g.client.post(ctx, userID, "/wallet/send-gift", payload, &resp); err != nil {
		return "", err
	}
	return resp.Code, nil
}

type redeemResponse struct {
	PointsAdded int64       `json:"points_added"`
	ValueBHD    money.Money `json:"value_bhd"`
	Message     string      `json:"message"`
}

func (g *WalletGateway) RedeemRewardCode(ctx context.Context, userID int64, code wallet.RewardCode) (usecase.RedeemOutcome, error) {
	return g.redeem(ctx, userID, "/wallet/redeem-code", code.String())
}

func (g *WalletGateway) RedeemGiftCard(ctx context.Context, userID int64, code wallet.GiftCardCode) (usecase.RedeemOutcome, error) {
	return g.redeem(ctx, userID, "/giftcards/redeem", code.String())
}

func (g *WalletGateway) redeem(ctx context.Context, userID int64, path, code string) (usecase.RedeemOutcome, error) {
	var resp redeemResponse
	if err := g.client.post(ctx, userID, path, map[string]string{"code": code}, &resp); err != nil {
		return usecase.RedeemOutcome{}, err
	}
	return usecase.RedeemOutcome{
		PointsAdded: resp.PointsAdded,
		ValueBHD:    resp.ValueBHD,
		Message:     resp.Message,
	}, nil
}
