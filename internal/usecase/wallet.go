package usecase

import (
	"context"
	"log/slog"
	"sync"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/wallet"
	"luna-storefront/internal/infra"
	"luna-storefront/internal/pkg/errs"
)

var (
	ErrGiftRejected      = errs.New("gift was rejected upstream")
	ErrRedeemRejected    = errs.New("code redemption was rejected upstream")
	ErrWalletUnavailable = errs.New("wallet is temporarily unavailable")
)

// defaultPointsToBHDRatio applies when the upstream omits the conversion
// ratio from wallet info.
const defaultPointsToBHDRatio = 0.01

// WalletOverview aggregates everything the wallet screen shows: the mirrored
// balance, its BHD equivalent, and the two history lists.
type WalletOverview struct {
	Points       int64
	Provisional  bool
	ValueBHD     money.Money
	Ratio        float64
	Transactions []WalletTransaction
	Purchases    []GiftCardPurchase
}

type LedgerService interface {
	Overview(ctx context.Context, userID int64) (WalletOverview, error)
	// SendGift returns the minted gift code alongside the refreshed wallet;
	// the sender shares the code with the recipient.
	SendGift(ctx context.Context, userID int64, recipientRaw string, points int64, note string) (string, WalletOverview, error)
	Redeem(ctx context.Context, userID int64, codeRaw string) (RedeemOutcome, WalletOverview, error)
}

// userLedger pairs a user's balance mirror with the mutex that serializes
// every operation touching it. Holding the lock across the upstream call is
// deliberate: two concurrent sends from the same user must not both validate
// against the same stale balance.
type userLedger struct {
	mu     sync.Mutex
	mirror *wallet.BalanceMirror
	ratio  float64
}

type ledgerServiceImpl struct {
	gateway WalletGateway

	mu      sync.Mutex
	ledgers map[int64]*userLedger
}

func NewLedgerService(gateway WalletGateway) LedgerService {
	return &ledgerServiceImpl{
		gateway: gateway,
		ledgers: make(map[int64]*userLedger),
	}
}

func (s *ledgerServiceImpl) ledger(userID int64) *userLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[userID]
	if !ok {
		l = &userLedger{mirror: wallet.NewBalanceMirror(), ratio: defaultPointsToBHDRatio}
		s.ledgers[userID] = l
	}
	return l
}

func (s *ledgerServiceImpl) Overview(ctx context.Context, userID int64) (WalletOverview, error) {
	l := s.ledger(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := s.refreshLocked(ctx, userID, l); err != nil {
		return WalletOverview{}, err
	}
	return s.overviewLocked(ctx, userID, l), nil
}

func (s *ledgerServiceImpl) SendGift(ctx context.Context, userID int64, recipientRaw string, points int64, note string) (string, WalletOverview, error) {
	recipient, err := wallet.NewRecipient(recipientRaw)
	if err != nil {
		return "", WalletOverview{}, err
	}

	l := s.ledger(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	// validate against a fresh authoritative balance, never a stale mirror
	if err := s.refreshLocked(ctx, userID, l); err != nil {
		return "", WalletOverview{}, err
	}
	if err := l.mirror.ValidateDebit(points); err != nil {
		return "", WalletOverview{}, err
	}

	code, err := s.gateway.SendGift(ctx, userID, recipient, points, note)
	if err != nil {
		// the mirror stays untouched; nothing was sent
		if infra.IsKind(err, infra.KindRejected) {
			return "", WalletOverview{}, errs.Mark(err, ErrGiftRejected)
		}
		return "", WalletOverview{}, errs.Mark(err, ErrWalletUnavailable)
	}

	// the send is confirmed: debit provisionally, then reconcile
	if err := l.mirror.ApplyDebit(points); err != nil {
		slog.Error("failed to apply confirmed debit to balance mirror", "user_id", userID, "error", err)
	}
	s.reconcileLocked(ctx, userID, l)

	return code, s.overviewLocked(ctx, userID, l), nil
}

func (s *ledgerServiceImpl) Redeem(ctx context.Context, userID int64, codeRaw string) (RedeemOutcome, WalletOverview, error) {
	code, err := wallet.ClassifyCode(codeRaw)
	if err != nil {
		return RedeemOutcome{}, WalletOverview{}, err
	}

	l := s.ledger(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	outcome, err := s.dispatchRedeem(ctx, userID, code)
	if err != nil {
		if infra.IsKind(err, infra.KindRejected) {
			return RedeemOutcome{}, WalletOverview{}, errs.Mark(err, ErrRedeemRejected)
		}
		return RedeemOutcome{}, WalletOverview{}, errs.Mark(err, ErrWalletUnavailable)
	}

	// the credited amount is server-computed; only a re-fetch may move the
	// mirror
	s.reconcileLocked(ctx, userID, l)

	return outcome, s.overviewLocked(ctx, userID, l), nil
}

// dispatchRedeem is the single point where a classified code picks its
// upstream endpoint.
func (s *ledgerServiceImpl) dispatchRedeem(ctx context.Context, userID int64, code wallet.Code) (RedeemOutcome, error) {
	switch c := code.(type) {
	case wallet.GiftCardCode:
		return s.gateway.RedeemGiftCard(ctx, userID, c)
	case wallet.RewardCode:
		return s.gateway.RedeemRewardCode(ctx, userID, c)
	default:
		return RedeemOutcome{}, errs.Mark(wallet.ErrMalformedCode, ErrRedeemRejected)
	}
}

// refreshLocked replaces the mirror with the authoritative upstream balance.
func (s *ledgerServiceImpl) refreshLocked(ctx context.Context, userID int64, l *userLedger) error {
	info, err := s.gateway.Info(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrWalletUnavailable)
	}
	l.mirror.Confirm(info.Points)
	l.ratio = info.PointsToBHDRatio
	if l.ratio <= 0 {
		l.ratio = defaultPointsToBHDRatio
	}
	return nil
}

// reconcileLocked re-fetches after a mutation. Failure is tolerable: the
// mirror simply stays provisional until the next successful fetch.
func (s *ledgerServiceImpl) reconcileLocked(ctx context.Context, userID int64, l *userLedger) {
	if err := s.refreshLocked(ctx, userID, l); err != nil {
		slog.Warn("failed to reconcile balance mirror", "user_id", userID, "error", err)
	}
}

func (s *ledgerServiceImpl) overviewLocked(ctx context.Context, userID int64, l *userLedger) WalletOverview {
	overview := WalletOverview{
		Points:      l.mirror.Points(),
		Provisional: l.mirror.Provisional(),
		Ratio:       l.ratio,
		ValueBHD:    money.FromFloat(float64(l.mirror.Points()) * l.ratio),
	}

	transactions, err := s.gateway.Transactions(ctx, userID)
	if err != nil {
		slog.Warn("failed to fetch wallet transactions", "user_id", userID, "error", err)
	} else {
		overview.Transactions = transactions
	}

	purchases, err := s.gateway.Purchases(ctx, userID)
	if err != nil {
		slog.Warn("failed to fetch gift card purchases", "user_id", userID, "error", err)
	} else {
		overview.Purchases = purchases
	}

	return overview
}
