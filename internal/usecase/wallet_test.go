//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/wallet"
	"luna-storefront/internal/infra"
	"luna-storefront/internal/usecase"
	usecasemock "luna-storefront/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *usecasemock.MockWalletGateway
	ledger      usecase.LedgerService
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = usecasemock.NewMockWalletGateway(s.mockCtrl)
	s.ledger = usecase.NewLedgerService(s.mockGateway)
}

// each subtest starts from a fresh ledger store
func (s *LedgerServiceTestSuite) SetupSubTest() {
	s.ledger = usecase.NewLedgerService(s.mockGateway)
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) expectHistories() {
	s.mockGateway.EXPECT().Transactions(gomock.Any(), testUserID).
		Return([]usecase.WalletTransaction{{ID: 1, Type: "earn", Points: 100}}, nil).AnyTimes()
	s.mockGateway.EXPECT().Purchases(gomock.Any(), testUserID).
		Return([]usecase.GiftCardPurchase{{OrderNo: "GC-1", Amount: money.FromFils(5000)}}, nil).AnyTimes()
}

func (s *LedgerServiceTestSuite) TestOverview() {
	s.Run("success: mirrors the upstream balance and converts it", func() {
		s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
			Return(usecase.WalletInfo{Points: 1500, PointsToBHDRatio: 0.01}, nil).Times(1)
		s.expectHistories()

		overview, err := s.ledger.Overview(context.Background(), testUserID)
		s.Require().NoError(err)
		s.Equal(int64(1500), overview.Points)
		s.False(overview.Provisional)
		s.Equal(money.FromFils(15000), overview.ValueBHD)
		s.Len(overview.Transactions, 1)
		s.Len(overview.Purchases, 1)
	})

	s.Run("success: a missing ratio falls back to the default", func() {
		s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
			Return(usecase.WalletInfo{Points: 200}, nil).Times(1)
		s.expectHistories()

		overview, err := s.ledger.Overview(context.Background(), testUserID)
		s.Require().NoError(err)
		s.InDelta(0.01, overview.Ratio, 1e-9)
		s.Equal(money.FromFils(2000), overview.ValueBHD)
	})

	s.Run("success: history failures degrade to empty lists", func() {
		s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
			Return(usecase.WalletInfo{Points: 10, PointsToBHDRatio: 0.01}, nil).Times(1)
		s.mockGateway.EXPECT().Transactions(gomock.Any(), testUserID).
			Return(nil, infra.GatewayError{Kind: infra.KindUnavailable, Message: "timeout"}).Times(1)
		s.mockGateway.EXPECT().Purchases(gomock.Any(), testUserID).
			Return(nil, infra.GatewayError{Kind: infra.KindUnavailable, Message: "timeout"}).Times(1)

		overview, err := s.ledger.Overview(context.Background(), testUserID)
		s.Require().NoError(err)
		s.Equal(int64(10), overview.Points)
		s.Empty(overview.Transactions)
		s.Empty(overview.Purchases)
	})

	s.Run("error: wallet info failure surfaces as unavailable", func() {
		s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
			Return(usecase.WalletInfo{}, infra.GatewayError{Kind: infra.KindUnavailable, Message: "down"}).Times(1)

		_, err := s.ledger.Overview(context.Background(), testUserID)
		s.Require().ErrorIs(err, usecase.ErrWalletUnavailable)
	})
}

func (s *LedgerServiceTestSuite) TestSendGift() {
	s.Run("success: validates against a fresh balance, debits, reconciles", func() {
		gomock.InOrder(
			s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
				Return(usecase.WalletInfo{Points: 500, PointsToBHDRatio: 0.01}, nil),
			s.mockGateway.EXPECT().SendGift(gomock.Any(), testUserID, gomock.Any(), int64(200), "happy birthday").
				Return("AB12-CD34", nil),
			s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
				Return(usecase.WalletInfo{Points: 300, PointsToBHDRatio: 0.01}, nil),
		)
		s.expectHistories()

		code, overview, err := s.ledger.SendGift(context.Background(), testUserID, "friend@example.com", 200, "happy birthday")
		s.Require().NoError(err)
		s.Equal("AB12-CD34", code)
		s.Equal(int64(300), overview.Points)
		s.False(overview.Provisional)
	})

	s.Run("success: failed reconcile keeps the mirror provisional", func() {
		gomock.InOrder(
			s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
				Return(usecase.WalletInfo{Points: 500, PointsToBHDRatio: 0.01}, nil),
			s.mockGateway.EXPECT().SendGift(gomock.Any(), testUserID, gomock.Any(), int64(200), "").
				Return("EF56-GH78", nil),
			s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
				Return(usecase.WalletInfo{}, infra.GatewayError{Kind: infra.KindUnavailable, Message: "down"}),
		)
		s.expectHistories()

		code, overview, err := s.ledger.SendGift(context.Background(), testUserID, "friend@example.com", 200, "")
		s.Require().NoError(err)
		s.Equal("EF56-GH78", code)
		s.Equal(int64(300), overview.Points)
		s.True(overview.Provisional)
	})

	s.Run("error: insufficient balance is caught before the gateway send", func() {
		s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
			Return(usecase.WalletInfo{Points: 100, PointsToBHDRatio: 0.01}, nil).Times(1)

		_, _, err := s.ledger.SendGift(context.Background(), testUserID, "friend@example.com", 200, "")
		s.Require().ErrorIs(err, wallet.ErrInsufficientBalance)
	})

	s.Run("error: upstream rejection leaves the mirror untouched", func() {
		gomock.InOrder(
			s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
				Return(usecase.WalletInfo{Points: 500, PointsToBHDRatio: 0.01}, nil),
			s.mockGateway.EXPECT().SendGift(gomock.Any(), testUserID, gomock.Any(), int64(200), "").
				Return("", infra.GatewayError{Kind: infra.KindRejected, Message: "recipient not registered"}),
		)

		_, _, err := s.ledger.SendGift(context.Background(), testUserID, "friend@example.com", 200, "")
		s.Require().ErrorIs(err, usecase.ErrGiftRejected)

		s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
			Return(usecase.WalletInfo{Points: 500, PointsToBHDRatio: 0.01}, nil).Times(1)
		s.expectHistories()
		overview, err := s.ledger.Overview(context.Background(), testUserID)
		s.Require().NoError(err)
		s.Equal(int64(500), overview.Points)
		s.False(overview.Provisional)
	})

	s.Run("error: invalid recipient never touches the gateway", func() {
		_, _, err := s.ledger.SendGift(context.Background(), testUserID, "not an address", 200, "")
		s.Require().ErrorIs(err, wallet.ErrInvalidRecipient)
	})

	s.Run("error: zero points never touch the gateway send", func() {
		s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
			Return(usecase.WalletInfo{Points: 500, PointsToBHDRatio: 0.01}, nil).Times(1)

		_, _, err := s.ledger.SendGift(context.Background(), testUserID, "friend@example.com", 0, "")
		s.Require().ErrorIs(err, wallet.ErrInvalidPoints)
	})
}

func (s *LedgerServiceTestSuite) TestRedeem() {
	s.Run("success: a reward code goes to the reward endpoint and never credits locally", func() {
		gomock.InOrder(
			s.mockGateway.EXPECT().RedeemRewardCode(gomock.Any(), testUserID, wallet.RewardCode("AB12-CD34")).
				Return(usecase.RedeemOutcome{PointsAdded: 250, ValueBHD: money.FromFils(2500), Message: "Code redeemed"}, nil),
			s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
				Return(usecase.WalletInfo{Points: 750, PointsToBHDRatio: 0.01}, nil),
		)
		s.expectHistories()

		outcome, overview, err := s.ledger.Redeem(context.Background(), testUserID, " ab12-cd34 ")
		s.Require().NoError(err)
		s.Equal(int64(250), outcome.PointsAdded)
		// the balance is whatever the reconcile fetch reported, not a local add
		s.Equal(int64(750), overview.Points)
		s.False(overview.Provisional)
	})

	s.Run("success: a gift card code goes to the gift card endpoint", func() {
		gomock.InOrder(
			s.mockGateway.EXPECT().RedeemGiftCard(gomock.Any(), testUserID, wallet.GiftCardCode("GC-ABCD1234")).
				Return(usecase.RedeemOutcome{PointsAdded: 500, ValueBHD: money.FromFils(5000)}, nil),
			s.mockGateway.EXPECT().Info(gomock.Any(), testUserID).
				Return(usecase.WalletInfo{Points: 1000, PointsToBHDRatio: 0.01}, nil),
		)
		s.expectHistories()

		outcome, _, err := s.ledger.Redeem(context.Background(), testUserID, "gc-abcd1234")
		s.Require().NoError(err)
		s.Equal(int64(500), outcome.PointsAdded)
	})

	s.Run("error: malformed code never touches the gateway", func() {
		_, _, err := s.ledger.Redeem(context.Background(), testUserID, "????")
		s.Require().ErrorIs(err, wallet.ErrMalformedCode)
	})

	s.Run("error: upstream rejection keeps the upstream message", func() {
		s.mockGateway.EXPECT().RedeemRewardCode(gomock.Any(), testUserID, wallet.RewardCode("AB12-CD34")).
			Return(usecase.RedeemOutcome{}, infra.GatewayError{Kind: infra.KindRejected, Message: "Code already used"}).Times(1)

		_, _, err := s.ledger.Redeem(context.Background(), testUserID, "AB12-CD34")
		s.Require().ErrorIs(err, usecase.ErrRedeemRejected)
		s.Equal("Code already used", infra.GatewayMessage(err))
	})

	s.Run("error: transport failure surfaces as unavailable", func() {
		s.mockGateway.EXPECT().RedeemRewardCode(gomock.Any(), testUserID, wallet.RewardCode("AB12-CD34")).
			Return(usecase.RedeemOutcome{}, infra.GatewayError{Kind: infra.KindUnavailable, Message: "down"}).Times(1)

		_, _, err := s.ledger.Redeem(context.Background(), testUserID, "AB12-CD34")
		s.Require().ErrorIs(err, usecase.ErrWalletUnavailable)
	})
}
