//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/payment"
	"luna-storefront/internal/infra"
	"luna-storefront/internal/pkg/clock"
	"luna-storefront/internal/usecase"
	usecasemock "luna-storefront/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 42

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *usecasemock.MockCheckoutGateway
	clock       *clock.MockClock
	cmds        usecase.CheckoutCommands
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = usecasemock.NewMockCheckoutGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	s.cmds = usecase.NewCheckoutUseCase(s.mockGateway, s.clock)
}

// each subtest starts from a fresh session store
func (s *CheckoutUseCaseTestSuite) SetupSubTest() {
	s.cmds = usecase.NewCheckoutUseCase(s.mockGateway, s.clock)
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

func validSubmitInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		QuoteInput: usecase.QuoteInput{
			Lines: []usecase.CartLineInput{
				{ProductID: "p-1", Title: "Rose Bouquet", UnitPrice: money.FromFils(10000), Quantity: 2},
			},
			ShippingMethod: "standard",
		},
		PaymentMethod: "card",
		Address: usecase.DeliveryAddress{
			Name:    "Sara",
			Phone:   "39112233",
			Address: "Road 2803, Block 428",
			City:    "Seef",
			Country: "Bahrain",
		},
	}
}

func (s *CheckoutUseCaseTestSuite) TestQuote() {
	s.Run("success: totals a percent voucher cart", func() {
		result, err := s.cmds.Quote(usecase.QuoteInput{
			Lines: []usecase.CartLineInput{
				{ProductID: "p-1", Title: "Rose Bouquet", UnitPrice: money.FromFils(10000), Quantity: 2},
			},
			ShippingMethod: "standard",
			Voucher:        &usecase.VoucherInput{Code: "SAVE10", Kind: "percent", Value: 10},
		})
		s.Require().NoError(err)
		s.Equal(money.FromFils(20000), result.Total.Subtotal)
		s.Equal(money.FromFils(2000), result.Total.Discount)
		s.Equal(money.FromFils(18000), result.Total.GrandTotal)
		s.Equal("BHD", result.Currency)
		s.Equal(1, result.LineCount)
	})

	s.Run("error: empty cart", func() {
		_, err := s.cmds.Quote(usecase.QuoteInput{ShippingMethod: "standard"})
		s.Require().ErrorIs(err, usecase.ErrEmptyCart)
	})

	s.Run("error: expired voucher", func() {
		past := s.clock.Now().Add(-time.Hour)
		_, err := s.cmds.Quote(usecase.QuoteInput{
			Lines: []usecase.CartLineInput{
				{ProductID: "p-1", Title: "Rose Bouquet", UnitPrice: money.FromFils(10000), Quantity: 1},
			},
			Voucher: &usecase.VoucherInput{Code: "OLD", Kind: "percent", Value: 10, ValidUntil: &past},
		})
		s.Require().ErrorIs(err, usecase.ErrInvalidVoucher)
	})

	s.Run("error: zero quantity line", func() {
		_, err := s.cmds.Quote(usecase.QuoteInput{
			Lines: []usecase.CartLineInput{
				{ProductID: "p-1", Title: "Rose Bouquet", UnitPrice: money.FromFils(10000), Quantity: 0},
			},
		})
		s.Require().ErrorIs(err, usecase.ErrInvalidCartLine)
	})
}

func (s *CheckoutUseCaseTestSuite) TestSubmit() {
	s.Run("success: settles the attempt and clears the remote cart", func() {
		var sent usecase.OrderSubmission
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, sub usecase.OrderSubmission) (string, error) {
				sent = sub
				return "LS-1001", nil
			}).Times(1)
		s.mockGateway.EXPECT().ClearCart(gomock.Any(), testUserID).Return(nil).Times(1)

		view, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)
		s.Equal(payment.StateSucceeded, view.State)
		s.Equal("LS-1001", view.OrderRef)
		s.Empty(view.Failure)

		s.Equal(money.FromFils(20000), sent.Subtotal)
		s.Equal(money.FromFils(20000), sent.GrandTotal)
		s.Equal("standard", sent.ShippingMethod)
		s.Equal("card", sent.PaymentMethod)
		s.Require().Len(sent.Lines, 1)
		s.Equal("p-1", sent.Lines[0].ProductID)
	})

	s.Run("success: a failed cart clear does not fail the order", func() {
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			Return("LS-1002", nil).Times(1)
		s.mockGateway.EXPECT().ClearCart(gomock.Any(), testUserID).
			Return(infra.GatewayError{Kind: infra.KindUnavailable, Message: "cart service down"}).Times(1)

		view, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)
		s.Equal(payment.StateSucceeded, view.State)
	})

	s.Run("success: upstream rejection settles to failed with the upstream message", func() {
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			Return("", infra.GatewayError{Kind: infra.KindRejected, Message: "Card was declined"}).Times(1)

		view, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)
		s.Equal(payment.StateFailed, view.State)
		s.Equal("Card was declined", view.Failure)
	})

	s.Run("success: transport failure settles to failed with a generic message", func() {
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			Return("", infra.GatewayError{Kind: infra.KindUnavailable, Message: "connection refused"}).Times(1)

		view, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)
		s.Equal(payment.StateFailed, view.State)
		s.Equal("Something went wrong. Please try again.", view.Failure)
	})

	s.Run("error: validation failures never reach the gateway", func() {
		testCases := []struct {
			name      string
			mutate    func(in *usecase.SubmitInput)
			expectErr error
		}{
			{"empty cart", func(in *usecase.SubmitInput) { in.Lines = nil }, usecase.ErrEmptyCart},
			{"blank name", func(in *usecase.SubmitInput) { in.Address.Name = "  " }, usecase.ErrMissingName},
			{"blank phone", func(in *usecase.SubmitInput) { in.Address.Phone = "" }, usecase.ErrMissingPhone},
			{"blank address", func(in *usecase.SubmitInput) { in.Address.Address = "" }, usecase.ErrMissingAddress},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				in := validSubmitInput()
				tc.mutate(&in)
				_, err := s.cmds.Submit(context.Background(), testUserID, in)
				s.Require().ErrorIs(err, tc.expectErr)
			})
		}
	})

	s.Run("error: a second submit on a succeeded attempt is rejected", func() {
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			Return("LS-1003", nil).Times(1)
		s.mockGateway.EXPECT().ClearCart(gomock.Any(), testUserID).Return(nil).Times(1)

		_, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)

		_, err = s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().ErrorIs(err, usecase.ErrAttemptNotIdle)
	})
}

func (s *CheckoutUseCaseTestSuite) TestRetry() {
	s.Run("success: re-sends the identical submission", func() {
		var first, second usecase.OrderSubmission
		gomock.InOrder(
			s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, sub usecase.OrderSubmission) (string, error) {
					first = sub
					return "", infra.GatewayError{Kind: infra.KindRejected, Message: "Card was declined"}
				}),
			s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, sub usecase.OrderSubmission) (string, error) {
					second = sub
					return "LS-2001", nil
				}),
		)
		s.mockGateway.EXPECT().ClearCart(gomock.Any(), testUserID).Return(nil).Times(1)

		view, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)
		s.Equal(payment.StateFailed, view.State)

		view, err = s.cmds.Retry(context.Background(), testUserID)
		s.Require().NoError(err)
		s.Equal(payment.StateSucceeded, view.State)
		s.Equal("LS-2001", view.OrderRef)
		s.Empty(view.Failure)
		s.Equal(first, second)
	})

	s.Run("error: nothing to retry on a fresh session", func() {
		_, err := s.cmds.Retry(context.Background(), testUserID)
		s.Require().ErrorIs(err, usecase.ErrNoFailedAttempt)
	})
}

func (s *CheckoutUseCaseTestSuite) TestDismiss() {
	s.Run("success: dismissing a success navigates and resets the session", func() {
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			Return("LS-3001", nil).Times(1)
		s.mockGateway.EXPECT().ClearCart(gomock.Any(), testUserID).Return(nil).Times(1)

		succeeded, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)

		result, err := s.cmds.Dismiss(testUserID)
		s.Require().NoError(err)
		s.True(result.Navigate)

		fresh := s.cmds.Session(testUserID)
		s.Equal(payment.StateIdle, fresh.State)
		s.NotEqual(succeeded.AttemptID, fresh.AttemptID)
		s.Empty(fresh.OrderRef)
	})

	s.Run("success: dismissing a failure stays on the session", func() {
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			Return("", infra.GatewayError{Kind: infra.KindRejected, Message: "declined"}).Times(1)

		failed, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)
		s.Equal(payment.StateFailed, failed.State)

		result, err := s.cmds.Dismiss(testUserID)
		s.Require().NoError(err)
		s.False(result.Navigate)

		// the attempt survives for a later submit, only the sheet closed
		s.Equal(failed.AttemptID, s.cmds.Session(testUserID).AttemptID)
	})

	s.Run("error: nothing to dismiss on an idle session", func() {
		_, err := s.cmds.Dismiss(testUserID)
		s.Require().ErrorIs(err, usecase.ErrNothingToDismiss)
	})
}

func (s *CheckoutUseCaseTestSuite) TestSession() {
	s.Run("sessions are isolated per user", func() {
		s.mockGateway.EXPECT().SubmitOrder(gomock.Any(), testUserID, gomock.Any()).
			Return("LS-4001", nil).Times(1)
		s.mockGateway.EXPECT().ClearCart(gomock.Any(), testUserID).Return(nil).Times(1)

		_, err := s.cmds.Submit(context.Background(), testUserID, validSubmitInput())
		s.Require().NoError(err)

		s.Equal(payment.StateSucceeded, s.cmds.Session(testUserID).State)
		s.Equal(payment.StateIdle, s.cmds.Session(testUserID+1).State)
	})
}
