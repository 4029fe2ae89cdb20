package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stadium-ticketing-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPurchaseService records calls and returns a fixed result or error
type stubPurchaseService struct {
	result  *PurchaseResult
	err     error
	calls   int
	lastReq *PurchaseRequest
	started chan struct{}
	block   chan struct{}
}

func (s *stubPurchaseService) PurchaseStadiumTickets(ctx context.Context, req *PurchaseRequest) (*PurchaseResult, error) {
	s.calls++
	s.lastReq = req
	if s.started != nil {
		close(s.started)
	}
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func testListing(id string, price, available int) models.Listing {
	return models.Listing{
		ID:               id,
		Section:          "Section " + strings.ToUpper(id),
		Row:              "Row 1",
		Category:         models.CategoryLowerBowl,
		Price:            price,
		TicketsAvailable: available,
		Rating:           9.0,
		View:             "Clear view",
	}
}

func validBuyer() models.BuyerDetails {
	return models.BuyerDetails{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "1234567",
	}
}

func validPayment() models.PaymentDetails {
	return models.PaymentDetails{
		CardNumber: "4111111111111111",
		Expiry:     "12/28",
		CVV:        "123",
		NameOnCard: "JOHN DOE",
	}
}

// sessionAtPayment builds a session with one cart line, valid buyer and
// payment, advanced to the payment step
func sessionAtPayment(t *testing.T) *Session {
	t.Helper()
	s := NewSession(NewSessionID(), nil)
	require.NoError(t, s.AddToCart(testListing("l2", 620, 4), 2))
	s.SetBuyer(validBuyer())
	s.SetPayment(validPayment())
	require.NoError(t, s.Advance(StepDetails))
	require.NoError(t, s.Advance(StepPayment))
	return s
}

func TestAddToCartClampsToAvailability(t *testing.T) {
	s := NewSession(NewSessionID(), nil)

	err := s.AddToCart(testListing("l1", 500, 4), 10)
	require.NoError(t, err)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestAddToCartAccumulatesOnSingleLine(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	listing := testListing("l1", 500, 6)

	require.NoError(t, s.AddToCart(listing, 2))
	require.NoError(t, s.AddToCart(listing, 3))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)

	// A third add clamps at availability instead of creating a new line
	require.NoError(t, s.AddToCart(listing, 5))
	cart = s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 6, cart[0].Quantity)
}

func TestAddToCartRejectsBadInput(t *testing.T) {
	s := NewSession(NewSessionID(), nil)

	err := s.AddToCart(testListing("l1", 500, 4), 0)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	err = s.AddToCart(testListing("l2", 500, 0), 1)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Empty(t, s.Cart())
}

func TestSetLineQuantity(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	require.NoError(t, s.AddToCart(testListing("l1", 500, 4), 2))

	require.NoError(t, s.SetLineQuantity("l1", 3))
	assert.Equal(t, 3, s.Cart()[0].Quantity)

	// clamped to availability
	require.NoError(t, s.SetLineQuantity("l1", 99))
	assert.Equal(t, 4, s.Cart()[0].Quantity)

	assert.ErrorIs(t, s.SetLineQuantity("missing", 2), models.ErrLineNotFound)
}

func TestSetLineQuantityZeroRemovesLine(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	require.NoError(t, s.AddToCart(testListing("l1", 500, 4), 2))
	require.NoError(t, s.AddToCart(testListing("l2", 620, 4), 1))

	require.NoError(t, s.SetLineQuantity("l1", 0))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "l2", cart[0].Listing.ID)
}

func TestRemoveLine(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	require.NoError(t, s.AddToCart(testListing("l1", 500, 4), 2))

	require.NoError(t, s.RemoveLine("l1"))
	assert.Empty(t, s.Cart())
	assert.ErrorIs(t, s.RemoveLine("l1"), models.ErrLineNotFound)
}

func TestAdvanceGuardsEmptyCart(t *testing.T) {
	s := NewSession(NewSessionID(), nil)

	err := s.Advance(StepDetails)
	assert.ErrorIs(t, err, models.ErrCartEmpty)
	assert.Equal(t, StepCart, s.Step)

	require.NoError(t, s.AddToCart(testListing("l1", 500, 4), 1))
	require.NoError(t, s.Advance(StepDetails))
	assert.Equal(t, StepDetails, s.Step)
}

func TestAdvanceValidatesBuyer(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	require.NoError(t, s.AddToCart(testListing("l1", 500, 4), 1))
	require.NoError(t, s.Advance(StepDetails))

	err := s.Advance(StepPayment)
	require.Error(t, err)
	assert.Equal(t, StepDetails, s.Step)

	s.SetBuyer(validBuyer())
	require.NoError(t, s.Advance(StepPayment))
	assert.Equal(t, StepPayment, s.Step)
}

func TestAdvanceRejectsSkipsAndConfirmation(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	require.NoError(t, s.AddToCart(testListing("l1", 500, 4), 1))

	// no skipping cart -> payment
	assert.ErrorIs(t, s.Advance(StepPayment), models.ErrInvalidTransition)

	// confirmation is only reachable through SubmitPayment
	s.SetBuyer(validBuyer())
	require.NoError(t, s.Advance(StepDetails))
	require.NoError(t, s.Advance(StepPayment))
	assert.ErrorIs(t, s.Advance(StepConfirmation), models.ErrInvalidTransition)
}

func TestAdvanceBackward(t *testing.T) {
	s := sessionAtPayment(t)

	require.NoError(t, s.Advance(StepDetails))
	assert.Equal(t, StepDetails, s.Step)
	require.NoError(t, s.Advance(StepCart))
	assert.Equal(t, StepCart, s.Step)

	// cart has no backward edge
	assert.ErrorIs(t, s.Advance(StepPayment), models.ErrInvalidTransition)
}

func TestSubmitPaymentSuccess(t *testing.T) {
	s := sessionAtPayment(t)
	stub := &stubPurchaseService{result: &PurchaseResult{IsNewUser: true, Reference: "WC26-ABC123"}}

	result, err := s.SubmitPayment(context.Background(), stub)
	require.NoError(t, err)
	assert.True(t, result.IsNewUser)

	assert.Equal(t, StepConfirmation, s.Step)
	assert.True(t, s.IsNewUser)
	assert.Equal(t, "WC26-ABC123", s.Reference)
	assert.False(t, s.Processing)

	require.NotNil(t, stub.lastReq)
	require.Len(t, stub.lastReq.Cart, 1)
	assert.Equal(t, PurchaseLine{ListingID: "l2", Quantity: 2}, stub.lastReq.Cart[0])
}

func TestSubmitPaymentFailurePreservesState(t *testing.T) {
	s := sessionAtPayment(t)
	before := s.Snapshot()
	stub := &stubPurchaseService{err: errors.New("card declined")}

	_, err := s.SubmitPayment(context.Background(), stub)
	require.Error(t, err)

	after := s.Snapshot()
	assert.Equal(t, StepPayment, s.Step)
	assert.Equal(t, before.Lines, after.Lines)
	assert.Equal(t, before.Buyer, after.Buyer)
	assert.Equal(t, validPayment().CardNumber, DigitsOnly(s.Payment.CardNumber))
	assert.False(t, s.Processing)

	// the same attempt can be retried
	stub.err = nil
	stub.result = &PurchaseResult{}
	_, err = s.SubmitPayment(context.Background(), stub)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
}

func TestSubmitPaymentSerializesAttempts(t *testing.T) {
	s := sessionAtPayment(t)
	stub := &stubPurchaseService{
		result:  &PurchaseResult{},
		started: make(chan struct{}),
		block:   make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		_, err := s.SubmitPayment(context.Background(), stub)
		done <- err
	}()

	// wait for the first attempt to take the processing flag
	<-stub.started
	assert.True(t, s.Snapshot().Processing)

	_, err := s.SubmitPayment(context.Background(), stub)
	assert.ErrorIs(t, err, models.ErrPurchaseInProgress)

	// back-navigation is blocked while processing
	assert.ErrorIs(t, s.Advance(StepDetails), models.ErrPurchaseInProgress)

	close(stub.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, stub.calls)
}

func TestSubmitPaymentRequiresPaymentStep(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	require.NoError(t, s.AddToCart(testListing("l1", 500, 4), 1))

	_, err := s.SubmitPayment(context.Background(), &stubPurchaseService{})
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestSubmitPaymentValidatesDetails(t *testing.T) {
	s := sessionAtPayment(t)
	s.SetPayment(models.PaymentDetails{CardNumber: "4111", Expiry: "12/28", CVV: "123", NameOnCard: "JOHN DOE"})

	stub := &stubPurchaseService{result: &PurchaseResult{}}
	_, err := s.SubmitPayment(context.Background(), stub)
	require.Error(t, err)
	assert.Zero(t, stub.calls)
}

func TestCompleteAndReset(t *testing.T) {
	s := sessionAtPayment(t)
	_, err := s.SubmitPayment(context.Background(), &stubPurchaseService{result: &PurchaseResult{IsNewUser: true}})
	require.NoError(t, err)

	redirect, err := s.CompleteAndReset()
	require.NoError(t, err)
	assert.True(t, redirect, "new account and no active identity should redirect to login")

	assert.Equal(t, StepCart, s.Step)
	assert.Empty(t, s.Lines)
	assert.Equal(t, models.BuyerDetails{}, s.Buyer)
	assert.Equal(t, models.PaymentDetails{}, s.Payment)
	assert.False(t, s.Processing)
	assert.False(t, s.IsNewUser)
	assert.Empty(t, s.Reference)
}

func TestCompleteAndResetWithIdentity(t *testing.T) {
	identity := &models.Identity{ID: "u1", Name: "Alex Morgan", Email: "alex@example.com"}
	s := NewSession(NewSessionID(), identity)
	require.NoError(t, s.AddToCart(testListing("l2", 620, 4), 2))
	s.SetBuyer(validBuyer())
	s.SetPayment(validPayment())
	require.NoError(t, s.Advance(StepDetails))
	require.NoError(t, s.Advance(StepPayment))
	_, err := s.SubmitPayment(context.Background(), &stubPurchaseService{result: &PurchaseResult{IsNewUser: true}})
	require.NoError(t, err)

	// signed-in buyers never get redirected to login
	redirect, err := s.CompleteAndReset()
	require.NoError(t, err)
	assert.False(t, redirect)
}

func TestCompleteAndResetBlockedWhileProcessing(t *testing.T) {
	s := sessionAtPayment(t)
	stub := &stubPurchaseService{
		result:  &PurchaseResult{IsNewUser: true},
		started: make(chan struct{}),
		block:   make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		_, err := s.SubmitPayment(context.Background(), stub)
		done <- err
	}()
	<-stub.started

	_, err := s.CompleteAndReset()
	assert.ErrorIs(t, err, models.ErrPurchaseInProgress)

	close(stub.block)
	require.NoError(t, <-done)

	// the submission resolved against an intact aggregate
	snap := s.Snapshot()
	assert.Equal(t, StepConfirmation, snap.Step)
	require.Len(t, snap.Lines, 1)
	assert.True(t, snap.IsNewUser)

	_, err = s.CompleteAndReset()
	require.NoError(t, err)
	assert.Equal(t, StepCart, s.Step)
}

func TestNewSessionPrefillsBuyerFromIdentity(t *testing.T) {
	identity := &models.Identity{ID: "u1", Name: "Alex Morgan", Email: "alex@example.com"}
	s := NewSession(NewSessionID(), identity)

	assert.Equal(t, "Alex", s.Buyer.FirstName)
	assert.Equal(t, "Morgan", s.Buyer.LastName)
	assert.Equal(t, "alex@example.com", s.Buyer.Email)
	assert.Equal(t, StepCart, s.Step)
}

func TestSetPaymentNormalizes(t *testing.T) {
	s := NewSession(NewSessionID(), nil)
	s.SetPayment(models.PaymentDetails{
		CardNumber: "4111-1111-1111-1111",
		Expiry:     "1228",
		CVV:        "12345",
		NameOnCard: "john doe",
	})

	assert.Equal(t, "4111 1111 1111 1111", s.Payment.CardNumber)
	assert.Equal(t, "12/28", s.Payment.Expiry)
	assert.Equal(t, "1234", s.Payment.CVV)
	assert.Equal(t, "JOHN DOE", s.Payment.NameOnCard)
}

func TestSnapshotHidesPaymentDetails(t *testing.T) {
	s := sessionAtPayment(t)
	snap := s.Snapshot()

	assert.True(t, snap.PaymentValid)
	assert.Equal(t, "VISA", snap.CardBrand)
	assert.Equal(t, 1240, snap.Totals.Subtotal)
	assert.Equal(t, 149, snap.Totals.ServiceFee) // 148.8 rounds up
	assert.Equal(t, 1389, snap.Totals.Total)
}

func TestNewBookingReference(t *testing.T) {
	ref := NewBookingReference()
	assert.True(t, strings.HasPrefix(ref, "WC26-"))
	assert.Len(t, ref, 11)
}
