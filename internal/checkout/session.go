package checkout

import (
	"context"
	mathrand "math/rand"
	"strings"
	"sync"

	"stadium-ticketing-platform/internal/models"

	"github.com/pkg/errors"
)

// Step identifies a stage of the checkout flow
type Step string

const (
	StepCart         Step = "cart"
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// ParseStep maps a raw string onto a known checkout step
func ParseStep(s string) (Step, error) {
	switch Step(s) {
	case StepCart, StepDetails, StepPayment, StepConfirmation:
		return Step(s), nil
	}
	return "", errors.Wrapf(models.ErrInvalidInput, "unknown checkout step %q", s)
}

// PurchaseLine is one cart entry in the purchase payload
type PurchaseLine struct {
	ListingID string `json:"listingId"`
	Quantity  int    `json:"qty"`
}

// PurchaseRequest is the payload submitted to the purchase endpoint. The
// entire cart is submitted atomically in a single call.
type PurchaseRequest struct {
	Buyer   models.BuyerDetails   `json:"buyer"`
	Payment models.PaymentDetails `json:"payment"`
	Cart    []PurchaseLine        `json:"cart"`
}

// PurchaseResult is the successful response from the purchase endpoint
type PurchaseResult struct {
	IsNewUser bool   `json:"isNewUser"`
	Reference string `json:"reference,omitempty"`
}

// PurchaseService finalizes a cart into a paid booking
type PurchaseService interface {
	PurchaseStadiumTickets(ctx context.Context, req *PurchaseRequest) (*PurchaseResult, error)
}

// Session is the aggregate driving the multi-step purchase flow. One session
// exists per browser session; it lives in memory only and is reset when the
// buyer completes or abandons checkout.
//
// Forward transitions are cart → details → payment → confirmation, each with
// a precondition. Backward transitions exist only from details to cart and
// from payment to details. Confirmation is terminal: leaving it goes through
// CompleteAndReset.
type Session struct {
	mu sync.Mutex

	ID         string
	Step       Step
	Lines      []models.CartLine
	Buyer      models.BuyerDetails
	Payment    models.PaymentDetails
	Processing bool
	IsNewUser  bool
	Reference  string

	identity *models.Identity
}

// Snapshot is the serializable view of a session. Payment details are
// deliberately absent; only their validity and the cosmetic card brand are
// exposed.
type Snapshot struct {
	ID           string              `json:"id"`
	Step         Step                `json:"step"`
	Lines        []models.CartLine   `json:"lines"`
	Totals       Totals              `json:"totals"`
	Buyer        models.BuyerDetails `json:"buyer"`
	PaymentValid bool                `json:"paymentValid"`
	CardBrand    string              `json:"cardBrand,omitempty"`
	Processing   bool                `json:"processing"`
	IsNewUser    bool                `json:"isNewUser"`
	Reference    string              `json:"reference,omitempty"`
}

// NewSession creates a checkout session starting at the cart step. When an
// identity is supplied its name and email pre-fill the buyer details; the
// identity itself is never required to complete checkout.
func NewSession(id string, identity *models.Identity) *Session {
	s := &Session{
		ID:       id,
		Step:     StepCart,
		identity: identity,
	}
	if identity != nil {
		first, last := identity.SplitName()
		s.Buyer.FirstName = first
		s.Buyer.LastName = last
		s.Buyer.Email = identity.Email
	}
	return s
}

// AddToCart adds the requested quantity of a listing to the cart. A repeated
// add for the same listing increments the existing line instead of creating
// a second one, and the quantity is always clamped to the listing's
// availability.
func (s *Session) AddToCart(listing models.Listing, qty int) error {
	if qty < 1 {
		return errors.Wrap(models.ErrInvalidInput, "quantity must be at least 1")
	}
	if listing.TicketsAvailable < 1 {
		return models.ErrInsufficientStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Lines {
		if s.Lines[i].Listing.ID == listing.ID {
			s.Lines[i].Quantity = min(listing.TicketsAvailable, s.Lines[i].Quantity+qty)
			return nil
		}
	}
	s.Lines = append(s.Lines, models.CartLine{
		Listing:  listing,
		Quantity: min(qty, listing.TicketsAvailable),
	})
	return nil
}

// SetLineQuantity replaces a line's quantity, clamped to the listing's
// availability. A quantity below 1 removes the line.
func (s *Session) SetLineQuantity(listingID string, qty int) error {
	if qty < 1 {
		return s.RemoveLine(listingID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Lines {
		if s.Lines[i].Listing.ID == listingID {
			s.Lines[i].Quantity = min(qty, s.Lines[i].Listing.TicketsAvailable)
			return nil
		}
	}
	return models.ErrLineNotFound
}

// RemoveLine deletes a cart line
func (s *Session) RemoveLine(listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Lines {
		if s.Lines[i].Listing.ID == listingID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return nil
		}
	}
	return models.ErrLineNotFound
}

// Cart returns a copy of the cart lines
func (s *Session) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked()
}

func (s *Session) cartLocked() []models.CartLine {
	lines := make([]models.CartLine, len(s.Lines))
	copy(lines, s.Lines)
	return lines
}

// TicketCount returns the total number of tickets across all lines
func (s *Session) TicketCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.Lines {
		count += s.Lines[i].Quantity
	}
	return count
}

// Totals prices the current cart
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.Lines)
}

// SetBuyer replaces the buyer details. The fields stay free text until a
// forward transition validates them.
func (s *Session) SetBuyer(buyer models.BuyerDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Buyer = buyer
}

// SetPayment stores payment details after normalizing them the way the
// payment form does: card number grouped in fours, expiry as MM/YY, CVV
// digits only, cardholder name uppercased.
func (s *Session) SetPayment(payment models.PaymentDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Payment = models.PaymentDetails{
		CardNumber: FormatCardNumber(payment.CardNumber),
		Expiry:     FormatExpiry(payment.Expiry),
		CVV:        FormatCVV(payment.CVV),
		NameOnCard: strings.ToUpper(payment.NameOnCard),
	}
}

// Advance moves the session to the target step. Only edges of the step graph
// are permitted and each forward edge carries a precondition; payment to
// confirmation never happens here, only through SubmitPayment.
func (s *Session) Advance(target Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.Step == StepCart && target == StepDetails:
		if len(s.Lines) == 0 {
			return models.ErrCartEmpty
		}
	case s.Step == StepDetails && target == StepPayment:
		if err := s.Buyer.Validate(); err != nil {
			return err
		}
	case s.Step == StepDetails && target == StepCart:
		// always allowed
	case s.Step == StepPayment && target == StepDetails:
		if s.Processing {
			return models.ErrPurchaseInProgress
		}
	default:
		return errors.Wrapf(models.ErrInvalidTransition, "%s to %s", s.Step, target)
	}

	s.Step = target
	return nil
}

// SubmitPayment submits the cart, buyer and payment details to the purchase
// endpoint in a single atomic call. The processing flag serializes attempts:
// a second submission while one is outstanding fails immediately. On failure
// the session is left untouched so the buyer can correct and retry; on
// success the session moves to confirmation.
//
// The outbound call is shielded from caller cancellation: a charge in flight
// is never abandoned.
func (s *Session) SubmitPayment(ctx context.Context, svc PurchaseService) (*PurchaseResult, error) {
	s.mu.Lock()
	if s.Step != StepPayment {
		s.mu.Unlock()
		return nil, errors.Wrapf(models.ErrInvalidTransition, "%s to %s", s.Step, StepConfirmation)
	}
	if s.Processing {
		s.mu.Unlock()
		return nil, models.ErrPurchaseInProgress
	}
	if len(s.Lines) == 0 {
		s.mu.Unlock()
		return nil, models.ErrCartEmpty
	}
	if err := s.Buyer.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := s.Payment.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	req := &PurchaseRequest{
		Buyer:   s.Buyer,
		Payment: s.Payment,
		Cart:    make([]PurchaseLine, len(s.Lines)),
	}
	for i := range s.Lines {
		req.Cart[i] = PurchaseLine{
			ListingID: s.Lines[i].Listing.ID,
			Quantity:  s.Lines[i].Quantity,
		}
	}
	s.Processing = true
	s.mu.Unlock()

	result, err := svc.PurchaseStadiumTickets(context.WithoutCancel(ctx), req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Processing = false
	if err != nil {
		return nil, err
	}

	s.IsNewUser = result.IsNewUser
	s.Reference = result.Reference
	if s.Reference == "" {
		s.Reference = NewBookingReference()
	}
	s.Step = StepConfirmation
	return result, nil
}

// CompleteAndReset clears the entire aggregate and returns the session to
// the cart step. It reports whether the caller should redirect to the login
// page because the purchase created a new account for a buyer who was not
// signed in. While a purchase is in flight the reset is refused, like every
// other way of leaving the payment step; otherwise a submission resolving
// after the reset would land a confirmation on an empty aggregate.
func (s *Session) CompleteAndReset() (redirectToLogin bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Processing {
		return false, models.ErrPurchaseInProgress
	}

	redirectToLogin = s.IsNewUser && s.identity == nil

	s.Lines = nil
	s.Buyer = models.BuyerDetails{}
	s.Payment = models.PaymentDetails{}
	s.Step = StepCart
	s.IsNewUser = false
	s.Reference = ""
	return redirectToLogin, nil
}

// Snapshot returns the serializable view of the session
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:           s.ID,
		Step:         s.Step,
		Lines:        s.cartLocked(),
		Totals:       ComputeTotals(s.Lines),
		Buyer:        s.Buyer,
		PaymentValid: s.Payment.Validate() == nil,
		CardBrand:    CardBrand(s.Payment.CardNumber),
		Processing:   s.Processing,
		IsNewUser:    s.IsNewUser,
		Reference:    s.Reference,
	}
}

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingReference generates a local WC26 booking reference, used when
// the purchase endpoint does not supply one.
func NewBookingReference() string {
	buf := make([]byte, 6)
	for i := range buf {
		buf[i] = refAlphabet[mathrand.Intn(len(refAlphabet))]
	}
	return "WC26-" + string(buf)
}
