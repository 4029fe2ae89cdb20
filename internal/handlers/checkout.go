package handlers

import (
	"net/http"

	"stadium-ticketing-platform/internal/checkout"
	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const (
	sessionName          = "wc26_session"
	sessionKeyCheckoutID = "checkout_id"
)

// CheckoutHandler drives the multi-step purchase flow. Each browser session
// owns exactly one checkout session, looked up through the session cookie.
type CheckoutHandler struct {
	manager  *checkout.Manager
	catalog  services.CatalogServiceInterface
	purchase services.PurchaseServiceInterface
	identity services.IdentityServiceInterface
	store    sessions.Store
	logger   *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	manager *checkout.Manager,
	catalog services.CatalogServiceInterface,
	purchase services.PurchaseServiceInterface,
	identity services.IdentityServiceInterface,
	store sessions.Store,
	logger *logrus.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		manager:  manager,
		catalog:  catalog,
		purchase: purchase,
		identity: identity,
		store:    store,
		logger:   logger,
	}
}

// session returns the caller's checkout session, creating it (and the
// cookie binding) when absent. The identity is only applied to new sessions.
func (h *CheckoutHandler) session(w http.ResponseWriter, r *http.Request, identity *models.Identity) (*checkout.Session, error) {
	cookieSession, _ := h.store.Get(r, sessionName)

	id, _ := cookieSession.Values[sessionKeyCheckoutID].(string)
	if id == "" {
		id = checkout.NewSessionID()
		cookieSession.Values[sessionKeyCheckoutID] = id
		if err := cookieSession.Save(r, w); err != nil {
			return nil, err
		}
	}
	return h.manager.GetOrCreate(id, identity), nil
}

// GetState returns the current checkout snapshot
func (h *CheckoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// Open starts (or resumes) a checkout session. When the caller is
// authenticated, the profile pre-fills the buyer details on a fresh session.
func (h *CheckoutHandler) Open(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	// The body is optional; anonymous checkout is fully supported.
	_ = decodeJSON(r, &body)

	var identity *models.Identity
	if token := bearerToken(r); token != "" && body.UserID != "" {
		profile, err := h.identity.GetProfile(r.Context(), token, body.UserID)
		if err != nil {
			h.logger.WithError(err).Warn("could not load profile for buyer prefill")
		} else {
			identity = profile
		}
	}

	sess, err := h.session(w, r, identity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// AddToCart adds a listing to the cart. The listing is resolved against the
// catalog so the quantity clamp always uses the latest known availability.
func (h *CheckoutHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ListingID string `json:"listingId"`
		Qty       int    `json:"qty"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing, err := h.catalog.FindStadiumTicket(r.Context(), body.ListingID)
	if err != nil {
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}

	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	if err := sess.AddToCart(*listing, body.Qty); err != nil {
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// UpdateLine replaces a cart line's quantity; a quantity below 1 removes it
func (h *CheckoutHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Qty int `json:"qty"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	if err := sess.SetLineQuantity(chi.URLParam(r, "listingID"), body.Qty); err != nil {
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// RemoveLine deletes a cart line
func (h *CheckoutHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	if err := sess.RemoveLine(chi.URLParam(r, "listingID")); err != nil {
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// SetBuyer stores buyer details. They stay free text here; validation
// happens on the transition to the payment step.
func (h *CheckoutHandler) SetBuyer(w http.ResponseWriter, r *http.Request) {
	var buyer models.BuyerDetails
	if err := decodeJSON(r, &buyer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	sess.SetBuyer(buyer)
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// SetPayment stores payment details. The snapshot reports only validity and
// the cosmetic card brand; card data itself is never echoed back.
func (h *CheckoutHandler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.PaymentDetails
	if err := decodeJSON(r, &payment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	sess.SetPayment(payment)
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// Advance moves the checkout to the requested step
func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Step string `json:"step"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	step, err := checkout.ParseStep(body.Step)
	if err != nil {
		respondError(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	if err := sess.Advance(step); err != nil {
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// payResponse is the reply for a successful purchase. Listings carry the
// refreshed catalog so sold quantities reflect server state.
type payResponse struct {
	Session  checkout.Snapshot `json:"session"`
	Listings []*models.Listing `json:"listings,omitempty"`
}

// Pay submits the purchase. Failures leave the session untouched so the
// buyer can correct and retry; the server-provided message is passed through.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	if _, err := sess.SubmitPayment(r.Context(), h.purchase); err != nil {
		h.logger.WithError(err).Warn("purchase attempt failed")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}

	resp := payResponse{Session: sess.Snapshot()}
	listings, err := h.catalog.ListStadiumTickets(r.Context())
	if err != nil {
		// The purchase already succeeded; a stale catalog is not an error.
		h.logger.WithError(err).Warn("catalog refresh after purchase failed")
	} else {
		resp.Listings = listings
	}
	respondJSON(w, http.StatusOK, resp)
}

// completeResponse signals whether the caller should route to login because
// the purchase created a new account
type completeResponse struct {
	RedirectToLogin bool `json:"redirectToLogin"`
}

// Complete resets the checkout aggregate after the confirmation step. A
// reset is refused while a purchase is still in flight.
func (h *CheckoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(w, r, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	redirect, err := sess.CompleteAndReset()
	if err != nil {
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, completeResponse{RedirectToLogin: redirect})
}
