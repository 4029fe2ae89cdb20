package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stadium-ticketing-platform/internal/checkout"
	"stadium-ticketing-platform/internal/config"
	"stadium-ticketing-platform/internal/handlers"
	"stadium-ticketing-platform/internal/middleware"
	"stadium-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const (
	// sessionMaxIdle matches the cookie lifetime; a session nobody touched
	// for that long can no longer be reached by its cookie anyway.
	sessionMaxIdle   = 24 * time.Hour
	evictionInterval = 15 * time.Minute
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	if cfg.Server.Env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // one day; checkout state never outlives a browser session anyway
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	catalogService, purchaseService, identityService, hotelService, visaService := buildServices(cfg, logger)

	manager := checkout.NewManager()
	go func() {
		ticker := time.NewTicker(evictionInterval)
		defer ticker.Stop()
		for range ticker.C {
			if n := manager.EvictIdle(sessionMaxIdle); n > 0 {
				logger.WithField("evicted", n).Info("dropped idle checkout sessions")
			}
		}
	}()

	stadiumHandler := handlers.NewStadiumHandler(catalogService, logger)
	checkoutHandler := handlers.NewCheckoutHandler(manager, catalogService, purchaseService, identityService, sessionStore, logger)
	adminHandler := handlers.NewAdminHandler(catalogService, logger)
	hotelsHandler := handlers.NewHotelsHandler(hotelService, logger)
	visasHandler := handlers.NewVisasHandler(visaService, logger)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.Server.CORSOrigins

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(corsConfig))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/stadium/categories", stadiumHandler.ListCategories)
		r.Get("/stadium/tickets", stadiumHandler.ListTickets)

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutHandler.GetState)
			r.Post("/open", checkoutHandler.Open)
			r.Post("/cart", checkoutHandler.AddToCart)
			r.Put("/cart/{listingID}", checkoutHandler.UpdateLine)
			r.Delete("/cart/{listingID}", checkoutHandler.RemoveLine)
			r.Post("/buyer", checkoutHandler.SetBuyer)
			r.Post("/payment", checkoutHandler.SetPayment)
			r.Post("/advance", checkoutHandler.Advance)
			r.Post("/pay", checkoutHandler.Pay)
			r.Post("/complete", checkoutHandler.Complete)
		})

		r.Route("/admin/stadium/tickets", func(r chi.Router) {
			r.Post("/", adminHandler.CreateListing)
			r.Put("/{listingID}", adminHandler.UpdateListing)
			r.Delete("/{listingID}", adminHandler.DeleteListing)
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Post("/bookings", hotelsHandler.CreateBooking)
			r.Get("/bookings/user/{userID}", hotelsHandler.ListBookings)
		})

		r.Route("/visas", func(r chi.Router) {
			r.Post("/", visasHandler.Apply)
			r.Get("/", visasHandler.ListApplications)
			r.Get("/{applicationID}", visasHandler.GetApplication)
			r.Put("/{applicationID}", visasHandler.UpdateStatus)
			r.Delete("/{applicationID}", visasHandler.DeleteApplication)
		})
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

// buildServices wires the remote API clients, falling back to the in-memory
// mocks when no API base URL is configured
func buildServices(cfg *config.Config, logger *logrus.Logger) (
	services.CatalogServiceInterface,
	services.PurchaseServiceInterface,
	services.IdentityServiceInterface,
	services.HotelServiceInterface,
	services.VisaServiceInterface,
) {
	if cfg.API.BaseURL == "" {
		logger.Info("ticketing API: using in-memory mock services (no TICKETING_API_URL provided)")
		catalog := services.NewMockCatalogService()
		return catalog,
			services.NewMockPurchaseService(catalog),
			services.NewMockIdentityService(),
			services.NewMockHotelService(),
			services.NewMockVisaService()
	}

	logger.WithField("base_url", cfg.API.BaseURL).Info("ticketing API: using remote services")
	return services.NewCatalogService(services.CatalogConfig{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, logger),
		services.NewPurchaseAPIService(services.PurchaseConfig{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, logger),
		services.NewIdentityService(services.IdentityConfig{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}),
		services.NewHotelService(services.HotelConfig{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}),
		services.NewVisaService(services.VisaConfig{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout})
}
