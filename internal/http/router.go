package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jihopark/moneydash/internal/auth"
	assetHandler "github.com/jihopark/moneydash/internal/http/asset"
	authHandler "github.com/jihopark/moneydash/internal/http/authgate"
	"github.com/jihopark/moneydash/internal/http/importcsv"
	reportHandler "github.com/jihopark/moneydash/internal/http/report"
	spendingHandler "github.com/jihopark/moneydash/internal/http/spending"
	thoughtHandler "github.com/jihopark/moneydash/internal/http/thought"
)

func New(
	authSvc *auth.Service,
	loginV1 *authHandler.Handler,
	assetsV1 *assetHandler.Handler,
	summaryV1 *reportHandler.Handler,
	thoughtsV1 *thoughtHandler.Handler,
	spendingV1 *spendingHandler.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The web dashboard is served from a separate origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	router.Route("/api/auth", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		loginV1.Routes(r)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authSvc.Middleware)

		r.Route("/assets", func(r chi.Router) {
			assetsV1.Routes(r)
		})

		r.Route("/summary", func(r chi.Router) {
			summaryV1.Routes(r)
		})

		r.Route("/thoughts", func(r chi.Router) {
			thoughtsV1.Routes(r)
		})

		r.Route("/spending-plans", func(r chi.Router) {
			spendingV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
