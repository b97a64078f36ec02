package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/trenthp/raiderCompanion/internal/http/auth"
	catalogHandler "github.com/trenthp/raiderCompanion/internal/http/catalog"
	correctionHandler "github.com/trenthp/raiderCompanion/internal/http/correction"
	stashHandler "github.com/trenthp/raiderCompanion/internal/http/stash"
	"github.com/trenthp/raiderCompanion/internal/http/stashimport"
)

func New(
	itemsV1 *catalogHandler.Handler,
	importV1 *stashimport.Handler,
	stashV1 *stashHandler.Handler,
	correctionsV1 *correctionHandler.Handler,
	authSecret []byte,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	requireUser := auth.Middleware(authSecret)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			itemsV1.Routes(r)
			r.With(requireUser).Post("/sync", itemsV1.Sync)
		})

		r.Route("/stash", func(r chi.Router) {
			r.Use(requireUser)

			r.Route("/import", importV1.Routes)
			stashV1.Routes(r)
		})

		r.Route("/corrections", func(r chi.Router) {
			r.Use(requireUser)
			correctionsV1.Routes(r)
		})
	})

	return router
}
