package http

import (
	"net/http"

	"github.com/flavorvault/recipe-service/internal/application"
	"github.com/flavorvault/recipe-service/internal/catalog"
	"github.com/flavorvault/recipe-service/internal/ports"
	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP adapter entrypoint.
// It depends on the application service for everything stateful and on the
// token codec only for the session cookie round-trip.
type Handler struct {
	service      *application.Service
	catalog      *catalog.Catalog
	codec        ports.SessionTokenCodec
	secureCookie bool
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service, cat *catalog.Catalog, codec ports.SessionTokenCodec, secureCookie bool) *Handler {
	return &Handler{service: service, catalog: cat, codec: codec, secureCookie: secureCookie}
}

// NewRouter registers the HTTP routes and middleware stack.
// Centralizing routes here keeps session and error behavior consistent
// across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Get("/recipes", handler.listRecipes)
	r.Get("/recipes/{recipe_id}", handler.getRecipe)

	r.Group(func(r chi.Router) {
		r.Use(handler.sessionMiddleware)

		r.Post("/register", handler.register)
		r.Post("/login", handler.login)
		r.Post("/send-2fa-code", handler.sendCode)
		r.Post("/verify-2fa", handler.verifyCode)
		r.Post("/logout", handler.logout)
		r.Get("/session", handler.session)

		r.Get("/shopping-list", handler.listShopping)
		r.Post("/shopping-list", handler.addShoppingEntry)
		r.Put("/shopping-list/{entry_id}", handler.updateShoppingEntry)
		r.Delete("/shopping-list/{entry_id}", handler.removeShoppingEntry)
	})

	return r
}
