package router

import (
	"net/http"

	"homzen/internal/handlers"
	"homzen/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func New(database storage.Database, cache storage.Cache, tokens handlers.TokenConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(handlers.RequestLogger)

	auth := func(next http.Handler) http.Handler {
		return handlers.AuthorizationMiddleware(next, tokens.Secret)
	}
	admin := func(next http.Handler) http.Handler {
		return auth(handlers.AdminOnly(next, database))
	}
	agent := func(next http.Handler) http.Handler {
		return auth(handlers.AgentOnly(next, database))
	}

	router.HandleFunc(`/`, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`homzen server is running`))
	}).Methods(`GET`)

	router.Handle(`/jwt`, handlers.JWTHandler(tokens)).Methods(`POST`)

	// properties
	router.Handle(`/properties`, handlers.GetVerifiedPropertiesHandler(database, cache)).Methods(`GET`)
	router.Handle(`/properties/all`, admin(handlers.GetAllPropertiesHandler(database))).Methods(`GET`)
	router.Handle(`/properties/agent/{email}`, agent(handlers.GetAgentPropertiesHandler(database))).Methods(`GET`)
	router.Handle(`/properties/{id}`, handlers.GetPropertyHandler(database)).Methods(`GET`)
	router.Handle(`/properties`, agent(handlers.PropertyCreateHandler(database))).Methods(`POST`)
	router.Handle(`/property/verification-status/{id}`, admin(handlers.VerificationStatusHandler(database, cache))).Methods(`PATCH`)
	router.Handle(`/properties/{id}`, agent(handlers.PropertyUpdateHandler(database, cache))).Methods(`PATCH`)
	router.Handle(`/properties/{id}`, agent(handlers.PropertyDeleteHandler(database, cache))).Methods(`DELETE`)

	// users
	router.Handle(`/users/admin`, admin(handlers.GetUsersHandler(database))).Methods(`GET`)
	router.Handle(`/users/role/{email}`, auth(handlers.UserRoleHandler(database))).Methods(`GET`)
	router.Handle(`/users`, handlers.UserCreateHandler(database)).Methods(`POST`)
	router.Handle(`/user/status/{id}`, admin(handlers.UserStatusHandler(database, cache))).Methods(`PATCH`)
	router.Handle(`/user/{id}`, admin(handlers.UserDeleteHandler(database))).Methods(`DELETE`)

	// wishlist
	router.Handle(`/wishlist/id/{id}`, auth(handlers.GetWishlistItemHandler(database))).Methods(`GET`)
	router.Handle(`/wishlist/{email}`, auth(handlers.GetWishlistHandler(database))).Methods(`GET`)
	router.Handle(`/wishlist`, auth(handlers.WishlistCreateHandler(database))).Methods(`POST`)
	router.Handle(`/wishlist/{id}`, auth(handlers.WishlistDeleteHandler(database))).Methods(`DELETE`)

	// offers
	router.Handle(`/offer/agent/{email}`, agent(handlers.GetAgentOffersHandler(database))).Methods(`GET`)
	router.Handle(`/offer/{email}`, auth(handlers.GetBuyerOffersHandler(database))).Methods(`GET`)
	router.Handle(`/offer`, auth(handlers.OfferCreateHandler(database))).Methods(`POST`)
	router.Handle(`/offer/status/{id}`, agent(handlers.OfferStatusHandler(database))).Methods(`PATCH`)
	router.Handle(`/offer/{id}`, auth(handlers.OfferDeleteHandler(database))).Methods(`DELETE`)

	// reviews
	router.Handle(`/reviews`, handlers.GetReviewsHandler(database)).Methods(`GET`)
	router.Handle(`/reviews/email/{email}`, auth(handlers.GetReviewerReviewsHandler(database))).Methods(`GET`)
	router.Handle(`/reviews/{id}`, handlers.GetPropertyReviewsHandler(database)).Methods(`GET`)
	router.Handle(`/reviews`, auth(handlers.ReviewCreateHandler(database))).Methods(`POST`)
	router.Handle(`/reviews/{id}`, auth(handlers.ReviewDeleteHandler(database))).Methods(`DELETE`)

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{`*`},
		AllowedMethods:   []string{`GET`, `POST`, `DELETE`, `OPTIONS`, `PATCH`, `PUT`},
		AllowedHeaders:   []string{`Content-Type`, `Authorization`},
		AllowCredentials: true,
	}).Handler(router)

	return handler
}
