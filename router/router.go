package router

import (
	"go-auth-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(authHandler *handler.AuthHandler, userHandler *handler.UserHandler, authMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.Handler())

	mux.Handle("/auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("/auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))

	mux.Handle("/user/info", authMiddleware(handler.ErrorHandlingMiddleware(userHandler.Info)))

	return mux
}
