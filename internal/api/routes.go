package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog/pkg/middleware"
)

// RegisterRoutes wires the handlers under rg, which is expected to be the
// "/api" group. Gates run in order: authentication first, then the admin
// check where required.
func RegisterRoutes(rg *gin.RouterGroup, auth *AuthHandler, movies *MovieHandler, watchlist *WatchlistHandler, mw *middleware.AuthMiddleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", mw.RequireAuth(), auth.Me)
	}

	movieGroup := rg.Group("/movies")
	{
		movieGroup.POST("", mw.RequireAuth(), mw.RequireAdmin(), movies.Create)
		movieGroup.POST("/import", mw.RequireAuth(), mw.RequireAdmin(), movies.Import)
		movieGroup.GET("", mw.RequireAuth(), movies.List)
		movieGroup.GET("/:id", mw.RequireAuth(), movies.Find)
		movieGroup.PUT("/:id", mw.RequireAuth(), mw.RequireAdmin(), movies.Update)
		movieGroup.DELETE("/:id", mw.RequireAuth(), mw.RequireAdmin(), movies.Delete)

		movieGroup.POST("/:id/reviews", mw.RequireAuth(), movies.AddReview)
		movieGroup.GET("/:id/reviews", movies.Reviews)
	}

	watchlistGroup := rg.Group("/watchlist")
	{
		watchlistGroup.POST("", mw.RequireAuth(), mw.RequireAdmin(), watchlist.Add)
		watchlistGroup.DELETE("/:movie", mw.RequireAuth(), mw.RequireAdmin(), watchlist.Remove)
		watchlistGroup.GET("", mw.RequireAuth(), watchlist.List)
	}
}
