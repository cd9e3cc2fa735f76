package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "saved-hub/interfaces/http"
	"saved-hub/web"
)

// InitiateRouter wires the routes. sessionMiddleware attaches SessionState to
// every request; handlers never touch the cookie themselves.
func InitiateRouter(
	contentHandler httpHandler.IContentHandler,
	youtubeAuthHandler httpHandler.IYouTubeAuthHandler,
	redditAuthHandler httpHandler.IRedditAuthHandler,
	sessionMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:10001", "https://localhost:10001"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.SetHTMLTemplate(web.Templates())
	router.Use(sessionMiddleware)

	router.GET("/", contentHandler.Index)
	router.GET("/login", contentHandler.Login)
	router.GET("/sync", contentHandler.ForceSync)

	if youtubeAuthHandler != nil {
		router.GET("/youtube-login", youtubeAuthHandler.Login)
		router.GET("/youtube-callback", youtubeAuthHandler.Callback)
		router.GET("/logout-youtube", youtubeAuthHandler.Logout)
	}
	if redditAuthHandler != nil {
		router.GET("/reddit-login", redditAuthHandler.Login)
		router.GET("/reddit-callback", redditAuthHandler.Callback)
		router.GET("/logout-reddit", redditAuthHandler.Logout)
	}

	return router
}
