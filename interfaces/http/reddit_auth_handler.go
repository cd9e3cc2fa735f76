package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"saved-hub/domain/repository"
	"saved-hub/infrastructure/logger"
	"saved-hub/interfaces/middleware"
	"saved-hub/usecase"
)

// IRedditAuthHandler implements the Reddit OAuth2 routes.
type IRedditAuthHandler interface {
	Login(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type redditAuthHandler struct {
	auth           repository.IProviderAuth
	contentUsecase usecase.IContentUsecase
}

// NewRedditAuthHandler creates the Reddit auth handler.
func NewRedditAuthHandler(auth repository.IProviderAuth, contentUsecase usecase.IContentUsecase) IRedditAuthHandler {
	return &redditAuthHandler{auth: auth, contentUsecase: contentUsecase}
}

// Login handles GET /reddit-login. Reddit's flow uses a fixed state literal,
// so nothing is stored in the session.
func (h *redditAuthHandler) Login(ctx *gin.Context) {
	authURL, _, err := h.auth.AuthorizationURL()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to build Reddit authorization URL")
		ctx.String(http.StatusInternalServerError, "Error: Reddit login unavailable")
		return
	}
	ctx.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /reddit-callback?code.
func (h *redditAuthHandler) Callback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		ctx.String(http.StatusBadRequest, "Error: Missing code parameter")
		return
	}

	cred, err := h.auth.Exchange(ctx.Request.Context(), code)
	if err != nil {
		ctx.String(http.StatusBadRequest, "Reddit login failed: %v", err)
		return
	}
	state := middleware.State(ctx)
	state.RedditCredential = cred

	fetcher, err := h.auth.NewFetcher(context.Background(), cred)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to build Reddit client from fresh credential")
	} else {
		state.RedditFetcher = fetcher
	}

	h.contentUsecase.Sync(ctx.Request.Context(), state)
	ctx.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout-reddit. YouTube state is untouched.
func (h *redditAuthHandler) Logout(ctx *gin.Context) {
	middleware.State(ctx).ClearReddit()
	ctx.Redirect(http.StatusFound, "/")
}
