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

// IYouTubeAuthHandler implements the YouTube OAuth2 routes.
type IYouTubeAuthHandler interface {
	Login(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type youtubeAuthHandler struct {
	auth           repository.IProviderAuth
	contentUsecase usecase.IContentUsecase
}

// NewYouTubeAuthHandler creates the YouTube auth handler.
func NewYouTubeAuthHandler(auth repository.IProviderAuth, contentUsecase usecase.IContentUsecase) IYouTubeAuthHandler {
	return &youtubeAuthHandler{auth: auth, contentUsecase: contentUsecase}
}

// Login handles GET /youtube-login: stores the anti-forgery state and sends
// the user to the consent screen.
func (h *youtubeAuthHandler) Login(ctx *gin.Context) {
	authURL, state, err := h.auth.AuthorizationURL()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to build YouTube authorization URL")
		ctx.String(http.StatusInternalServerError, "Error: YouTube login unavailable")
		return
	}
	middleware.State(ctx).PendingAuthState = state
	ctx.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /youtube-callback?code&state.
func (h *youtubeAuthHandler) Callback(ctx *gin.Context) {
	code := ctx.Query("code")
	callbackState := ctx.Query("state")
	if code == "" || callbackState == "" {
		ctx.String(http.StatusBadRequest, "Error: Missing code or state parameter")
		return
	}

	state := middleware.State(ctx)
	if state.PendingAuthState == "" || state.PendingAuthState != callbackState {
		ctx.String(http.StatusBadRequest, "Error: OAuth state mismatch")
		return
	}

	cred, err := h.auth.Exchange(ctx.Request.Context(), code)
	if err != nil {
		ctx.String(http.StatusBadRequest, "Error: YouTube login failed: %v", err)
		return
	}
	state.PendingAuthState = ""
	state.YouTubeCredential = cred

	// The fetcher outlives this request, so it is not tied to the request context.
	fetcher, err := h.auth.NewFetcher(context.Background(), cred)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to build YouTube client from fresh credential")
	} else {
		state.YouTubeFetcher = fetcher
	}

	h.contentUsecase.Sync(ctx.Request.Context(), state)
	ctx.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout-youtube. Reddit state is untouched.
func (h *youtubeAuthHandler) Logout(ctx *gin.Context) {
	middleware.State(ctx).ClearYouTube()
	ctx.Redirect(http.StatusFound, "/")
}
