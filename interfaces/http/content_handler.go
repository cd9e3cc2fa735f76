package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"saved-hub/interfaces/middleware"
	"saved-hub/usecase"
)

// IContentHandler serves the landing page, the login chooser and force sync.
type IContentHandler interface {
	Index(ctx *gin.Context)
	Login(ctx *gin.Context)
	ForceSync(ctx *gin.Context)
}

type contentHandler struct {
	contentUsecase usecase.IContentUsecase
}

// NewContentHandler creates the content handler.
func NewContentHandler(contentUsecase usecase.IContentUsecase) IContentHandler {
	return &contentHandler{contentUsecase: contentUsecase}
}

// Index handles GET /
func (h *contentHandler) Index(ctx *gin.Context) {
	state := middleware.State(ctx)
	h.contentUsecase.Sync(ctx.Request.Context(), state)

	if !state.Authenticated() {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}
	ctx.HTML(http.StatusOK, "content.html", gin.H{
		"YouTubeVideos": state.YouTubeItems,
		"RedditPosts":   state.RedditItems,
		"LastSyncTime":  time.Unix(state.LastSyncTime, 0).Format(time.ANSIC),
	})
}

// Login handles GET /login
func (h *contentHandler) Login(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", nil)
}

// ForceSync handles GET /sync: the timer is reset so the gate always refreshes.
func (h *contentHandler) ForceSync(ctx *gin.Context) {
	state := middleware.State(ctx)
	h.contentUsecase.ForceSync(ctx.Request.Context(), state)
	ctx.Redirect(http.StatusFound, "/")
}
