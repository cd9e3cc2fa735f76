package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saved-hub/domain/model"
	"saved-hub/domain/repository"
	"saved-hub/infrastructure/logger"
	"saved-hub/infrastructure/session"
)

const (
	sessionIDKey    = "session_id"
	sessionStateKey = "session_state"
)

// Session loads the caller's SessionState from the store (creating it with
// defaults on first touch) and persists it after the handler ran. The cookie
// only carries a signed session id.
func Session(store repository.ISessionStore, codec *session.CookieCodec, syncIntervalSeconds int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sid := ""
		if raw, err := ctx.Cookie(session.CookieName); err == nil {
			id, err := codec.Decode(raw)
			if err != nil {
				logger.GetLogger().WithField("error", err).Warn("Rejecting invalid session cookie")
			} else {
				sid = id
			}
		}

		var state *model.SessionState
		if sid != "" {
			var err error
			state, err = store.Get(ctx.Request.Context(), sid)
			if err != nil {
				logger.GetLogger().WithField("error", err).Error("Session store read failed")
			}
		}
		if sid == "" || state == nil {
			sid = uuid.NewString()
			state = model.NewSessionState()
			if syncIntervalSeconds > 0 {
				state.SyncIntervalSeconds = syncIntervalSeconds
			}
			if token, err := codec.Encode(sid); err == nil {
				ctx.SetCookie(session.CookieName, token, int(codec.TTL().Seconds()), "/", "", false, true)
			} else {
				logger.GetLogger().WithField("error", err).Error("Failed to sign session cookie")
			}
		}

		ctx.Set(sessionIDKey, sid)
		ctx.Set(sessionStateKey, state)
		ctx.Next()

		if err := store.Save(ctx.Request.Context(), sid, state); err != nil {
			logger.GetLogger().WithField("error", err).Error("Session store write failed")
		}
	}
}

// State returns the SessionState attached by the Session middleware.
func State(ctx *gin.Context) *model.SessionState {
	return ctx.MustGet(sessionStateKey).(*model.SessionState)
}
