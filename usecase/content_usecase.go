package usecase

import (
	"context"
	"time"

	"saved-hub/domain/model"
	"saved-hub/domain/repository"
	"saved-hub/infrastructure/logger"
)

// IContentUsecase is the sync gate: it decides whether cached content is
// refreshed and performs the per-provider fetches.
type IContentUsecase interface {
	// Sync refreshes both providers' cached item lists when the session's
	// sync interval has elapsed. Fresh sessions are a no-op.
	Sync(ctx context.Context, state *model.SessionState)
	// ForceSync resets the sync timer and refreshes regardless of elapsed time.
	ForceSync(ctx context.Context, state *model.SessionState)
}

// ContentUsecase implements the sync gate over the two provider adapters.
type ContentUsecase struct {
	youtubeAuth repository.IProviderAuth
	redditAuth  repository.IProviderAuth
	now         func() time.Time
}

// NewContentUsecase creates the sync gate. Either adapter may be nil when
// that provider is not configured.
func NewContentUsecase(youtubeAuth, redditAuth repository.IProviderAuth) *ContentUsecase {
	return &ContentUsecase{
		youtubeAuth: youtubeAuth,
		redditAuth:  redditAuth,
		now:         time.Now,
	}
}

// WithClock overrides the time source (fluent, used by tests).
func (u *ContentUsecase) WithClock(now func() time.Time) *ContentUsecase {
	u.now = now
	return u
}

func (u *ContentUsecase) Sync(ctx context.Context, state *model.SessionState) {
	now := u.now().Unix()
	if now-state.LastSyncTime < state.SyncIntervalSeconds {
		return
	}

	u.ensureFetchers(ctx, state)
	// Each provider syncs independently; one provider's absence or failure
	// never blocks the other.
	if state.YouTubeFetcher != nil {
		state.YouTubeItems = u.fetch(ctx, "youtube", state.YouTubeFetcher)
	}
	if state.RedditFetcher != nil {
		state.RedditItems = u.fetch(ctx, "reddit", state.RedditFetcher)
	}
	state.LastSyncTime = now
}

func (u *ContentUsecase) ForceSync(ctx context.Context, state *model.SessionState) {
	state.LastSyncTime = 0
	u.Sync(ctx, state)
}

// fetch applies the fail-soft contract: any fetch error degrades that
// provider's panel to an empty list and is never propagated.
func (u *ContentUsecase) fetch(ctx context.Context, provider string, fetcher model.SavedFetcher) []model.SavedItem {
	items, err := fetcher.FetchSaved(ctx)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"provider": provider,
			"error":    err,
		}).Warn("Fetch failed; serving empty list")
		return []model.SavedItem{}
	}
	return items
}

// ensureFetchers rebuilds client handles from stored credentials after the
// session was loaded from a store that does not keep them (e.g. Redis).
func (u *ContentUsecase) ensureFetchers(ctx context.Context, state *model.SessionState) {
	if state.YouTubeFetcher == nil && state.YouTubeCredential != nil && u.youtubeAuth != nil {
		f, err := u.youtubeAuth.NewFetcher(ctx, state.YouTubeCredential)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to rebuild YouTube client from credential")
		} else {
			state.YouTubeFetcher = f
		}
	}
	if state.RedditFetcher == nil && state.RedditCredential != nil && u.redditAuth != nil {
		f, err := u.redditAuth.NewFetcher(ctx, state.RedditCredential)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to rebuild Reddit client from credential")
		} else {
			state.RedditFetcher = f
		}
	}
}
