package model

import "context"

// DefaultSyncIntervalSeconds is how long cached content stays fresh.
const DefaultSyncIntervalSeconds int64 = 60

// SavedFetcher retrieves up to a fixed number of the user's saved items from
// one provider. Implementations live in infrastructure/clients.
type SavedFetcher interface {
	FetchSaved(ctx context.Context) ([]SavedItem, error)
}

// SessionState is the per-session state mutated by every route handler.
// Credentials and cached items serialize into the session store; the fetcher
// handles are in-memory only and get rebuilt from the credentials when absent.
type SessionState struct {
	YouTubeCredential   *Credential `json:"youtube_credential,omitempty"`
	RedditCredential    *Credential `json:"reddit_credential,omitempty"`
	YouTubeItems        []SavedItem `json:"youtube_items"`
	RedditItems         []SavedItem `json:"reddit_items"`
	LastSyncTime        int64       `json:"last_sync_time"`
	SyncIntervalSeconds int64       `json:"sync_interval_seconds"`
	PendingAuthState    string      `json:"pending_auth_state,omitempty"`

	YouTubeFetcher SavedFetcher `json:"-"`
	RedditFetcher  SavedFetcher `json:"-"`
}

// NewSessionState applies the defaults a first-touch session gets.
func NewSessionState() *SessionState {
	return &SessionState{
		YouTubeItems:        []SavedItem{},
		RedditItems:         []SavedItem{},
		SyncIntervalSeconds: DefaultSyncIntervalSeconds,
	}
}

// Authenticated reports whether at least one provider has a credential.
func (s *SessionState) Authenticated() bool {
	return s.YouTubeCredential != nil || s.RedditCredential != nil
}

// ClearYouTube drops the YouTube credential, client handle and cached items.
// Reddit state is untouched.
func (s *SessionState) ClearYouTube() {
	s.YouTubeCredential = nil
	s.YouTubeFetcher = nil
	s.YouTubeItems = []SavedItem{}
}

// ClearReddit drops the Reddit credential, client handle and cached items.
// YouTube state is untouched.
func (s *SessionState) ClearReddit() {
	s.RedditCredential = nil
	s.RedditFetcher = nil
	s.RedditItems = []SavedItem{}
}
