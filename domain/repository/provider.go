package repository

import (
	"context"

	"saved-hub/domain/model"
)

// IProviderAuth is the per-provider OAuth2 adapter: it builds the consent URL,
// exchanges the callback code for a credential, and wraps a credential into an
// authenticated fetcher.
type IProviderAuth interface {
	// AuthorizationURL returns the consent-screen URL plus the anti-forgery
	// state the callback must echo back.
	AuthorizationURL() (authURL string, state string, err error)
	// Exchange trades the authorization code for a credential over HTTPS.
	Exchange(ctx context.Context, code string) (*model.Credential, error)
	// NewFetcher wraps the credential into a ready-to-call API client scoped
	// to the saved-content listing the sync needs.
	NewFetcher(ctx context.Context, cred *model.Credential) (model.SavedFetcher, error)
}
