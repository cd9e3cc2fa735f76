package youtube

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"saved-hub/domain/model"
	"saved-hub/domain/repository"
	"saved-hub/infrastructure/configuration"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"
)

const (
	maxSavedItems  = 10
	watchURLFormat = "https://www.youtube.com/watch?v=%s"
)

// Auth is the YouTube OAuth2 adapter. The oauth config is parsed from the
// Google client-secret document on every call; the document is materialized
// into a temp file scoped to that call.
type Auth struct {
	clientSecretJSON []byte
	redirectURL      string

	// endpoint overrides the YouTube API base URL; used by tests.
	endpoint string
}

var _ repository.IProviderAuth = (*Auth)(nil)

// NewAuth creates the YouTube auth adapter from configuration.
func NewAuth(cfg *configuration.YouTubeConfig) *Auth {
	return &Auth{
		clientSecretJSON: []byte(cfg.ClientSecretJSON),
		redirectURL:      cfg.RedirectURL,
	}
}

// AuthorizationURL builds the consent-screen URL and a fresh anti-forgery
// state token the callback must echo back.
func (a *Auth) AuthorizationURL() (string, string, error) {
	conf, err := a.oauthConfig()
	if err != nil {
		return "", "", err
	}
	state := randomState()
	authURL := conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
	return authURL, state, nil
}

// Exchange trades the callback code for a credential.
func (a *Auth) Exchange(ctx context.Context, code string) (*model.Credential, error) {
	conf, err := a.oauthConfig()
	if err != nil {
		return nil, err
	}
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrAuthExchangeFailed, err)
	}
	return model.CredentialFromToken(tok, conf.Scopes), nil
}

// NewFetcher wraps the credential into a youtube.Service scoped to listing
// the user's liked videos.
func (a *Auth) NewFetcher(ctx context.Context, cred *model.Credential) (model.SavedFetcher, error) {
	conf, err := a.oauthConfig()
	if err != nil {
		return nil, err
	}
	opts := []option.ClientOption{option.WithTokenSource(conf.TokenSource(ctx, cred.Token()))}
	if a.endpoint != "" {
		opts = append(opts, option.WithEndpoint(a.endpoint))
	}
	service, err := youtubeapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Fetcher{service: service}, nil
}

// oauthConfig parses the client-secret document through a temp file that is
// removed on every exit path.
func (a *Auth) oauthConfig() (*oauth2.Config, error) {
	path, err := writeTempClientSecret(a.clientSecretJSON)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file: %w", err)
	}
	conf, err := google.ConfigFromJSON(data, youtubeapi.YoutubeReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret JSON: %w", err)
	}
	conf.RedirectURL = a.redirectURL
	return conf, nil
}

// writeTempClientSecret materializes the client-secret document for the config
// parser. The caller removes the returned path.
func writeTempClientSecret(data []byte) (string, error) {
	f, err := os.CreateTemp("", "client_secret_*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create client secret file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write client secret file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to close client secret file: %w", err)
	}
	return f.Name(), nil
}

func randomState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

// Fetcher lists the authenticated user's liked videos.
type Fetcher struct {
	service *youtubeapi.Service
}

var _ model.SavedFetcher = (*Fetcher)(nil)

// FetchSaved returns up to 10 liked videos in API order.
func (f *Fetcher) FetchSaved(ctx context.Context) ([]model.SavedItem, error) {
	resp, err := f.service.Videos.List([]string{"snippet"}).
		MyRating("like").
		MaxResults(maxSavedItems).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list liked videos: %v", model.ErrFetchFailed, err)
	}
	return savedItemsFromVideos(resp.Items)
}

// savedItemsFromVideos normalizes API videos. One video without a snippet or
// default thumbnail voids the whole batch; the caller degrades that panel to
// an empty list.
func savedItemsFromVideos(videos []*youtubeapi.Video) ([]model.SavedItem, error) {
	items := make([]model.SavedItem, 0, len(videos))
	for _, v := range videos {
		if v.Snippet == nil || v.Snippet.Thumbnails == nil || v.Snippet.Thumbnails.Default == nil {
			return nil, fmt.Errorf("%w: video %q missing snippet or default thumbnail", model.ErrFetchFailed, v.Id)
		}
		items = append(items, model.SavedItem{
			Title:    v.Snippet.Title,
			URL:      fmt.Sprintf(watchURLFormat, v.Id),
			Subtitle: v.Snippet.Thumbnails.Default.Url,
		})
		if len(items) == maxSavedItems {
			break
		}
	}
	return items, nil
}
