package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"saved-hub/domain/model"
	"saved-hub/domain/repository"
	"saved-hub/infrastructure/configuration"

	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"
)

const (
	defaultAuthURL  = "https://www.reddit.com/api/v1/authorize"
	defaultTokenURL = "https://www.reddit.com/api/v1/access_token"
	defaultAPIBase  = "https://oauth.reddit.com"

	// Reddit performs no server-side state matching for this flow; the
	// authorization request carries a fixed literal.
	fixedState = "uniqueKey"

	maxSavedItems = 10
)

var scopes = []string{"identity", "read", "save"}

// Auth is the Reddit OAuth2 adapter. Reddit's token endpoint requires HTTP
// basic auth and rejects requests without a descriptive User-Agent.
type Auth struct {
	clientID     string
	clientSecret string
	redirectURL  string
	userAgent    string

	// overridable for tests
	authURL  string
	tokenURL string
	apiBase  string
}

var _ repository.IProviderAuth = (*Auth)(nil)

// NewAuth creates the Reddit auth adapter from configuration.
func NewAuth(cfg *configuration.RedditConfig) *Auth {
	return &Auth{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURL:  cfg.RedirectURL,
		userAgent:    cfg.UserAgent,
		authURL:      defaultAuthURL,
		tokenURL:     defaultTokenURL,
		apiBase:      defaultAPIBase,
	}
}

// AuthorizationURL builds the consent URL with the fixed state literal and a
// temporary-duration grant.
func (a *Auth) AuthorizationURL() (string, string, error) {
	authURL := a.oauthConfig().AuthCodeURL(fixedState,
		oauth2.SetAuthURLParam("duration", "temporary"),
	)
	return authURL, fixedState, nil
}

// Exchange trades the callback code for a credential.
func (a *Auth) Exchange(ctx context.Context, code string) (*model.Credential, error) {
	tok, err := a.oauthConfig().Exchange(a.withUserAgent(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrAuthExchangeFailed, err)
	}
	return model.CredentialFromToken(tok, scopes), nil
}

// NewFetcher wraps the credential into an authenticated client against the
// Reddit OAuth API host.
func (a *Auth) NewFetcher(ctx context.Context, cred *model.Credential) (model.SavedFetcher, error) {
	client := a.oauthConfig().Client(a.withUserAgent(ctx), cred.Token())
	return &Fetcher{client: client, apiBase: a.apiBase}, nil
}

func (a *Auth) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		RedirectURL:  a.redirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   a.authURL,
			TokenURL:  a.tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// withUserAgent makes the oauth2 package route its HTTP calls through a
// client that sets the configured User-Agent.
func (a *Auth) withUserAgent(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
		Transport: userAgentTransport{agent: a.userAgent},
	})
}

type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.agent)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}

// Fetcher lists the authenticated user's saved posts.
type Fetcher struct {
	client  *http.Client
	apiBase string
}

var _ model.SavedFetcher = (*Fetcher)(nil)

// savedListingParams is the query string for the saved-content listing.
type savedListingParams struct {
	Limit   int `url:"limit"`
	RawJSON int `url:"raw_json"`
}

type identity struct {
	Name string `json:"name"`
}

type savedListing struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data struct {
				Title     string `json:"title"`
				Permalink string `json:"permalink"`
				Subreddit string `json:"subreddit"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchSaved returns up to 10 saved submissions in listing order. Saved
// comments carry no title and are skipped.
func (f *Fetcher) FetchSaved(ctx context.Context) ([]model.SavedItem, error) {
	var me identity
	if err := f.getJSON(ctx, f.apiBase+"/api/v1/me", &me); err != nil {
		return nil, fmt.Errorf("%w: identity lookup: %v", model.ErrFetchFailed, err)
	}
	if me.Name == "" {
		return nil, fmt.Errorf("%w: identity response missing name", model.ErrFetchFailed)
	}

	params, err := query.Values(savedListingParams{Limit: maxSavedItems, RawJSON: 1})
	if err != nil {
		return nil, fmt.Errorf("%w: encode listing params: %v", model.ErrFetchFailed, err)
	}
	var listing savedListing
	listingURL := fmt.Sprintf("%s/user/%s/saved?%s", f.apiBase, me.Name, params.Encode())
	if err := f.getJSON(ctx, listingURL, &listing); err != nil {
		return nil, fmt.Errorf("%w: saved listing: %v", model.ErrFetchFailed, err)
	}

	items := make([]model.SavedItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Data.Title == "" {
			continue
		}
		items = append(items, model.SavedItem{
			Title:    child.Data.Title,
			URL:      "https://reddit.com" + child.Data.Permalink,
			Subtitle: child.Data.Subreddit,
		})
		if len(items) == maxSavedItems {
			break
		}
	}
	return items, nil
}

func (f *Fetcher) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
