package model

import (
	"time"

	"golang.org/x/oauth2"
)

// SavedItem is the normalized shape every fetched piece of content is converted
// into before display. Subtitle carries the default thumbnail URL for videos and
// the subreddit name for posts.
type SavedItem struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Subtitle string `json:"subtitle"`
}

// Credential holds the token material needed to authenticate subsequent API
// calls to one provider. Only this narrow shape is ever put into the session
// store; API client objects are rebuilt from it on demand.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
	Scopes       []string  `json:"scopes,omitempty"`
}

// CredentialFromToken narrows an oauth2 token into the session representation.
func CredentialFromToken(tok *oauth2.Token, scopes []string) *Credential {
	return &Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
		Scopes:       scopes,
	}
}

// Token rebuilds the oauth2 token the API clients expect.
func (c *Credential) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
		Expiry:       c.Expiry,
	}
}
