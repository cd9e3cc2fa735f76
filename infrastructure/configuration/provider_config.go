package configuration

import (
	"fmt"
	"os"
	"strings"
)

// YouTubeConfig carries what the YouTube auth adapter needs: the raw Google
// client-secret document plus the callback URL registered for it.
type YouTubeConfig struct {
	ClientSecretJSON string
	RedirectURL      string
}

// RedditConfig carries the Reddit OAuth client registration. Reddit rejects
// requests without a descriptive User-Agent, so it is part of the config.
type RedditConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	UserAgent    string
}

// GetYouTubeConfig returns the YouTube configuration from the JSON config with
// environment variable fallback.
func GetYouTubeConfig() (*YouTubeConfig, error) {
	config := &YouTubeConfig{
		ClientSecretJSON: getConfigValue(C.YouTube.ClientSecretJSON, "YOUTUBE_CLIENT_SECRET_JSON", ""),
		RedirectURL:      getConfigValue(C.YouTube.RedirectURI, "YOUTUBE_REDIRECT_URL", defaultRedirect("youtube-callback")),
	}
	if config.ClientSecretJSON == "" {
		return nil, fmt.Errorf("YOUTUBE_CLIENT_SECRET_JSON not set")
	}
	return config, nil
}

// GetRedditConfig returns the Reddit configuration from the JSON config with
// environment variable fallback.
func GetRedditConfig() (*RedditConfig, error) {
	config := &RedditConfig{
		ClientID:     getConfigValue(C.Reddit.ClientID, "REDDIT_CLIENT_ID", ""),
		ClientSecret: getConfigValue(C.Reddit.ClientSecret, "REDDIT_CLIENT_SECRET", ""),
		RedirectURL:  getConfigValue(C.Reddit.RedirectURI, "REDDIT_REDIRECT_URL", defaultRedirect("reddit-callback")),
		UserAgent:    getConfigValue(C.Reddit.UserAgent, "REDDIT_USER_AGENT", "saved-hub/1.0"),
	}
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, fmt.Errorf("REDDIT_CLIENT_ID / REDDIT_CLIENT_SECRET not set")
	}
	return config, nil
}

func defaultRedirect(path string) string {
	scheme := "http"
	if C.App.TLSEnabled {
		scheme = "https"
	}
	port := C.App.Port
	if port == 0 {
		port = 10001
	}
	return fmt.Sprintf("%s://localhost:%d/%s", scheme, port, path)
}

// getConfigValue gets value from environment first, then config, then default.
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
