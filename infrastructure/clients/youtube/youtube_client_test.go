package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	youtubeapi "google.golang.org/api/youtube/v3"

	"saved-hub/domain/model"
	"saved-hub/infrastructure/configuration"
)

func clientSecretJSON(tokenURL string) string {
	return fmt.Sprintf(`{"installed":{"client_id":"cid","client_secret":"csec","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"%s","redirect_uris":["http://localhost"]}}`,
		tokenURL)
}

func testAuth(tokenURL string) *Auth {
	return NewAuth(&configuration.YouTubeConfig{
		ClientSecretJSON: clientSecretJSON(tokenURL),
		RedirectURL:      "http://localhost:10001/youtube-callback",
	})
}

func tempSecretCount(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "client_secret_*.json"))
	require.NoError(t, err)
	return len(matches)
}

func TestAuthorizationURL(t *testing.T) {
	before := tempSecretCount(t)

	authURL, state, err := testAuth("https://oauth2.googleapis.com/token").AuthorizationURL()
	require.NoError(t, err)

	assert.NotEmpty(t, state)
	assert.Contains(t, authURL, "access_type=offline")
	assert.Contains(t, authURL, "include_granted_scopes=true")
	assert.Contains(t, authURL, "youtube.readonly")
	assert.Contains(t, authURL, "youtube-callback")

	assert.Equal(t, before, tempSecretCount(t), "temp client-secret file is removed")
}

func TestAuthorizationURL_StateIsFreshPerCall(t *testing.T) {
	auth := testAuth("https://oauth2.googleapis.com/token")

	_, first, err := auth.AuthorizationURL()
	require.NoError(t, err)
	_, second, err := auth.AuthorizationURL()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestOauthConfig_BadSecretRemovesTempFile(t *testing.T) {
	before := tempSecretCount(t)

	auth := NewAuth(&configuration.YouTubeConfig{ClientSecretJSON: "not json"})
	_, _, err := auth.AuthorizationURL()

	assert.Error(t, err)
	assert.Equal(t, before, tempSecretCount(t), "temp file is removed on the error path too")
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer","expires_in":3600}`)
	}))
	defer srv.Close()

	cred, err := testAuth(srv.URL).Exchange(context.Background(), "code-1")
	require.NoError(t, err)

	assert.Equal(t, "at-1", cred.AccessToken)
	assert.Equal(t, "rt-1", cred.RefreshToken)
	assert.Equal(t, []string{youtubeapi.YoutubeReadonlyScope}, cred.Scopes)
}

func TestExchange_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testAuth(srv.URL).Exchange(context.Background(), "bad-code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAuthExchangeFailed))
}

func video(id, title, thumb string) *youtubeapi.Video {
	v := &youtubeapi.Video{
		Id: id,
		Snippet: &youtubeapi.VideoSnippet{
			Title:      title,
			Thumbnails: &youtubeapi.ThumbnailDetails{},
		},
	}
	if thumb != "" {
		v.Snippet.Thumbnails.Default = &youtubeapi.Thumbnail{Url: thumb}
	}
	return v
}

func TestSavedItemsFromVideos(t *testing.T) {
	items, err := savedItemsFromVideos([]*youtubeapi.Video{
		video("abc", "First", "https://i.ytimg.com/vi/abc/default.jpg"),
		video("def", "Second", "https://i.ytimg.com/vi/def/default.jpg"),
	})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, model.SavedItem{
		Title:    "First",
		URL:      "https://www.youtube.com/watch?v=abc",
		Subtitle: "https://i.ytimg.com/vi/abc/default.jpg",
	}, items[0])
}

func TestSavedItemsFromVideos_MissingThumbnailVoidsWholeBatch(t *testing.T) {
	items, err := savedItemsFromVideos([]*youtubeapi.Video{
		video("abc", "First", "https://i.ytimg.com/vi/abc/default.jpg"),
		video("def", "No thumb", ""),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrFetchFailed))
	assert.Nil(t, items, "one incomplete video voids the whole fetch")
}

func TestSavedItemsFromVideos_CapsAtTen(t *testing.T) {
	videos := make([]*youtubeapi.Video, 0, 15)
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("vid%d", i)
		videos = append(videos, video(id, id, "https://i.ytimg.com/"+id))
	}

	items, err := savedItemsFromVideos(videos)
	require.NoError(t, err)
	assert.Len(t, items, 10)
}

func TestWriteTempClientSecret(t *testing.T) {
	path, err := writeTempClientSecret([]byte(`{"installed":{}}`))
	require.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"installed":{}}`, string(data))
}
