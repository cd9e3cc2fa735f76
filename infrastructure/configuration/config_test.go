package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Run("env_wins_over_config", func(t *testing.T) {
		t.Setenv("SAVED_HUB_TEST_KEY", "from-env")
		assert.Equal(t, "from-env", getConfigValue("from-config", "SAVED_HUB_TEST_KEY", "fallback"))
	})

	t.Run("config_wins_over_default", func(t *testing.T) {
		assert.Equal(t, "from-config", getConfigValue("from-config", "SAVED_HUB_UNSET_KEY", "fallback"))
	})

	t.Run("placeholder_config_is_ignored", func(t *testing.T) {
		assert.Equal(t, "fallback", getConfigValue("YOUR_CLIENT_ID", "SAVED_HUB_UNSET_KEY", "fallback"))
	})

	t.Run("default_when_nothing_set", func(t *testing.T) {
		assert.Equal(t, "fallback", getConfigValue("", "SAVED_HUB_UNSET_KEY", "fallback"))
	})
}

func TestGetRedditConfig(t *testing.T) {
	t.Setenv("REDDIT_CLIENT_ID", "cid")
	t.Setenv("REDDIT_CLIENT_SECRET", "csecret")

	cfg, err := GetRedditConfig()
	require.NoError(t, err)

	assert.Equal(t, "cid", cfg.ClientID)
	assert.Equal(t, "csecret", cfg.ClientSecret)
	assert.Contains(t, cfg.RedirectURL, "/reddit-callback")
	assert.NotEmpty(t, cfg.UserAgent)
}

func TestGetRedditConfig_MissingCredentials(t *testing.T) {
	t.Setenv("REDDIT_CLIENT_ID", "")
	t.Setenv("REDDIT_CLIENT_SECRET", "")
	C.Reddit.ClientID = ""
	C.Reddit.ClientSecret = ""

	_, err := GetRedditConfig()
	assert.Error(t, err)
}

func TestGetYouTubeConfig(t *testing.T) {
	t.Setenv("YOUTUBE_CLIENT_SECRET_JSON", `{"installed":{"client_id":"cid"}}`)

	cfg, err := GetYouTubeConfig()
	require.NoError(t, err)

	assert.Equal(t, `{"installed":{"client_id":"cid"}}`, cfg.ClientSecretJSON)
	assert.Contains(t, cfg.RedirectURL, "/youtube-callback")
}

func TestGetYouTubeConfig_MissingSecret(t *testing.T) {
	t.Setenv("YOUTUBE_CLIENT_SECRET_JSON", "")
	C.YouTube.ClientSecretJSON = ""

	_, err := GetYouTubeConfig()
	assert.Error(t, err)
}

func TestLoadEnvFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	content := "# comment line\nSAVED_HUB_FILE_KEY=from-file\nSAVED_HUB_QUOTED=\"quoted value\"\nSAVED_HUB_EXISTING=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SAVED_HUB_EXISTING", "from-env")
	defer func() {
		os.Unsetenv("SAVED_HUB_FILE_KEY")
		os.Unsetenv("SAVED_HUB_QUOTED")
	}()

	LoadEnvFromFile(path, filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "from-file", os.Getenv("SAVED_HUB_FILE_KEY"))
	assert.Equal(t, "quoted value", os.Getenv("SAVED_HUB_QUOTED"))
	assert.Equal(t, "from-env", os.Getenv("SAVED_HUB_EXISTING"), "existing env vars are not overridden")
}
