package config_test

import (
	"testing"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")

		cfg, err := config.Parse()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, 300*time.Second, cfg.CacheTTL)
		assert.Equal(t, 3*time.Second, cfg.DB.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, "cc_session", cfg.Session.CookieName)
		assert.Equal(t, []string{"/dashboard", "/admin", "/agent"}, cfg.Session.ProtectedPrefixes)
		assert.False(t, cfg.Sheet.Enabled())
	})

	t.Run("separate sheet sets", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("SHEET_ID", "default-sheet")
		t.Setenv("SHEET_SERVICE_ACCOUNT_EMAIL", "svc@example.iam")
		t.Setenv("SHEET_PRIVATE_KEY", "key")
		t.Setenv("AGENT_SHEET_ID", "agent-sheet")
		t.Setenv("AGENT_SHEET_NAME", "Improvements")

		cfg, err := config.Parse()
		require.NoError(t, err)

		assert.True(t, cfg.Sheet.Enabled())
		assert.Equal(t, "default-sheet", cfg.Sheet.ID)
		assert.Equal(t, "agent-sheet", cfg.AgentSheet.ID)
		assert.Equal(t, "Improvements", cfg.AgentSheet.Name)
		assert.False(t, cfg.AgentSheet.Enabled())
	})

	t.Run("missing session secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := config.Parse()
		assert.Error(t, err)
	})
}
