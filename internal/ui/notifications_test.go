package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationManager_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	nm := NewNotificationManager()
	nm.now = func() time.Time { return now }

	nm.SetMessage("Config reloaded")
	require.NotNil(t, nm.Active())
	assert.Contains(t, nm.RenderBanner(40), "Config reloaded")

	now = now.Add(notificationTTL + time.Second)
	assert.Nil(t, nm.Active())
	nm.Expire()
	assert.Nil(t, nm.active)
	assert.Empty(t, nm.RenderBanner(40))
}

func TestNotificationManager_Error(t *testing.T) {
	nm := NewNotificationManager()
	nm.SetError("boom")
	n := nm.Active()
	require.NotNil(t, n)
	assert.True(t, n.IsError)
}
