package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTray_Toggle(t *testing.T) {
	tr := New()
	require.True(t, tr.IsEnabled(), "tray should start enabled")

	var got []bool
	tr.OnToggle(func(enabled bool) { got = append(got, enabled) })

	tr.handleToggle()
	tr.handleToggle()

	assert.True(t, tr.IsEnabled(), "two toggles leave the tray enabled")
	assert.Equal(t, []bool{false, true}, got)
}

func TestTray_UpdatesBeforeReady(t *testing.T) {
	tr := New()
	tr.SetStatus("Gesture: PINCH")
	tr.SetBlockCount(3)

	assert.Equal(t, "Gesture: PINCH", tr.status)
	assert.Equal(t, 3, tr.blocks)
}

func TestTitles(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{toggleTitle(true), "● Enabled"},
		{toggleTitle(false), "○ Disabled"},
		{statusTitle(""), "Status: idle"},
		{statusTitle("No Hand Detected"), "Status: No Hand Detected"},
		{blocksTitle(0), "0 blocks"},
		{blocksTitle(1), "1 block"},
		{blocksTitle(12), "12 blocks"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}
