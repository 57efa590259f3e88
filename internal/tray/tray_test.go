package tray

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/nosleep/internal/execstate"
	"github.com/five82/nosleep/internal/state"
	"github.com/five82/nosleep/internal/toggles"
)

func TestIcon_IsSinglePNGIco(t *testing.T) {
	for _, active := range []bool{true, false} {
		data, err := Icon(active)
		require.NoError(t, err)
		require.Greater(t, len(data), 22)

		le := binary.LittleEndian
		assert.Equal(t, uint16(0), le.Uint16(data[0:2]))
		assert.Equal(t, uint16(1), le.Uint16(data[2:4]))
		assert.Equal(t, uint16(1), le.Uint16(data[4:6]))
		assert.Equal(t, byte(iconSize), data[6])
		assert.Equal(t, byte(iconSize), data[7])

		size := le.Uint32(data[14:18])
		offset := le.Uint32(data[18:22])
		require.Equal(t, uint32(22), offset)
		require.Equal(t, int(size), len(data)-22)

		img, err := png.Decode(bytes.NewReader(data[offset:]))
		require.NoError(t, err)
		assert.Equal(t, iconSize, img.Bounds().Dx())
	}
}

func TestIcon_StatesDiffer(t *testing.T) {
	active, err := Icon(true)
	require.NoError(t, err)
	inactive, err := Icon(false)
	require.NoError(t, err)
	assert.NotEqual(t, active, inactive)
}

func TestTooltip(t *testing.T) {
	assert.Equal(t, "NoSleep: inactive", Tooltip("NoSleep", state.Snapshot{}))

	armed := state.Snapshot{Armed: true, Mask: execstate.Default}
	assert.Equal(t, "NoSleep: keeping the system awake", Tooltip("NoSleep", armed))

	armed.Mask = execstate.FromPreferences(true)
	assert.Equal(t, "NoSleep: keeping the system and screen awake", Tooltip("NoSleep", armed))

	armed.ConsecutiveFailures = 3
	assert.Equal(t, "NoSleep: active, but the last 3 requests failed", Tooltip("NoSleep", armed))
}

func TestTooltip_Truncated(t *testing.T) {
	got := Tooltip(strings.Repeat("x", 200), state.Snapshot{})
	assert.Len(t, []rune(got), maxTooltip)
}

func TestOptions_Validate(t *testing.T) {
	assert.Error(t, Options{}.validate())
}

func TestRun_UnsupportedPlatform(t *testing.T) {
	if Supported {
		t.Skip("tray available on this platform")
	}
	err := Run(t.Context(), Options{})
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestMenuEntries(t *testing.T) {
	labels := []string{toggles.LabelEnabled, toggles.LabelDisplay, toggles.LabelRemember, toggles.LabelAutostart}
	for i, e := range menuEntries {
		assert.Equal(t, labels[i], e.label)
	}
	assert.Equal(t, toggles.HintDisplay, menuEntries[1].hint, "keep screen on carries its hint")
}
