package main

import (
	"strings"
	"testing"

	"github.com/edup2p/orchid/orchid"
	"github.com/edup2p/orchid/types/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetControls(t *testing.T) {
	input = orchid.InputState{}

	assert.NoError(t, setControls([]string{"up", "fire"}, true))
	assert.Equal(t, orchid.InputState{Up: true, Fire: true}, input)

	assert.NoError(t, setControls([]string{"up"}, false))
	assert.Equal(t, orchid.InputState{Fire: true}, input)

	assert.ErrorContains(t, setControls([]string{"jump"}, true), `"jump"`)
}

func TestParseRoomKey(t *testing.T) {
	k := key.NewRoom()
	text, err := k.MarshalText()
	require.NoError(t, err)

	got, err := parseRoomKey(string(text) + "\n")
	require.NoError(t, err)
	assert.True(t, got.Equal(k))

	_, err = parseRoomKey("room:" + strings.Repeat("00", key.Len))
	assert.ErrorIs(t, err, orchid.ErrZeroRoomKey)

	_, err = parseRoomKey("nonsense")
	assert.Error(t, err)
}
