package engine

import (
	"encoding/json"
	"testing"

	"fluffy-fiesta/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func command(t *testing.T, action string, payload any) api.ClientCommand {
	t.Helper()
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		cmd.Payload = raw
	}
	return cmd
}

func TestDispatcher_Input(t *testing.T) {
	m := NewInputManager(2)
	d := NewDispatcher(m)

	_, err := d.Dispatch("s1", command(t, api.ActionInput, api.InputPayload{Slot: 1, Right: true, AxisY: 0.9}))
	require.NoError(t, err)

	p := m.Snapshot(0, nil).Players[1]
	assert.True(t, p.Right)
	assert.True(t, p.Jump())
}

func TestDispatcher_Errors(t *testing.T) {
	d := NewDispatcher(NewInputManager(2))

	tests := []struct {
		name string
		cmd  api.ClientCommand
		want error
	}{
		{"unknown action", api.ClientCommand{Action: "MOVE"}, ErrUnknownAction},
		{"slot beyond limit", command(t, api.ActionInput, api.InputPayload{Slot: api.MaxPlayers}), api.ErrBadSlot},
		{"negative slot", command(t, api.ActionAutopilot, api.AutopilotPayload{Slot: -1}), api.ErrBadSlot},
		{"slot not in game", command(t, api.ActionInput, api.InputPayload{Slot: 3}), ErrNoSuchSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Dispatch("s1", tt.cmd)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := d.Dispatch("s1", api.ClientCommand{Action: api.ActionInput, Payload: json.RawMessage(`{"slot":"x"}`)})
	assert.ErrorContains(t, err, "invalid payload format")

	_, err = d.Dispatch("s1", api.ClientCommand{Action: api.ActionInput})
	assert.ErrorContains(t, err, "invalid payload format")
}

func TestDispatcher_AutopilotAndPing(t *testing.T) {
	m := NewInputManager(1)
	d := NewDispatcher(m)

	res, err := d.Dispatch("s1", command(t, api.ActionAutopilot, api.AutopilotPayload{Slot: 0, Enabled: true}))
	require.NoError(t, err)
	assert.Equal(t, "autopilot on", res.Msg)
	assert.Equal(t, scriptedInput{}.Input(0, 7), m.Snapshot(7, scriptedInput{}).Players[0])

	res, err = d.Dispatch("s1", api.ClientCommand{Action: ActionPing})
	require.NoError(t, err)
	assert.Equal(t, "PONG", res.Msg)
}
