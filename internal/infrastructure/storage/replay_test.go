package storage

import (
	"bytes"
	"path/filepath"
	"testing"

	"fluffy-fiesta/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *domain.ReplaySession {
	return &domain.ReplaySession{
		ID:        "7f9c0b9e-2d1f-4a43-9a55-3c1d2b8f0e11",
		Seed:      -42,
		Players:   2,
		Level:     "example",
		Timestamp: 1700000000,
		Digest:    0xdeadbeefcafe,
		Frames: []domain.ReplayFrame{
			{Tick: 0, Dt: 1.0 / 60, Input: domain.InputSnapshot{Players: []domain.PlayerInput{
				{Left: true, Fire: true},
				{AxisX: 0.5, AxisY: -1},
			}}},
			{Tick: 1, Dt: 1.0 / 60, Input: domain.InputSnapshot{Players: []domain.PlayerInput{
				{Right: true, Up: true, Down: true},
				{},
			}}},
		},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := sampleSession()

	require.NoError(t, writeBinary(&buf, in))

	out, err := readBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Zero(t, buf.Len(), "reader must consume the whole stream")
}

func TestReadBinary_BadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, sampleSession()))

	raw := buf.Bytes()
	copy(raw, "CDRP")

	_, err := readBinary(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestReadBinary_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, sampleSession()))

	raw := buf.Bytes()
	_, err := readBinary(bytes.NewReader(raw[:len(raw)-3]))
	assert.Error(t, err)
}

func TestReplayService_SaveLoad(t *testing.T) {
	svc, err := NewReplayService(filepath.Join(t.TempDir(), "nested", "replays"))
	require.NoError(t, err)

	in := sampleSession()
	path, err := svc.Save(in)
	require.NoError(t, err)
	assert.Equal(t, Extension, filepath.Ext(path))

	out, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
