package sound

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpeaker struct {
	played  []beep.Streamer
	inits   int
	beeps   int
	initErr error
}

func newTestPlayer(t *testing.T, dir string, opts ...Option) (*Player, *fakeSpeaker) {
	t.Helper()

	fs := &fakeSpeaker{}

	p := New(dir, opts...)
	p.start = func(beep.SampleRate) error {
		fs.inits++
		return fs.initErr
	}
	p.play = func(s beep.Streamer) {
		fs.played = append(fs.played, s)
	}
	p.fallback = func() error {
		fs.beeps++
		return nil
	}

	return p, fs
}

func writeWav(t *testing.T, path string, sr beep.SampleRate) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	defer f.Close()

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}

	require.NoError(t, wav.Encode(f, beep.Silence(int(sr)/10), format))
}

func TestPlayFromSoundsDir(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "bell.wav"), SampleRate)

	p, fs := newTestPlayer(t, dir)

	require.NoError(t, p.Play("bell"))
	require.NoError(t, p.Play("bell"))

	assert.Len(t, fs.played, 2)
	assert.Equal(t, 1, fs.inits)
	assert.Len(t, p.buffers, 1)
	assert.Zero(t, fs.beeps)
}

func TestPlayResamples(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "low.wav"), 22050)

	p, _ := newTestPlayer(t, dir)

	require.NoError(t, p.Play("low"))

	buf := p.buffers["low"]
	require.NotNil(t, buf)
	assert.Equal(t, SampleRate, buf.Format().SampleRate)
	assert.InDelta(t, int(SampleRate)/10, buf.Len(), 64)
}

func TestPlayExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.wav")
	writeWav(t, path, SampleRate)

	p, fs := newTestPlayer(t, "")

	require.NoError(t, p.Play(path))
	assert.Len(t, fs.played, 1)
}

func TestPlayAliases(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "chime.wav"), SampleRate)

	p, fs := newTestPlayer(t, dir,
		WithAlias("start", "chime"),
		WithAlias("pause", Off),
	)

	require.NoError(t, p.Play("start"))
	require.NoError(t, p.Play("pause"))
	require.NoError(t, p.Play(Off))

	assert.Len(t, fs.played, 1)
}

func TestPlayMuted(t *testing.T) {
	p, fs := newTestPlayer(t, t.TempDir(), WithMute(true))

	require.NoError(t, p.Play("bell"))

	assert.Empty(t, fs.played)
	assert.Zero(t, fs.beeps)
}

func TestPlayMissingFallsBackToBeep(t *testing.T) {
	p, fs := newTestPlayer(t, t.TempDir())

	err := p.Play("bell")

	assert.ErrorIs(t, err, errSoundNotFound)
	assert.Equal(t, 1, fs.beeps)
	assert.Empty(t, fs.played)
}

func TestPlayInvalidFormat(t *testing.T) {
	p, fs := newTestPlayer(t, t.TempDir())

	err := p.Play("song.aiff")

	assert.ErrorIs(t, err, errInvalidSoundFormat)
	assert.Zero(t, fs.beeps)
}

func TestPlaySpeakerFailure(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "bell.wav"), SampleRate)

	p, fs := newTestPlayer(t, dir)
	fs.initErr = errors.New("no audio device")

	assert.ErrorIs(t, p.Play("bell"), errSpeakerInit)
	assert.ErrorIs(t, p.Play("bell"), errSpeakerInit)
	assert.Equal(t, 1, fs.inits)
}

func TestList(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"bell10.ogg", "bell2.wav", "bell1.mp3", "bell2.ogg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.ogg"), 0o755))

	names, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"bell1", "bell2", "bell10"}, names)
}
