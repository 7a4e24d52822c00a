// Package sound plays cue sounds found in the sounds directory or given as
// file paths.
package sound

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/cadence/internal/pathutil"
)

// Off disables a sound wherever a sound name is accepted.
const Off = "off"

// SampleRate is the rate the speaker runs at. Sounds recorded at another rate
// are resampled when they are loaded.
const SampleRate beep.SampleRate = 44100

const resampleQuality = 4

// Exts lists the supported sound formats in lookup order.
var Exts = []string{".ogg", ".mp3", ".flac", ".wav"}

type (
	// Player plays cues. It is safe for concurrent use.
	Player struct {
		aliases  map[string]string
		buffers  map[string]*beep.Buffer
		start    func(beep.SampleRate) error
		play     func(beep.Streamer)
		fallback func() error
		startErr error
		dir      string
		mu       sync.Mutex
		once     sync.Once
		muted    bool
	}

	// Option configures a Player.
	Option func(*Player)
)

// WithAlias makes cue play the named sound. An empty name or Off silences
// the cue.
func WithAlias(cue, name string) Option {
	return func(p *Player) {
		p.aliases[cue] = name
	}
}

// WithMute silences every cue.
func WithMute(muted bool) Option {
	return func(p *Player) {
		p.muted = muted
	}
}

// New returns a player that looks up sound names in dir.
func New(dir string, opts ...Option) *Player {
	p := &Player{
		dir:     dir,
		aliases: make(map[string]string),
		buffers: make(map[string]*beep.Buffer),
		start:   initSpeaker,
		play: func(s beep.Streamer) {
			speaker.Play(s)
		},
		fallback: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func initSpeaker(sr beep.SampleRate) error {
	bufferSize := 10

	return speaker.Init(sr, sr.N(time.Second/time.Duration(bufferSize)))
}

// Play starts playing cue and returns without waiting for it to finish.
// When the sound cannot be found a terminal beep is sounded in its place
// and the lookup error is returned.
func (p *Player) Play(cue string) error {
	name := p.resolveName(cue)
	if p.muted || name == "" {
		return nil
	}

	buf, err := p.load(name)
	if errors.Is(err, errSoundNotFound) {
		_ = p.fallback()
		return err
	}

	if err != nil {
		return err
	}

	p.once.Do(func() {
		p.startErr = p.start(SampleRate)
	})

	if p.startErr != nil {
		return errSpeakerInit.Wrap(p.startErr)
	}

	p.play(buf.Streamer(0, buf.Len()))

	return nil
}

// Preload decodes the named cues ahead of playback. Sounds that fail to
// load are skipped and reported when they are played.
func (p *Player) Preload(cues ...string) {
	for _, cue := range cues {
		name := p.resolveName(cue)
		if name == "" {
			continue
		}

		_, _ = p.load(name)
	}
}

func (p *Player) resolveName(cue string) string {
	name := cue
	if alias, ok := p.aliases[cue]; ok {
		name = alias
	}

	if name == Off {
		return ""
	}

	return name
}

// load returns the decoded buffer for name, decoding it on first use.
func (p *Player) load(name string) (*beep.Buffer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if buf, ok := p.buffers[name]; ok {
		return buf, nil
	}

	path, err := p.Path(name)
	if err != nil {
		return nil, err
	}

	buf, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	p.buffers[name] = buf

	return buf, nil
}

// Path resolves a sound name to a file. Names with an extension are treated
// as file paths, anything else is looked up in the sounds directory.
func (p *Player) Path(name string) (string, error) {
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		if !slices.Contains(Exts, ext) {
			return "", errInvalidSoundFormat.Fmt(name)
		}

		if _, err := os.Stat(name); err != nil {
			return "", errSoundNotFound.Fmt(name, filepath.Dir(name)).Wrap(err)
		}

		return name, nil
	}

	for _, ext := range Exts {
		path := filepath.Join(p.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errSoundNotFound.Fmt(name, p.dir)
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errDecodeSound.Fmt(path).Wrap(err)
	}

	defer f.Close()

	stream, format, err := decode(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, errDecodeSound.Fmt(path).Wrap(err)
	}

	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, stream)
	}

	format.SampleRate = SampleRate

	buf := beep.NewBuffer(format)
	buf.Append(s)

	return buf, nil
}

func decode(
	rc io.ReadCloser,
	ext string,
) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".ogg":
		return vorbis.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	case ".flac":
		return flac.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	}

	return nil, beep.Format{}, errInvalidSoundFormat.Fmt(ext)
}

// List returns the names of the sounds in dir in natural order.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || !slices.Contains(Exts, ext) {
			continue
		}

		name := pathutil.StripExtension(e.Name())
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}
