package sound

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/logging"
)

// DefaultSampleRate is the speaker output rate; decoded sounds are resampled to it
const DefaultSampleRate = beep.SampleRate(44100)

// resampleQuality is passed to beep.Resample
const resampleQuality = 4

// SpeakerSystem implements ports.AudioSystem by decoding sounds into memory
// and mixing them on the default output device
type SpeakerSystem struct {
	buffers     map[domain.Handle]*beep.Buffer
	initSpeaker func(beep.SampleRate, int) error
	initialized bool
	mu          sync.Mutex
	next        domain.Handle
	play        func(...beep.Streamer)
	sampleRate  beep.SampleRate
}

// NewSpeakerSystem creates a SpeakerSystem. The output device is opened
// when the first handle is created.
func NewSpeakerSystem() *SpeakerSystem {
	return &SpeakerSystem{
		buffers:     make(map[domain.Handle]*beep.Buffer),
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		sampleRate:  DefaultSampleRate,
	}
}

// CreateHandle decodes the resource into a buffer
func (s *SpeakerSystem) CreateHandle(resource domain.Resource) (domain.Handle, error) {
	if err := s.ensureSpeaker(); err != nil {
		return 0, err
	}

	buffer, err := s.decode(resource)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.buffers[s.next] = buffer

	logging.Logger.Debug("Decoded sound into buffer",
		"sound", resource.Descriptor.ID(),
		"samples", buffer.Len(),
		"handle", s.next)
	return s.next, nil
}

// Play queues the buffer on the speaker mixer and returns immediately
func (s *SpeakerSystem) Play(handle domain.Handle) {
	s.mu.Lock()
	buffer, ok := s.buffers[handle]
	s.mu.Unlock()
	if !ok {
		logging.Logger.Warn("Play called with unknown handle", "handle", handle)
		return
	}
	s.play(buffer.Streamer(0, buffer.Len()))
}

// Dispose drops the buffer. Sounds already playing finish normally.
func (s *SpeakerSystem) Dispose(handle domain.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buffers[handle]; !ok {
		return fmt.Errorf("unknown handle %d", handle)
	}
	delete(s.buffers, handle)
	return nil
}

// Close stops all playback
func (s *SpeakerSystem) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Clear()
	}
	return nil
}

func (s *SpeakerSystem) ensureSpeaker() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := s.initSpeaker(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *SpeakerSystem) decode(resource domain.Resource) (*beep.Buffer, error) {
	f, err := resource.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", resource.Location, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(resource.Descriptor.Extension) {
	case "wav":
		streamer, format, err = wav.Decode(f)
	case "mp3":
		streamer, format, err = mp3.Decode(f)
	case "ogg", "oga":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", resource.Descriptor.Extension)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", resource.Location, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != s.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, s.sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  s.sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buffer.Append(source)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", resource.Location, err)
	}
	return buffer, nil
}
