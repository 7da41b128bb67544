package sound

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chime/internal/adapters/resources"
	"github.com/renato0307/chime/internal/domain"
)

// newTestSpeaker returns a SpeakerSystem that never touches an output device
func newTestSpeaker(played *[]beep.Streamer) *SpeakerSystem {
	s := NewSpeakerSystem()
	s.initSpeaker = func(beep.SampleRate, int) error { return nil }
	s.play = func(streamers ...beep.Streamer) {
		*played = append(*played, streamers...)
	}
	return s
}

func TestSpeakerSystem_Lifecycle(t *testing.T) {
	var played []beep.Streamer
	s := newTestSpeaker(&played)

	resource, err := resources.Embedded().Locate(domain.NewDescriptor("click", "wav"))
	require.NoError(t, err)

	handle, err := s.CreateHandle(resource)
	require.NoError(t, err)
	assert.NotZero(t, handle)
	assert.Positive(t, s.buffers[handle].Len())

	s.Play(handle)
	require.Len(t, played, 1)

	require.NoError(t, s.Dispose(handle))
	assert.Error(t, s.Dispose(handle))

	// Unknown handles are ignored
	s.Play(handle)
	assert.Len(t, played, 1)
}

func TestSpeakerSystem_ResamplesToOutputRate(t *testing.T) {
	var played []beep.Streamer
	s := newTestSpeaker(&played)

	// The embedded effects are 22050 Hz mono, output is 44100 Hz
	resource, err := resources.Embedded().Locate(domain.NewDescriptor("pop", "wav"))
	require.NoError(t, err)

	handle, err := s.CreateHandle(resource)
	require.NoError(t, err)

	buffer := s.buffers[handle]
	assert.Equal(t, DefaultSampleRate, buffer.Format().SampleRate)
	assert.Equal(t, 2, buffer.Format().NumChannels)
}

func TestSpeakerSystem_InitializesOnce(t *testing.T) {
	var played []beep.Streamer
	s := newTestSpeaker(&played)
	calls := 0
	s.initSpeaker = func(beep.SampleRate, int) error {
		calls++
		return nil
	}

	source := resources.Embedded()
	for _, name := range []string{"click", "pop"} {
		resource, err := source.Locate(domain.NewDescriptor(name, "wav"))
		require.NoError(t, err)
		_, err = s.CreateHandle(resource)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, calls)
}

func TestSpeakerSystem_InitFailure(t *testing.T) {
	var played []beep.Streamer
	s := newTestSpeaker(&played)
	s.initSpeaker = func(beep.SampleRate, int) error { return errors.New("no audio device") }

	resource, err := resources.Embedded().Locate(domain.NewDescriptor("click", "wav"))
	require.NoError(t, err)

	_, err = s.CreateHandle(resource)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audio device")
}

func TestSpeakerSystem_DecodeErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"garbage.wav": {Data: []byte("not a wave file")},
		"notes.txt":   {Data: []byte("hello")},
	}

	tests := []struct {
		name string
		d    domain.Descriptor
	}{
		{"corrupt wav", domain.NewDescriptor("garbage", "wav")},
		{"unsupported extension", domain.NewDescriptor("notes", "txt")},
		{"missing file", domain.NewDescriptor("missing", "wav")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var played []beep.Streamer
			s := newTestSpeaker(&played)

			_, err := s.CreateHandle(domain.Resource{Descriptor: tt.d, FS: fsys, Location: tt.d.ID()})
			require.Error(t, err)
			assert.Empty(t, s.buffers)
		})
	}
}
