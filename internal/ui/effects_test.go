package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chime/internal/domain"
)

// eventLog records plays and model calls in order
type eventLog []string

type recordingPlayer struct {
	log *eventLog
}

func (p recordingPlayer) Play(d domain.Descriptor) {
	*p.log = append(*p.log, "play "+d.ID())
}

type stubModel struct {
	log  *eventLog
	view string
}

func (m *stubModel) Init() tea.Cmd {
	*m.log = append(*m.log, "init")
	return func() tea.Msg { return "initialized" }
}

func (m *stubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	*m.log = append(*m.log, "update")
	return m, nil
}

func (m *stubModel) View() string {
	return m.view
}

var testSound = domain.NewDescriptor("click", "wav")

func TestPlayOnAppear_PlaysBeforeInit(t *testing.T) {
	var log eventLog
	inner := &stubModel{log: &log, view: "hello"}

	model := PlayOnAppear(inner, recordingPlayer{&log}, testSound)
	cmd := model.Init()

	require.NotNil(t, cmd)
	assert.Equal(t, "initialized", cmd())
	assert.Equal(t, eventLog{"play click.wav", "init"}, log)
	assert.Equal(t, "hello", model.View())
}

func TestPlayOnAppear_UpdatesDelegateWithoutPlaying(t *testing.T) {
	var log eventLog
	inner := &stubModel{log: &log}
	model := PlayOnAppear(inner, recordingPlayer{&log}, testSound)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 80})

	assert.Same(t, model, updated)
	assert.Equal(t, eventLog{"update", "update"}, log)
	assert.Same(t, inner, updated.(*appearEffect).Unwrap())
}

func TestPlayOnTap(t *testing.T) {
	enter := key.NewBinding(key.WithKeys("enter"))

	tests := []struct {
		name     string
		opts     []TapOption
		msg      tea.Msg
		wantPlay bool
	}{
		{
			name:     "left button release",
			msg:      tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
			wantPlay: true,
		},
		{
			name: "left button press",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		},
		{
			name: "right button release",
			msg:  tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonRight},
		},
		{
			name: "key without tap keys",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
		},
		{
			name:     "bound key",
			opts:     []TapOption{WithTapKeys(enter)},
			msg:      tea.KeyMsg{Type: tea.KeyEnter},
			wantPlay: true,
		},
		{
			name: "unbound key",
			opts: []TapOption{WithTapKeys(enter)},
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
		},
		{
			name: "other message",
			opts: []TapOption{WithTapKeys(enter)},
			msg:  tea.WindowSizeMsg{Width: 80, Height: 24},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log eventLog
			model := PlayOnTap(&stubModel{log: &log}, recordingPlayer{&log}, testSound, tt.opts...)

			updated, _ := model.Update(tt.msg)

			assert.Same(t, model, updated)
			if tt.wantPlay {
				assert.Equal(t, eventLog{"play click.wav", "update"}, log)
			} else {
				assert.Equal(t, eventLog{"update"}, log)
			}
		})
	}
}

func TestPlayOnTap_MultipleKeyBindings(t *testing.T) {
	var log eventLog
	model := PlayOnTap(&stubModel{log: &log}, recordingPlayer{&log}, testSound,
		WithTapKeys(key.NewBinding(key.WithKeys("up"))),
		WithTapKeys(key.NewBinding(key.WithKeys("down"))),
	)

	model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, eventLog{"play click.wav", "update", "play click.wav", "update"}, log)
}

func TestPlayOnTap_InitDoesNotPlay(t *testing.T) {
	var log eventLog
	model := PlayOnTap(&stubModel{log: &log}, recordingPlayer{&log}, testSound)

	model.Init()

	assert.Equal(t, eventLog{"init"}, log)
}
