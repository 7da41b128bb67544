package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/chime/internal/domain"
)

// AddSoundFormResult contains the result of the add sound form
type AddSoundFormResult struct {
	Cancelled bool
	Play      bool
	Sound     domain.Descriptor
}

// AddSoundForm asks for a NAME.EXT descriptor to preload
type AddSoundForm struct {
	Completed bool
	form      *huh.Form
	play      bool
	result    AddSoundFormResult
	value     string
}

// NewAddSoundForm creates a new add sound form
func NewAddSoundForm() *AddSoundForm {
	f := &AddSoundForm{play: true}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sound").
				Description("File name in the sounds directory, e.g. click.wav").
				Placeholder("name.ext").
				Value(&f.value).
				Validate(validateSoundName),
			huh.NewConfirm().
				Title("Play after preloading?").
				Value(&f.play),
		),
	)

	return f
}

func validateSoundName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("sound name required")
	}
	_, err := domain.ParseDescriptor(strings.TrimSpace(s))
	return err
}

func (f *AddSoundForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *AddSoundForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
		d, err := domain.ParseDescriptor(strings.TrimSpace(f.value))
		if err != nil {
			f.result.Cancelled = true
			return f, nil
		}
		f.result.Sound = d
		f.result.Play = f.play
		return f, nil
	case huh.StateAborted:
		f.Completed = true
		f.result.Cancelled = true
		return f, nil
	}

	return f, cmd
}

func (f *AddSoundForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *AddSoundForm) Result() AddSoundFormResult {
	return f.result
}
