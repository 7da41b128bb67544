package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/logging"
	"github.com/renato0307/chime/internal/ports"
)

// ErrorHandler receives registry error signals (*domain.SoundError)
type ErrorHandler func(err error)

// LogSink receives debug trace lines
type LogSink func(line string)

// SoundEffectRegistry caches audio handles by sound identifier and plays them.
//
// A registry is not safe for concurrent use. All calls must come from a single
// execution context, such as the Bubble Tea update loop, because the platform
// audio systems expect to be driven from one thread.
type SoundEffectRegistry struct {
	audio        ports.AudioSystem
	debug        bool
	errorHandler ErrorHandler
	handles      map[string]domain.Handle
	logSink      LogSink
}

// RegistryOption configures a SoundEffectRegistry
type RegistryOption func(*SoundEffectRegistry)

// WithDebug enables trace lines for every operation
func WithDebug(debug bool) RegistryOption {
	return func(r *SoundEffectRegistry) {
		r.debug = debug
	}
}

// WithLogSink replaces the default console trace sink
func WithLogSink(sink LogSink) RegistryOption {
	return func(r *SoundEffectRegistry) {
		r.SetLogSink(sink)
	}
}

// WithErrorHandler registers the error handler
func WithErrorHandler(handler ErrorHandler) RegistryOption {
	return func(r *SoundEffectRegistry) {
		r.errorHandler = handler
	}
}

// NewSoundEffectRegistry creates an empty registry backed by the given audio system
func NewSoundEffectRegistry(audio ports.AudioSystem, opts ...RegistryOption) *SoundEffectRegistry {
	r := &SoundEffectRegistry{
		audio:   audio,
		handles: make(map[string]domain.Handle),
		logSink: consoleSink,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func consoleSink(line string) {
	fmt.Println(line)
}

// SetErrorHandler replaces the error handler. Passing nil drops future signals.
func (r *SoundEffectRegistry) SetErrorHandler(handler ErrorHandler) {
	r.errorHandler = handler
}

// SetDebug toggles debug tracing
func (r *SoundEffectRegistry) SetDebug(debug bool) {
	r.debug = debug
}

// SetLogSink replaces the trace sink. Passing nil restores the console sink.
func (r *SoundEffectRegistry) SetLogSink(sink LogSink) {
	if sink == nil {
		sink = consoleSink
	}
	r.logSink = sink
}

// Preload loads every descriptor not already loaded. A failure for one
// descriptor is reported and the rest of the batch continues.
func (r *SoundEffectRegistry) Preload(descriptors []domain.Descriptor, source ports.ResourceSource) {
	for _, d := range descriptors {
		id := d.ID()
		if _, loaded := r.handles[id]; loaded {
			r.trace("%s already preloaded, skipping", id)
			continue
		}

		resource, err := source.Locate(d)
		if err != nil {
			r.report(notFoundSignal(d, err))
			continue
		}

		handle, err := r.audio.CreateHandle(resource)
		if err != nil {
			r.report(domain.NewSoundError(domain.ErrInitializationFailed, d, err))
			continue
		}

		r.handles[id] = handle
		r.trace("preloaded %s from %s", id, resource.Location)
		logging.Logger.Debug("Sound preloaded", "sound", id, "location", resource.Location, "handle", handle)
	}
}

// Play starts playback of a loaded sound. Playing a sound that is not loaded
// reports domain.ErrResourceNotFound.
func (r *SoundEffectRegistry) Play(d domain.Descriptor) {
	id := d.ID()
	handle, loaded := r.handles[id]
	if !loaded {
		r.report(domain.NewSoundError(domain.ErrResourceNotFound, d, nil))
		return
	}

	r.trace("playing %s", id)
	r.audio.Play(handle)
}

// Unload disposes a loaded sound. Unloading a sound that is not loaded is a no-op.
func (r *SoundEffectRegistry) Unload(d domain.Descriptor) {
	id := d.ID()
	handle, loaded := r.handles[id]
	if !loaded {
		r.trace("%s not loaded, nothing to unload", id)
		return
	}

	r.dispose(id, handle)
}

// UnloadAll disposes every loaded sound
func (r *SoundEffectRegistry) UnloadAll() {
	for id, handle := range r.handles {
		r.dispose(id, handle)
	}
}

// dispose releases the handle and drops the entry even when the audio system fails
func (r *SoundEffectRegistry) dispose(id string, handle domain.Handle) {
	if err := r.audio.Dispose(handle); err != nil {
		logging.Logger.Warn("Failed to dispose sound handle", "sound", id, "handle", handle, "error", err)
	}
	delete(r.handles, id)
	r.trace("unloaded %s", id)
}

// IsLoaded reports whether a sound is loaded
func (r *SoundEffectRegistry) IsLoaded(d domain.Descriptor) bool {
	_, loaded := r.handles[d.ID()]
	return loaded
}

// Loaded returns the identifiers of all loaded sounds, sorted
func (r *SoundEffectRegistry) Loaded() []string {
	ids := make([]string, 0, len(r.handles))
	for id := range r.handles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of loaded sounds
func (r *SoundEffectRegistry) Len() int {
	return len(r.handles)
}

func (r *SoundEffectRegistry) trace(format string, args ...any) {
	if !r.debug {
		return
	}
	r.logSink("[SoundEffects] " + fmt.Sprintf(format, args...))
}

// report traces the signal, logs it and hands it to the error handler if any
func (r *SoundEffectRegistry) report(sig *domain.SoundError) {
	r.trace("error: %v", sig)
	logging.Logger.Warn("Sound effect error", "sound", sig.Sound.ID(), "kind", sig.Kind.Error(), "error", sig.Err)
	if r.errorHandler != nil {
		r.errorHandler(sig)
	}
}

// notFoundSignal reuses a signal produced by the source, otherwise wraps the cause
func notFoundSignal(d domain.Descriptor, err error) *domain.SoundError {
	var sig *domain.SoundError
	if errors.As(err, &sig) && errors.Is(sig.Kind, domain.ErrResourceNotFound) {
		return sig
	}
	return domain.NewSoundError(domain.ErrResourceNotFound, d, err)
}
