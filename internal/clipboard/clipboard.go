// Package clipboard copies text to the system clipboard and primary selection.
package clipboard

import (
	"errors"
	"fmt"
	"log"

	"emojipick/internal/config"
)

// ErrUnsupportedTarget is returned by a backend that cannot write a target
var ErrUnsupportedTarget = errors.New("clipboard target not supported")

// Target is a selection that can receive text
type Target string

const (
	TargetClipboard Target = config.TargetClipboard
	TargetPrimary   Target = config.TargetPrimary
)

// Copier copies textual data to the clipboard
type Copier interface {
	Copy(text string) error
}

// Backend writes text to one target
type Backend interface {
	Write(target Target, text string) error
}

// Service copies to every configured target, falling back to OSC 52 per mode
type Service struct {
	targets  []Target
	mode     string
	system   Backend
	fallback Backend
}

// NewService constructs a Service using the atotto system backend and an OSC 52 fallback on /dev/tty
func NewService(cfg config.ClipboardSettings) *Service {
	return NewServiceWithBackends(cfg, NewSystemBackend(), NewOSC52Backend(nil))
}

// NewServiceWithBackends constructs a Service with explicit backends
func NewServiceWithBackends(cfg config.ClipboardSettings, system, fallback Backend) *Service {
	targets := make([]Target, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		targets = append(targets, Target(t))
	}
	mode := cfg.OSC52
	if mode == "" {
		mode = config.OSC52Auto
	}
	return &Service{targets: targets, mode: mode, system: system, fallback: fallback}
}

// Copy writes text to each target. Failures are collected; a failing target does not stop the others.
func (s *Service) Copy(text string) error {
	var errs []error
	for _, target := range s.targets {
		if err := s.write(target, text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", target, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) write(target Target, text string) error {
	switch s.mode {
	case config.OSC52Always:
		return s.fallback.Write(target, text)
	case config.OSC52Never:
		return s.system.Write(target, text)
	}

	err := s.system.Write(target, text)
	if err == nil {
		return nil
	}
	log.Printf("System clipboard write to %s failed, using OSC 52: %v", target, err)
	if ferr := s.fallback.Write(target, text); ferr != nil {
		return errors.Join(err, ferr)
	}
	return nil
}

var _ Copier = (*Service)(nil)
