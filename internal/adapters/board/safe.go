// Package board provides the safe call boundary around the external
// design database. Every call into the host goes through Safe, which
// converts panics, missing capabilities, and host errors into the two
// uniform sentinels in ports. Nothing past this boundary can crash the
// process or leak host-specific failures.
package board

import (
	"errors"
	"fmt"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// Safe decorates a raw host board with panic recovery and error
// flattening. A nil inner board behaves like an absent host: every
// call reports ErrUnavailable.
type Safe struct {
	inner ports.Board
}

var _ ports.Board = (*Safe)(nil)

// Wrap returns a safe view of the given board.
func Wrap(inner ports.Board) *Safe {
	return &Safe{inner: inner}
}

// guard runs one host call. Host errors are absorbed (%v, not %w) so
// callers only ever see the two sentinels; ErrUnsupported passes
// through untouched because capability absence is a distinct outcome.
func (s *Safe) guard(op string, call func() error) (err error) {
	if s.inner == nil {
		return ports.ErrUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s panicked: %v", ports.ErrUnavailable, op, r)
		}
	}()
	if err = call(); err != nil && !errors.Is(err, ports.ErrUnsupported) {
		err = fmt.Errorf("%w: %s: %v", ports.ErrUnavailable, op, err)
	}
	return err
}

func (s *Safe) ListComponents() ([]domain.EntityRef, error) {
	var refs []domain.EntityRef
	err := s.guard("list components", func() error {
		var err error
		refs, err = s.inner.ListComponents()
		return err
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (s *Safe) ListNets() ([]domain.EntityRef, error) {
	var refs []domain.EntityRef
	err := s.guard("list nets", func() error {
		var err error
		refs, err = s.inner.ListNets()
		return err
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (s *Safe) HighlightComponent(h domain.Handle) error {
	return s.guard("highlight component", func() error {
		return s.inner.HighlightComponent(h)
	})
}

func (s *Safe) HighlightNet(h domain.Handle) error {
	return s.guard("highlight net", func() error {
		return s.inner.HighlightNet(h)
	})
}

func (s *Safe) SelectNetItems(h domain.Handle, maxItems int) ([]domain.ItemHandle, error) {
	var items []domain.ItemHandle
	err := s.guard("select net items", func() error {
		var err error
		items, err = s.inner.SelectNetItems(h, maxItems)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Safe) RecenterView(items []domain.ItemHandle) error {
	return s.guard("recenter view", func() error {
		return s.inner.RecenterView(items)
	})
}

func (s *Safe) ClearSelection() error {
	return s.guard("clear selection", func() error {
		return s.inner.ClearSelection()
	})
}

// ComponentInfo forwards to the inner board when it can describe
// components, keeping the same safety guarantees.
func (s *Safe) ComponentInfo(h domain.Handle) (*domain.ComponentInfo, error) {
	detailer, ok := s.inner.(ports.ComponentDetailer)
	if !ok {
		return nil, ports.ErrUnsupported
	}
	var info *domain.ComponentInfo
	err := s.guard("component info", func() error {
		var err error
		info, err = detailer.ComponentInfo(h)
		return err
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}
