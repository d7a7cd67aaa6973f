package board

import (
	"errors"
	"testing"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// crashyBoard scripts one failure mode per call.
type crashyBoard struct {
	panicWith any
	err       error
	infoErr   error
}

func (b *crashyBoard) call() error {
	if b.panicWith != nil {
		panic(b.panicWith)
	}
	return b.err
}

func (b *crashyBoard) ListComponents() ([]domain.EntityRef, error) {
	if err := b.call(); err != nil {
		return nil, err
	}
	return []domain.EntityRef{{Name: "R1", Handle: 1}}, nil
}

func (b *crashyBoard) ListNets() ([]domain.EntityRef, error) {
	if err := b.call(); err != nil {
		return nil, err
	}
	return []domain.EntityRef{{Name: "GND", Handle: 10}}, nil
}

func (b *crashyBoard) HighlightComponent(domain.Handle) error { return b.call() }
func (b *crashyBoard) HighlightNet(domain.Handle) error       { return b.call() }

func (b *crashyBoard) SelectNetItems(domain.Handle, int) ([]domain.ItemHandle, error) {
	if err := b.call(); err != nil {
		return nil, err
	}
	return []domain.ItemHandle{1}, nil
}

func (b *crashyBoard) RecenterView([]domain.ItemHandle) error { return b.call() }
func (b *crashyBoard) ClearSelection() error                  { return b.call() }

func (b *crashyBoard) ComponentInfo(domain.Handle) (*domain.ComponentInfo, error) {
	if b.infoErr != nil {
		return nil, b.infoErr
	}
	if err := b.call(); err != nil {
		return nil, err
	}
	return &domain.ComponentInfo{Reference: "R1"}, nil
}

func TestSafe_PassesResultsThrough(t *testing.T) {
	safe := Wrap(&crashyBoard{})

	refs, err := safe.ListComponents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 || refs[0].Name != "R1" {
		t.Errorf("unexpected refs: %v", refs)
	}
	if err := safe.HighlightNet(10); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSafe_RecoversPanics(t *testing.T) {
	safe := Wrap(&crashyBoard{panicWith: "host object deleted"})

	err := safe.HighlightComponent(1)
	if err == nil {
		t.Fatal("expected an error from the panicking host")
	}
	if !errors.Is(err, ports.ErrUnavailable) {
		t.Errorf("panic must surface as ErrUnavailable, got %v", err)
	}

	if _, err := safe.ListNets(); !errors.Is(err, ports.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestSafe_FlattensHostErrors(t *testing.T) {
	hostErr := errors.New("COM object released")
	safe := Wrap(&crashyBoard{err: hostErr})

	err := safe.ClearSelection()
	if !errors.Is(err, ports.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	// The host error is context, not part of the error chain.
	if errors.Is(err, hostErr) {
		t.Error("host errors must not survive in the chain")
	}
}

func TestSafe_UnsupportedPassesThrough(t *testing.T) {
	safe := Wrap(&crashyBoard{err: ports.ErrUnsupported})

	err := safe.HighlightNet(10)
	if !errors.Is(err, ports.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if errors.Is(err, ports.ErrUnavailable) {
		t.Error("ErrUnsupported must not be rewrapped as ErrUnavailable")
	}
}

func TestSafe_NilInner(t *testing.T) {
	safe := Wrap(nil)

	if _, err := safe.ListComponents(); !errors.Is(err, ports.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if err := safe.ClearSelection(); !errors.Is(err, ports.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if _, err := safe.ComponentInfo(1); !errors.Is(err, ports.ErrUnsupported) {
		t.Errorf("nil inner has no detailer, expected ErrUnsupported, got %v", err)
	}
}

func TestSafe_ComponentInfo(t *testing.T) {
	safe := Wrap(&crashyBoard{})

	info, err := safe.ComponentInfo(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Reference != "R1" {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestSafe_ComponentInfoWithoutDetailer(t *testing.T) {
	// Embedding hides every method beyond ports.Board, so the detailer
	// assertion fails.
	safe := Wrap(&struct{ ports.Board }{Board: &crashyBoard{}})

	if _, err := safe.ComponentInfo(1); !errors.Is(err, ports.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
