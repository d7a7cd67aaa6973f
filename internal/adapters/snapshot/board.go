// Package snapshot implements ports.Board over a SQLite design
// snapshot: a netlist export of the board (components, nets, and the
// items making up each net) produced outside the host. It stands in
// for the live design database when probing notes offline; highlight
// and selection state are held in memory so a front end can render
// what the live canvas would show.
package snapshot

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Board is a SQLite-backed design snapshot.
type Board struct {
	db *sql.DB

	mu    sync.Mutex
	state CanvasState
}

// CanvasState mirrors what the live canvas would show: the current
// native highlight, or the fallback selection with its view center.
type CanvasState struct {
	HighlightKind domain.EntityKind // KindUnknown when nothing is highlighted
	Highlight     domain.Handle
	Selected      []domain.ItemHandle
	CenterX       float64
	CenterY       float64
}

var _ ports.Board = (*Board)(nil)
var _ ports.ComponentDetailer = (*Board)(nil)

// Open opens a snapshot database and ensures its schema exists.
func Open(path string) (*Board, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS components (
			id INTEGER PRIMARY KEY,
			reference TEXT NOT NULL UNIQUE,
			value TEXT NOT NULL DEFAULT '',
			footprint TEXT NOT NULL DEFAULT '',
			layer TEXT NOT NULL DEFAULT '',
			x REAL NOT NULL DEFAULT 0,
			y REAL NOT NULL DEFAULT 0,
			rotation REAL NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS nets (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);
		CREATE TABLE IF NOT EXISTS net_items (
			id INTEGER PRIMARY KEY,
			net_id INTEGER NOT NULL REFERENCES nets(id),
			component_id INTEGER REFERENCES components(id),
			kind TEXT NOT NULL,
			x REAL NOT NULL DEFAULT 0,
			y REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_net_items_net ON net_items(net_id);
		CREATE INDEX IF NOT EXISTS idx_net_items_component ON net_items(component_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup snapshot schema: %w", err)
	}

	return &Board{db: db}, nil
}

// Close closes the underlying database
func (b *Board) Close() error {
	return b.db.Close()
}

func (b *Board) ListComponents() ([]domain.EntityRef, error) {
	return b.listRefs("SELECT id, reference FROM components ORDER BY reference")
}

func (b *Board) ListNets() ([]domain.EntityRef, error) {
	return b.listRefs("SELECT id, name FROM nets ORDER BY name")
}

func (b *Board) listRefs(query string) ([]domain.EntityRef, error) {
	rows, err := b.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	defer rows.Close()

	var refs []domain.EntityRef
	for rows.Next() {
		var ref domain.EntityRef
		if err := rows.Scan(&ref.Handle, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (b *Board) HighlightComponent(h domain.Handle) error {
	return b.highlight(domain.KindComponent, h, "SELECT 1 FROM components WHERE id = ?")
}

func (b *Board) HighlightNet(h domain.Handle) error {
	return b.highlight(domain.KindNet, h, "SELECT 1 FROM nets WHERE id = ?")
}

func (b *Board) highlight(kind domain.EntityKind, h domain.Handle, existsQuery string) error {
	var one int
	if err := b.db.QueryRow(existsQuery, h).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("no %s with handle %d", kind, h)
		}
		return fmt.Errorf("failed to look up %s: %w", kind, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = CanvasState{HighlightKind: kind, Highlight: h}
	return nil
}

func (b *Board) SelectNetItems(h domain.Handle, maxItems int) ([]domain.ItemHandle, error) {
	rows, err := b.db.Query(
		"SELECT id FROM net_items WHERE net_id = ? ORDER BY id LIMIT ?", h, maxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to select net items: %w", err)
	}
	defer rows.Close()

	var items []domain.ItemHandle
	for rows.Next() {
		var item domain.ItemHandle
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan net item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = CanvasState{Selected: items}
	return items, nil
}

func (b *Board) RecenterView(items []domain.ItemHandle) error {
	if len(items) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(items)), ",")
	args := make([]any, len(items))
	for i, item := range items {
		args[i] = item
	}

	var x, y float64
	err := b.db.QueryRow(
		"SELECT AVG(x), AVG(y) FROM net_items WHERE id IN ("+placeholders+")", args...,
	).Scan(&x, &y)
	if err != nil {
		return fmt.Errorf("failed to compute view center: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.CenterX = x
	b.state.CenterY = y
	return nil
}

func (b *Board) ClearSelection() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = CanvasState{}
	return nil
}

// State returns the current canvas state for rendering.
func (b *Board) State() CanvasState {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := b.state
	st.Selected = append([]domain.ItemHandle(nil), b.state.Selected...)
	return st
}

// ComponentInfo implements ports.ComponentDetailer from snapshot data.
func (b *Board) ComponentInfo(h domain.Handle) (*domain.ComponentInfo, error) {
	info := &domain.ComponentInfo{}
	err := b.db.QueryRow(
		"SELECT reference, value, footprint, layer, x, y, rotation FROM components WHERE id = ?", h,
	).Scan(&info.Reference, &info.Value, &info.Footprint, &info.Layer, &info.X, &info.Y, &info.Rotation)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no component with handle %d", h)
		}
		return nil, fmt.Errorf("failed to read component: %w", err)
	}

	rows, err := b.db.Query(`
		SELECT DISTINCT n.name
		FROM net_items i
		JOIN nets n ON n.id = i.net_id
		WHERE i.component_id = ?
		ORDER BY n.name`, h)
	if err != nil {
		return nil, fmt.Errorf("failed to read component nets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan net name: %w", err)
		}
		info.Nets = append(info.Nets, name)
	}
	return info, rows.Err()
}
