package snapshot

import (
	"fmt"

	"crossprobe/internal/domain"
)

// Write-side API for producing snapshots (netlist importers, demo
// data, tests). The probing engine itself never writes.

// AddComponent inserts a component and returns its handle.
func (b *Board) AddComponent(info domain.ComponentInfo) (domain.Handle, error) {
	res, err := b.db.Exec(
		"INSERT INTO components (reference, value, footprint, layer, x, y, rotation) VALUES (?, ?, ?, ?, ?, ?, ?)",
		info.Reference, info.Value, info.Footprint, info.Layer, info.X, info.Y, info.Rotation)
	if err != nil {
		return 0, fmt.Errorf("failed to insert component %s: %w", info.Reference, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return domain.Handle(id), nil
}

// AddNet inserts a net and returns its handle (the net code).
func (b *Board) AddNet(name string) (domain.Handle, error) {
	res, err := b.db.Exec("INSERT INTO nets (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert net %s: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return domain.Handle(id), nil
}

// AddNetItem inserts one constituent item of a net. component is nil
// for items not owned by a component (tracks, vias, zones).
func (b *Board) AddNetItem(net domain.Handle, component *domain.Handle, kind string, x, y float64) (domain.ItemHandle, error) {
	var comp any
	if component != nil {
		comp = *component
	}
	res, err := b.db.Exec(
		"INSERT INTO net_items (net_id, component_id, kind, x, y) VALUES (?, ?, ?, ?, ?)",
		net, comp, kind, x, y)
	if err != nil {
		return 0, fmt.Errorf("failed to insert net item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return domain.ItemHandle(id), nil
}
