package debugui

import (
	"github.com/plus3/entree/ecs"
)

type EntityBrowser struct {
	registry           *ecs.ComponentRegistry
	cache              *EntityBrowserCache
	selected           *ecs.Entity
	filterText         string
	filterKind         *ecs.Kind
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspector struct {
	registry *ecs.ComponentRegistry
	browser  *EntityBrowser
}

type KindViewer struct {
	registry      *ecs.ComponentRegistry
	browser       *EntityBrowser
	rows          []KindInfo
	selectedKind  *ecs.Kind
	sortColumn    int
	sortAscending bool
}

type PerformanceStats struct {
	registry      *ecs.ComponentRegistry
	scheduler     *ecs.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	frameCount    int
}

type QueryDebugger struct {
	registry *ecs.ComponentRegistry
	selected map[ecs.Kind]bool
	cqlText  string
	compiled *compiledCQL
}

// NewDebugUI wires the standard set of windows into an ImguiSystem.
// The browser's selection drives the inspector, and clicking a kind in the
// kind viewer filters the browser.
func NewDebugUI(registry *ecs.ComponentRegistry, scheduler *ecs.Scheduler) *ImguiSystem {
	browser := NewEntityBrowser(registry, 100)
	system := &ImguiSystem{}
	system.Add(
		browser,
		NewComponentInspector(registry, browser),
		NewKindViewer(registry, browser),
		NewPerformanceStats(registry, scheduler, 120),
		NewQueryDebugger(registry),
	)
	return system
}
