package debugui

import (
	"github.com/plus3/ecsman/ecs"
)

const (
	ImguiItemType ecs.ComponentType = ecs.ReservedComponentTypes + iota
	EntityBrowserType
	ComponentInspectorType
	SystemViewerType
	PerformanceStatsType
	TypeQueryType
)

type EntityBrowserComponent struct {
	ecs.BaseComponent
	cache              *EntityBrowserCache
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func (*EntityBrowserComponent) Type() ecs.ComponentType { return EntityBrowserType }

type ComponentInspectorComponent struct {
	ecs.BaseComponent
	selectedEntityId ecs.EntityId
}

func (*ComponentInspectorComponent) Type() ecs.ComponentType { return ComponentInspectorType }

type SystemViewerComponent struct {
	ecs.BaseComponent
	cache            *SystemViewerCache
	selectedSystemId ecs.SystemId
}

func (*SystemViewerComponent) Type() ecs.ComponentType { return SystemViewerType }

type PerformanceStatsComponent struct {
	ecs.BaseComponent
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func (*PerformanceStatsComponent) Type() ecs.ComponentType { return PerformanceStatsType }

type TypeQueryComponent struct {
	ecs.BaseComponent
	selectedTypes map[ecs.ComponentType]bool
	cache         *TypeQueryCache
}

func (*TypeQueryComponent) Type() ecs.ComponentType { return TypeQueryType }
