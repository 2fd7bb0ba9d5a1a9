// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview resolves symbolic preview paths to renderable preview
// descriptors, and maps catalog records into the shape the frontend's
// component browser expects.
package preview

import "sort"

// Component describes one renderable preview unit the frontend can mount.
// Key is the symbolic path stored on catalog records; Label is the
// human-readable name shown in the browser.
type Component struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DefaultPath is the preview used whenever a lookup misses. Resolution
// must always produce something renderable.
const DefaultPath = "previews/AnimatedGradientHeader"

// Registry maps symbolic preview paths to preview descriptors.
type Registry struct {
	entries map[string]Component
}

// NewRegistry returns a registry seeded with the curated preview set.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Component)}
	for _, c := range []Component{
		{Key: "previews/AnimatedGradientHeader", Label: "Animated Gradient Header"},
		{Key: "previews/FerrofluidTabBar", Label: "Ferrofluid Tab Bar"},
		{Key: "previews/FlashlightSidebar", Label: "Flashlight Sidebar"},
		{Key: "previews/FloatingNav", Label: "Floating Nav"},
		{Key: "previews/GlassmorphicSearchBar", Label: "Glassmorphic Search Bar"},
		{Key: "previews/GravityWellUpload", Label: "Gravity Well Upload"},
		{Key: "previews/GyroscopicIslands", Label: "Gyroscopic Islands"},
		{Key: "previews/KineticSandButton", Label: "Kinetic Sand Button"},
		{Key: "previews/OrigamiCard", Label: "Origami Card"},
		{Key: "previews/SafeCrackerSlider", Label: "Safe Cracker Slider"},
	} {
		r.entries[c.Key] = c
	}
	return r
}

// Register adds or replaces a preview descriptor.
func (r *Registry) Register(c Component) {
	r.entries[c.Key] = c
}

// Resolve returns the preview for the given path, falling back to the
// default entry when the path is empty or unknown. It never fails.
func (r *Registry) Resolve(path string) Component {
	if path == "" {
		return r.entries[DefaultPath]
	}
	if c, ok := r.entries[path]; ok {
		return c
	}
	return r.entries[DefaultPath]
}

// List returns every registered preview, sorted by key for stable output.
func (r *Registry) List() []Component {
	result := make([]Component, 0, len(r.entries))
	for _, c := range r.entries {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}
