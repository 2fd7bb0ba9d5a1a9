// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "proplib/internal/models"

// Template banks for the deterministic generator. Each bank is consulted
// with a distinct additive offset so that successive records don't repeat
// the same combination even though the banks are equally sized.

var materials = [...]string{
	"Glass",
	"Carbon",
	"Aero",
	"Plasma",
	"Quartz",
	"Prism",
	"Velvet",
	"Atlas",
	"Cinder",
	"Nimbus",
}

var motions = [...]string{
	"Drift",
	"Pulse",
	"Ripple",
	"Flux",
	"Glide",
	"Orbit",
	"Cascade",
	"Shift",
	"Bloom",
	"Snap",
}

var flavors = [...]string{
	"Aurora",
	"Solar",
	"Tidal",
	"Lunar",
	"Ember",
	"Pixel",
	"Neon",
	"Frost",
	"Signal",
	"Nova",
}

var tagBank = [...]string{
	"interactive",
	"responsive",
	"micro-interaction",
	"production-ready",
	"design-system",
	"motion",
	"accessible",
	"ai-ready",
	"tailwind",
	"typescript",
}

// blueprint holds the category-specific banks: component nouns, one-line
// summaries, and the fixed dependency list every record in the category gets.
type blueprint struct {
	nouns        []string
	summaries    []string
	dependencies []string
}

var blueprints = map[models.Category]blueprint{
	models.CategoryHeaders: {
		nouns:        []string{"Hero Header", "Split Hero", "Launch Header", "Landing Masthead", "Brand Header"},
		summaries:    []string{"headline focus", "conversion CTA", "feature storytelling", "animated branding", "product launch"},
		dependencies: []string{"framer-motion", "react"},
	},
	models.CategorySearch: {
		nouns:        []string{"Search Bar", "Command Finder", "Instant Lookup", "Global Search", "Smart Query Dock"},
		summaries:    []string{"query suggestions", "quick filtering", "keyboard-friendly search", "fuzzy lookup", "result ranking"},
		dependencies: []string{"framer-motion", "react", "lucide-react"},
	},
	models.CategoryNavigation: {
		nouns:        []string{"Top Navigation", "Floating Nav", "Tab Dock", "Sidebar Rail", "Navigation Hub"},
		summaries:    []string{"active state feedback", "gesture-friendly layout", "adaptive menus", "dense navigation", "focus visibility"},
		dependencies: []string{"framer-motion", "react", "lucide-react"},
	},
	models.CategoryCards: {
		nouns:        []string{"Feature Card", "Product Card", "Profile Card", "Metric Card", "Case Study Card"},
		summaries:    []string{"rich content blocks", "progressive disclosure", "data emphasis", "storytelling layout", "compact details"},
		dependencies: []string{"framer-motion", "react", "lucide-react"},
	},
	models.CategoryForms: {
		nouns:        []string{"Signup Form", "Checkout Form", "Contact Form", "Settings Form", "Action Form"},
		summaries:    []string{"inline validation", "submission feedback", "progressive steps", "clear input hierarchy", "error recovery"},
		dependencies: []string{"framer-motion", "react", "lucide-react"},
	},
	models.CategoryAnimations: {
		nouns:        []string{"Reveal Animation", "Loader Sequence", "Background Motion", "Transition Pattern", "Accent Animation"},
		summaries:    []string{"ambient movement", "staged entrances", "status transitions", "attention guidance", "loop stability"},
		dependencies: []string{"framer-motion", "react"},
	},
}
