// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog generates and queries the local component catalog.
// The catalog is a deterministic, in-memory data set used whenever
// PostgreSQL is unconfigured or unreachable: the same category set and
// per-category count always produce byte-identical records.
package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"proplib/internal/models"
	"proplib/internal/slug"
)

// ItemsPerCategory is the fixed number of generated records per category.
const ItemsPerCategory = 60

// Generate builds the full local catalog: ItemsPerCategory records for
// every category, in category order with ascending indices. It is a pure
// function with no fallible inputs.
func Generate() []models.Component {
	records := make([]models.Component, 0, ItemsPerCategory*len(models.Categories))
	for _, category := range models.Categories {
		for i := 0; i < ItemsPerCategory; i++ {
			records = append(records, newComponent(category, i))
		}
	}
	return records
}

// newComponent synthesizes the record at (category, index). Each template
// bank is consulted with its own additive offset to decorrelate the picks.
func newComponent(category models.Category, index int) models.Component {
	bp := blueprints[category]
	material := materials[(index+1)%len(materials)]
	motion := motions[(index+3)%len(motions)]
	flavor := flavors[(index+5)%len(flavors)]
	noun := bp.nouns[index%len(bp.nouns)]
	summary := bp.summaries[(index+2)%len(bp.summaries)]

	serial := fmt.Sprintf("%03d", index+1)
	name := fmt.Sprintf("%s %s %s %s %s", flavor, material, motion, noun, serial)
	id := slug.Generate(name) + "-" + string(category)

	tags := dedup([]string{
		string(category),
		firstWord(summary),
		tagBank[index%len(tagBank)],
		tagBank[(index+4)%len(tagBank)],
		tagBank[(index+7)%len(tagBank)],
	})

	accent := strings.ToLower(flavor) + "-" + strings.ToLower(material)

	return models.Component{
		ID:                   id,
		Name:                 name,
		Description:          fmt.Sprintf("A %s pattern tuned for %s interfaces with a %s interaction profile.", summary, category, strings.ToLower(motion)),
		Category:             category,
		Tags:                 tags,
		Code:                 buildCode(name, category, accent),
		Dependencies:         append([]string(nil), bp.dependencies...),
		Integration:          buildIntegration(name),
		SmartPrompt:          nil,
		PreviewComponentPath: "generated/" + id,
	}
}

// buildCode renders the placeholder snippet for a generated record.
// The snippet is opaque text to this service; it is never executed here.
func buildCode(name string, category models.Category, accent string) string {
	functionName := pascalIdentifier(name)

	return fmt.Sprintf(`'use client'

import { motion } from 'framer-motion'
import { useState } from 'react'

export default function %s() {
  const [active, setActive] = useState(false)

  return (
    <section className="w-full min-h-full p-6 bg-zinc-950 text-white rounded-2xl border border-white/10">
      <motion.button
        type="button"
        onClick={() => setActive((current) => !current)}
        whileTap={{ scale: 0.98 }}
        className="w-full text-left p-5 rounded-xl border border-white/10 bg-zinc-900/60"
      >
        <motion.div
          animate={{
            opacity: active ? 1 : 0.72,
            y: active ? -2 : 0,
          }}
          transition={{ duration: 0.25 }}
          className="space-y-2"
        >
          <p className="text-xs uppercase tracking-[0.2em] text-zinc-400">%s</p>
          <h3 className="text-2xl font-semibold">%s</h3>
          <p className="text-sm text-zinc-300">Accent: %s. Click to toggle interaction state.</p>
        </motion.div>
      </motion.button>
    </section>
  )
}
`, functionName, category, name, accent)
}

// buildIntegration renders the usage note shown next to a record's code.
func buildIntegration(name string) string {
	functionName := pascalIdentifier(name)
	return fmt.Sprintf("Import and render in your page:\n\n```tsx\nimport %s from '@/components/%s'\n\nexport default function Page() {\n  return <%s />\n}\n```",
		functionName, functionName, functionName)
}

// pascalIdentifier converts a component name into a valid PascalCase
// identifier for the generated snippet. Names starting with a digit get a
// "Ui" prefix since identifiers can't begin with a number.
func pascalIdentifier(name string) string {
	var cleaned strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			cleaned.WriteRune(r)
		} else {
			cleaned.WriteByte(' ')
		}
	}

	var b strings.Builder
	for _, word := range strings.Fields(cleaned.String()) {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	pascal := b.String()
	if pascal != "" && unicode.IsDigit(rune(pascal[0])) {
		return "Ui" + pascal
	}
	return pascal
}

// dedup removes duplicate strings while preserving first-seen order.
func dedup(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// firstWord returns everything before the first space in s.
func firstWord(s string) string {
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		return s[:idx]
	}
	return s
}
