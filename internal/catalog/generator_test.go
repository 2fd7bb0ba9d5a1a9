package catalog

import (
	"reflect"
	"strings"
	"testing"

	"proplib/internal/models"
)

func TestGenerateDeterminism(t *testing.T) {
	first := Generate()
	second := Generate()

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Fatalf("record %d differs between runs:\n%+v\nvs\n%+v", i, first[i], second[i])
		}
	}
}

func TestGenerateTotalCount(t *testing.T) {
	records := Generate()

	want := ItemsPerCategory * len(models.Categories)
	if len(records) != want {
		t.Fatalf("total records: got %d, want %d", len(records), want)
	}
}

func TestGeneratePerCategoryCount(t *testing.T) {
	records := Generate()

	counts := make(map[models.Category]int)
	for _, rec := range records {
		counts[rec.Category]++
	}

	for _, category := range models.Categories {
		if counts[category] != ItemsPerCategory {
			t.Errorf("category %s: got %d records, want %d", category, counts[category], ItemsPerCategory)
		}
	}
}

func TestGenerateIDUniqueness(t *testing.T) {
	records := Generate()

	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if prev, ok := seen[rec.ID]; ok {
			t.Fatalf("duplicate id %q at indices %d and %d", rec.ID, prev, i)
		}
		seen[rec.ID] = i
	}
}

func TestGenerateFieldsPopulated(t *testing.T) {
	for _, rec := range Generate() {
		if rec.ID == "" || rec.Name == "" || rec.Description == "" ||
			rec.Code == "" || rec.Integration == "" || rec.PreviewComponentPath == "" {
			t.Fatalf("record %q has an empty required field: %+v", rec.ID, rec)
		}
		if len(rec.Tags) == 0 {
			t.Fatalf("record %q has no tags", rec.ID)
		}
		if len(rec.Dependencies) == 0 {
			t.Fatalf("record %q has no dependencies", rec.ID)
		}
		if rec.SmartPrompt != nil {
			t.Fatalf("record %q: generated records must have a nil smart prompt", rec.ID)
		}
		if !rec.Category.IsValid() {
			t.Fatalf("record %q has invalid category %q", rec.ID, rec.Category)
		}
		if !strings.HasPrefix(rec.PreviewComponentPath, "generated/") {
			t.Fatalf("record %q: preview path %q lacks generated/ prefix", rec.ID, rec.PreviewComponentPath)
		}
		if rec.PreviewComponentPath != "generated/"+rec.ID {
			t.Fatalf("record %q: preview path %q does not embed the id", rec.ID, rec.PreviewComponentPath)
		}
	}
}

// TestGenerateFirstHeaderRecord pins the exact output for (headers, 0) so
// bank or offset changes can't slip through unnoticed.
func TestGenerateFirstHeaderRecord(t *testing.T) {
	rec := newComponent(models.CategoryHeaders, 0)

	if rec.Name != "Pixel Carbon Flux Hero Header 001" {
		t.Errorf("name: got %q", rec.Name)
	}
	if rec.ID != "pixel-carbon-flux-hero-header-001-headers" {
		t.Errorf("id: got %q", rec.ID)
	}
	wantDesc := "A feature storytelling pattern tuned for headers interfaces with a flux interaction profile."
	if rec.Description != wantDesc {
		t.Errorf("description: got %q, want %q", rec.Description, wantDesc)
	}
	wantTags := []string{"headers", "feature", "interactive", "design-system", "ai-ready"}
	if !reflect.DeepEqual(rec.Tags, wantTags) {
		t.Errorf("tags: got %v, want %v", rec.Tags, wantTags)
	}
	if !reflect.DeepEqual(rec.Dependencies, []string{"framer-motion", "react"}) {
		t.Errorf("dependencies: got %v", rec.Dependencies)
	}
	if !strings.Contains(rec.Code, "export default function PixelCarbonFluxHeroHeader001()") {
		t.Errorf("code lacks the expected function name:\n%s", rec.Code)
	}
	if !strings.Contains(rec.Code, "Accent: pixel-carbon.") {
		t.Errorf("code lacks the expected accent:\n%s", rec.Code)
	}
	if !strings.Contains(rec.Integration, "import PixelCarbonFluxHeroHeader001 from '@/components/PixelCarbonFluxHeroHeader001'") {
		t.Errorf("integration lacks the expected import:\n%s", rec.Integration)
	}
}

func TestGenerateSerialNumbers(t *testing.T) {
	records := Generate()

	// The first headers record ends in 001, the last in 060.
	if !strings.HasSuffix(records[0].Name, " 001") {
		t.Errorf("first record name %q should end in 001", records[0].Name)
	}
	if !strings.HasSuffix(records[ItemsPerCategory-1].Name, " 060") {
		t.Errorf("last headers record name %q should end in 060", records[ItemsPerCategory-1].Name)
	}
}

func TestGenerateTagsDeduplicated(t *testing.T) {
	for _, rec := range Generate() {
		seen := make(map[string]bool, len(rec.Tags))
		for _, tag := range rec.Tags {
			if seen[tag] {
				t.Fatalf("record %q has duplicate tag %q: %v", rec.ID, tag, rec.Tags)
			}
			seen[tag] = true
		}
	}
}

func TestGenerateOrdering(t *testing.T) {
	records := Generate()

	// Categories appear in enumeration order, indices ascending.
	idx := 0
	for _, category := range models.Categories {
		for i := 0; i < ItemsPerCategory; i++ {
			if records[idx].Category != category {
				t.Fatalf("record %d: got category %s, want %s", idx, records[idx].Category, category)
			}
			idx++
		}
	}
}

func TestPascalIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Nova Glass Flux Hero Header 001", "NovaGlassFluxHeroHeader001"},
		{"hello world", "HelloWorld"},
		{"3d origami card", "Ui3dOrigamiCard"},
		{"safe-cracker slider", "SafeCrackerSlider"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := pascalIdentifier(tt.input); got != tt.want {
			t.Errorf("pascalIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
