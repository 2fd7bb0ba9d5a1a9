package catalog

import (
	"strings"
	"testing"

	"proplib/internal/models"
)

// testRecords generates the full catalog once per test binary.
var testRecords = Generate()

func TestQueryUnfiltered(t *testing.T) {
	result := Query(testRecords, Params{Limit: DefaultLimit})

	if result.Total != ItemsPerCategory*len(models.Categories) {
		t.Errorf("total: got %d, want %d", result.Total, ItemsPerCategory*len(models.Categories))
	}
	if len(result.Components) != DefaultLimit {
		t.Errorf("page size: got %d, want %d", len(result.Components), DefaultLimit)
	}
	if !result.HasMore {
		t.Error("expected hasMore for first page of unfiltered catalog")
	}
	if result.Limit != DefaultLimit || result.Offset != 0 {
		t.Errorf("echoed window: got limit=%d offset=%d", result.Limit, result.Offset)
	}
}

func TestQueryCategoryFilter(t *testing.T) {
	result := Query(testRecords, Params{Category: "forms", Limit: MaxLimit})

	if result.Total != ItemsPerCategory {
		t.Errorf("total: got %d, want %d", result.Total, ItemsPerCategory)
	}
	for _, rec := range result.Components {
		if rec.Category != models.CategoryForms {
			t.Fatalf("record %q has category %s, want forms", rec.ID, rec.Category)
		}
	}
}

func TestQueryCategoryAll(t *testing.T) {
	all := Query(testRecords, Params{Category: "all", Limit: 1})
	none := Query(testRecords, Params{Limit: 1})

	if all.Total != none.Total {
		t.Errorf("category=all should not filter: got total %d, want %d", all.Total, none.Total)
	}
}

func TestQueryCategoryExactMatch(t *testing.T) {
	// Category matching is exact and case-sensitive; no partials.
	for _, cat := range []string{"form", "Forms", "FORMS", "forms "} {
		result := Query(testRecords, Params{Category: cat, Limit: 1})
		if result.Total != 0 {
			t.Errorf("category %q: got total %d, want 0", cat, result.Total)
		}
	}
}

// TestQueryFormsPagination pins the concrete pagination scenario: 60 forms
// records windowed with limit 24.
func TestQueryFormsPagination(t *testing.T) {
	first := Query(testRecords, Params{Category: "forms", Limit: 24})
	if len(first.Components) != 24 {
		t.Errorf("first page size: got %d, want 24", len(first.Components))
	}
	if first.Total != 60 {
		t.Errorf("total: got %d, want 60", first.Total)
	}
	if !first.HasMore {
		t.Error("expected hasMore on first page")
	}

	last := Query(testRecords, Params{Category: "forms", Limit: 24, Offset: 48})
	if len(last.Components) != 12 {
		t.Errorf("last page size: got %d, want 12", len(last.Components))
	}
	if last.HasMore {
		t.Error("expected no hasMore on last page")
	}
}

func TestQueryTagANDSemantics(t *testing.T) {
	tags := []string{"forms", "ai-ready"}
	result := Query(testRecords, Params{Tags: tags, Limit: MaxLimit})

	if result.Total == 0 {
		t.Fatal("expected some records carrying both tags")
	}

	matched := make(map[string]bool, result.Total)
	for _, rec := range result.Components {
		for _, tag := range tags {
			if !rec.HasTag(tag) {
				t.Fatalf("record %q missing requested tag %q: %v", rec.ID, tag, rec.Tags)
			}
		}
		matched[rec.ID] = true
	}

	// Every unmatched record must genuinely lack at least one tag.
	for _, rec := range testRecords {
		if matched[rec.ID] {
			continue
		}
		hasAll := true
		for _, tag := range tags {
			if !rec.HasTag(tag) {
				hasAll = false
				break
			}
		}
		if hasAll && result.Total <= MaxLimit {
			t.Fatalf("record %q carries all requested tags but was excluded", rec.ID)
		}
	}
}

func TestQuerySingleTagMatchesSupersets(t *testing.T) {
	one := Query(testRecords, Params{Tags: []string{"ai-ready"}, Limit: MaxLimit})
	two := Query(testRecords, Params{Tags: []string{"ai-ready", "forms"}, Limit: MaxLimit})

	if two.Total > one.Total {
		t.Errorf("adding a tag must narrow results: %d > %d", two.Total, one.Total)
	}
}

func TestQuerySearchSubstring(t *testing.T) {
	result := Query(testRecords, Params{Search: "Nova", Limit: MaxLimit})

	if result.Total == 0 {
		t.Fatal("expected matches for Nova")
	}
	for _, rec := range result.Components {
		haystack := strings.ToLower(rec.Name + " " + rec.Description + " " + strings.Join(rec.Tags, " "))
		if !strings.Contains(haystack, "nova") {
			t.Fatalf("record %q matched without containing nova", rec.ID)
		}
	}

	// Case-insensitive: the same query in lowercase returns the same total.
	lower := Query(testRecords, Params{Search: "nova", Limit: MaxLimit})
	if lower.Total != result.Total {
		t.Errorf("case sensitivity leak: %d vs %d", lower.Total, result.Total)
	}
}

func TestQuerySearchIsSubstringNotPrefix(t *testing.T) {
	// "arbon" only appears inside "Carbon"; a prefix-only match would miss it.
	result := Query(testRecords, Params{Search: "arbon", Limit: 1})
	if result.Total == 0 {
		t.Error("substring search should match mid-word")
	}
}

func TestQuerySearchTrimsWhitespace(t *testing.T) {
	padded := Query(testRecords, Params{Search: "  nova  ", Limit: 1})
	bare := Query(testRecords, Params{Search: "nova", Limit: 1})

	if padded.Total != bare.Total {
		t.Errorf("trimmed search should match: %d vs %d", padded.Total, bare.Total)
	}

	blank := Query(testRecords, Params{Search: "   ", Limit: 1})
	if blank.Total != len(testRecords) {
		t.Errorf("blank search must not filter: got %d", blank.Total)
	}
}

func TestQuerySearchNoMatches(t *testing.T) {
	result := Query(testRecords, Params{Search: "zzzzz-no-such-component"})

	if result.Total != 0 {
		t.Errorf("total: got %d, want 0", result.Total)
	}
	if len(result.Components) != 0 {
		t.Errorf("components: got %d, want 0", len(result.Components))
	}
	if result.HasMore {
		t.Error("hasMore must be false for empty result")
	}
}

func TestQueryClamping(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		wantLimit  int
		wantOffset int
	}{
		{"zero limit raised to one", Params{Limit: 0}, 1, 0},
		{"negative limit raised to one", Params{Limit: -10}, 1, 0},
		{"huge limit capped", Params{Limit: 10000}, MaxLimit, 0},
		{"negative offset floored", Params{Limit: 1, Offset: -5}, 1, 0},
		{"valid window untouched", Params{Limit: 24, Offset: 48}, 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Query(testRecords, tt.params)
			if result.Limit != tt.wantLimit {
				t.Errorf("limit: got %d, want %d", result.Limit, tt.wantLimit)
			}
			if result.Offset != tt.wantOffset {
				t.Errorf("offset: got %d, want %d", result.Offset, tt.wantOffset)
			}
			if len(result.Components) > tt.wantLimit {
				t.Errorf("page exceeds limit: %d > %d", len(result.Components), tt.wantLimit)
			}
		})
	}
}

func TestQueryOffsetBeyondTotal(t *testing.T) {
	result := Query(testRecords, Params{Limit: 10, Offset: 100000})

	if len(result.Components) != 0 {
		t.Errorf("expected empty page, got %d records", len(result.Components))
	}
	if result.HasMore {
		t.Error("hasMore must be false past the end")
	}
	if result.Total != len(testRecords) {
		t.Errorf("total: got %d, want %d", result.Total, len(testRecords))
	}
}

func TestQueryEmptyRecords(t *testing.T) {
	result := Query(nil, Params{Category: "forms", Search: "nova", Limit: 10})

	if result.Total != 0 || len(result.Components) != 0 || result.HasMore {
		t.Errorf("empty input must yield empty result: %+v", result)
	}
}

func TestQueryHasMoreBoundary(t *testing.T) {
	// Window exactly covering the filtered set: no more records.
	exact := Query(testRecords, Params{Category: "forms", Limit: 60})
	if exact.HasMore {
		t.Error("hasMore must be false when the page covers every match")
	}

	// One short of the end: more records remain.
	short := Query(testRecords, Params{Category: "forms", Limit: 59})
	if !short.HasMore {
		t.Error("hasMore must be true when one record remains")
	}
}

func TestQueryCombinedFilters(t *testing.T) {
	result := Query(testRecords, Params{
		Category: "forms",
		Tags:     []string{"ai-ready"},
		Search:   "nova",
		Limit:    MaxLimit,
	})

	for _, rec := range result.Components {
		if rec.Category != models.CategoryForms {
			t.Fatalf("record %q: wrong category %s", rec.ID, rec.Category)
		}
		if !rec.HasTag("ai-ready") {
			t.Fatalf("record %q: missing tag", rec.ID)
		}
		haystack := strings.ToLower(rec.Name + " " + rec.Description + " " + strings.Join(rec.Tags, " "))
		if !strings.Contains(haystack, "nova") {
			t.Fatalf("record %q: search mismatch", rec.ID)
		}
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	before := len(testRecords)
	Query(testRecords, Params{Category: "forms", Limit: 5, Offset: 2})
	if len(testRecords) != before {
		t.Fatal("query must not mutate the record set")
	}
}
