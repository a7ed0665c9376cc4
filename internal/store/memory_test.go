package store

import (
	"context"
	"strings"
	"testing"

	"github.com/claims-copilot/backend/internal/fixtures"
)

func newTestMemory() *Memory {
	return NewMemory(
		fixtures.Cases(),
		fixtures.KnowledgeItems(),
		fixtures.PolicyDocuments(),
		fixtures.PolicyChanges(),
		fixtures.AnalyticsData(),
	)
}

func TestListDocumentsUnfiltered(t *testing.T) {
	m := newTestMemory()
	all := fixtures.PolicyDocuments()

	got, err := m.ListDocuments(context.Background(), DocumentFilter{Type: "all", Jurisdiction: "all"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(all) {
		t.Fatalf("expected %d documents, got %d", len(all), len(got))
	}
	for i := range got {
		if got[i].ID != all[i].ID {
			t.Fatalf("order broken at %d: %s != %s", i, got[i].ID, all[i].ID)
		}
	}
}

func TestListDocumentsSearchCaseInsensitive(t *testing.T) {
	m := newTestMemory()

	got, err := m.ListDocuments(context.Background(), DocumentFilter{Query: "FLOOD"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected flood documents")
	}
	for _, d := range got {
		if !containsFold(d.Name, "flood") && !containsFold(d.Jurisdiction, "flood") {
			t.Fatalf("document %s does not match 'flood'", d.ID)
		}
	}
}

func TestListDocumentsJurisdictionSearch(t *testing.T) {
	m := newTestMemory()

	// matches jurisdiction even when the name does not
	got, err := m.ListDocuments(context.Background(), DocumentFilter{Query: "california"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 California documents, got %d", len(got))
	}
}

func TestListDocumentsCombinedFilters(t *testing.T) {
	m := newTestMemory()

	got, err := m.ListDocuments(context.Background(), DocumentFilter{
		Query:        "flood",
		Type:         "regulation",
		Jurisdiction: "Florida, USA",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, d := range got {
		if d.Type != "regulation" || d.Jurisdiction != "Florida, USA" {
			t.Fatalf("filter leaked: %+v", d)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly the remapping bulletin, got %d docs", len(got))
	}
}

func TestGetCaseNotFound(t *testing.T) {
	m := newTestMemory()
	if _, err := m.GetCase(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKnowledgeForCase(t *testing.T) {
	m := newTestMemory()

	items, err := m.KnowledgeForCase(context.Background(), "case-001")
	if err != nil {
		t.Fatalf("knowledge: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items for case-001, got %d", len(items))
	}
	for _, k := range items {
		if k.CaseID != "case-001" {
			t.Fatalf("item %s belongs to %s", k.ID, k.CaseID)
		}
		if len(k.Citations) == 0 {
			t.Fatalf("item %s has no citations", k.ID)
		}
	}

	if _, err := m.KnowledgeForCase(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown case, got %v", err)
	}
}

func TestListPolicyChangesSeverityFilter(t *testing.T) {
	m := newTestMemory()

	all, err := m.ListPolicyChanges(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(fixtures.PolicyChanges()) {
		t.Fatalf("expected unfiltered feed, got %d", len(all))
	}

	high, err := m.ListPolicyChanges(context.Background(), "High")
	if err != nil {
		t.Fatalf("list high: %v", err)
	}
	if len(high) != 2 {
		t.Fatalf("expected 2 high-severity changes, got %d", len(high))
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
