package store

import (
	"context"
	"strings"

	"github.com/claims-copilot/backend/internal/models"
)

// Memory is the fixture-backed store. All lists preserve source order;
// there is no pagination or ranking anywhere.
type Memory struct {
	cases     []models.Case
	knowledge []models.KnowledgeItem
	documents []models.PolicyDocument
	changes   []models.PolicyChange
	analytics models.Analytics
}

func NewMemory(
	cases []models.Case,
	knowledge []models.KnowledgeItem,
	documents []models.PolicyDocument,
	changes []models.PolicyChange,
	analytics models.Analytics,
) *Memory {
	return &Memory{
		cases:     cases,
		knowledge: knowledge,
		documents: documents,
		changes:   changes,
		analytics: analytics,
	}
}

func (m *Memory) ListCases(ctx context.Context) ([]models.Case, error) {
	out := make([]models.Case, len(m.cases))
	copy(out, m.cases)
	return out, nil
}

func (m *Memory) GetCase(ctx context.Context, id string) (models.Case, error) {
	for _, c := range m.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Case{}, ErrNotFound
}

func (m *Memory) KnowledgeForCase(ctx context.Context, caseID string) ([]models.KnowledgeItem, error) {
	if _, err := m.GetCase(ctx, caseID); err != nil {
		return nil, err
	}
	out := []models.KnowledgeItem{}
	for _, k := range m.knowledge {
		if k.CaseID == caseID {
			out = append(out, k)
		}
	}
	return out, nil
}

func (m *Memory) ListDocuments(ctx context.Context, f DocumentFilter) ([]models.PolicyDocument, error) {
	q := strings.ToLower(f.Query)
	out := []models.PolicyDocument{}
	for _, d := range m.documents {
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Jurisdiction), q) {
			continue
		}
		if !filterAny(f.Type) && d.Type != f.Type {
			continue
		}
		if !filterAny(f.Jurisdiction) && d.Jurisdiction != f.Jurisdiction {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *Memory) ListPolicyChanges(ctx context.Context, severity string) ([]models.PolicyChange, error) {
	out := []models.PolicyChange{}
	for _, c := range m.changes {
		if !filterAny(severity) && string(c.Severity) != severity {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *Memory) Analytics(ctx context.Context) (models.Analytics, error) {
	return m.analytics, nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() {}
