// Package store abstracts where the dashboard data comes from. The
// default Memory store serves the built-in fixtures; Postgres serves
// the same contract from a database when DATABASE_URL is configured.
package store

import (
	"context"
	"errors"

	"github.com/claims-copilot/backend/internal/models"
)

var ErrNotFound = errors.New("store: not found")

// DocumentFilter narrows the policy document library. Query is a
// case-insensitive substring matched against name or jurisdiction;
// Type and Jurisdiction match exactly, with "" or "all" meaning any.
type DocumentFilter struct {
	Query        string
	Type         string
	Jurisdiction string
}

type CaseStore interface {
	ListCases(ctx context.Context) ([]models.Case, error)
	GetCase(ctx context.Context, id string) (models.Case, error)
	KnowledgeForCase(ctx context.Context, caseID string) ([]models.KnowledgeItem, error)
	ListDocuments(ctx context.Context, f DocumentFilter) ([]models.PolicyDocument, error)
	ListPolicyChanges(ctx context.Context, severity string) ([]models.PolicyChange, error)
	Analytics(ctx context.Context) (models.Analytics, error)
	Ping(ctx context.Context) error
	Close()
}

func filterAny(v string) bool {
	return v == "" || v == "all"
}
