package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/claims-copilot/backend/internal/models"
)

// Postgres serves the CaseStore contract from a database. Selected by
// main only when DATABASE_URL is set.
type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Postgres{Pool: pool}, nil
}

func (p *Postgres) Close() {
	p.Pool.Close()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

const caseColumns = `id, case_number, type, jurisdiction, priority, monetary_value, risk_level, status, claimant_name, date_opened, last_updated, description, COALESCE(assigned_agent, '')`

func scanCase(row pgx.Row) (models.Case, error) {
	var c models.Case
	err := row.Scan(&c.ID, &c.CaseNumber, &c.Type, &c.Jurisdiction, &c.Priority, &c.MonetaryValue,
		&c.RiskLevel, &c.Status, &c.ClaimantName, &c.DateOpened, &c.LastUpdated, &c.Description, &c.AssignedAgent)
	return c, err
}

func (p *Postgres) ListCases(ctx context.Context) ([]models.Case, error) {
	rows, err := p.Pool.Query(ctx, `SELECT `+caseColumns+` FROM cases ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) GetCase(ctx context.Context, id string) (models.Case, error) {
	c, err := scanCase(p.Pool.QueryRow(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Case{}, ErrNotFound
	}
	return c, err
}

func (p *Postgres) KnowledgeForCase(ctx context.Context, caseID string) ([]models.KnowledgeItem, error) {
	if _, err := p.GetCase(ctx, caseID); err != nil {
		return nil, err
	}

	rows, err := p.Pool.Query(ctx, `SELECT id, case_id, type, title, content, confidence_score, compliance_impact, requires_review, citations
		FROM knowledge_items WHERE case_id = $1 ORDER BY position ASC`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.KnowledgeItem{}
	for rows.Next() {
		var k models.KnowledgeItem
		var citations []byte
		if err := rows.Scan(&k.ID, &k.CaseID, &k.Type, &k.Title, &k.Content, &k.ConfidenceScore,
			&k.ComplianceImpact, &k.RequiresReview, &citations); err != nil {
			return nil, err
		}
		if len(citations) > 0 {
			if err := json.Unmarshal(citations, &k.Citations); err != nil {
				return nil, err
			}
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (p *Postgres) ListDocuments(ctx context.Context, f DocumentFilter) ([]models.PolicyDocument, error) {
	query := `SELECT id, name, type, version, jurisdiction, last_updated, status, chunk_count FROM policy_documents`
	var args []any
	var wheres []string
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		wheres = append(wheres, fmt.Sprintf("(name ILIKE $%d OR jurisdiction ILIKE $%d)", len(args), len(args)))
	}
	if !filterAny(f.Type) {
		args = append(args, f.Type)
		wheres = append(wheres, fmt.Sprintf("type = $%d", len(args)))
	}
	if !filterAny(f.Jurisdiction) {
		args = append(args, f.Jurisdiction)
		wheres = append(wheres, fmt.Sprintf("jurisdiction = $%d", len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY position ASC"

	rows, err := p.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PolicyDocument{}
	for rows.Next() {
		var d models.PolicyDocument
		if err := rows.Scan(&d.ID, &d.Name, &d.Type, &d.Version, &d.Jurisdiction, &d.LastUpdated, &d.Status, &d.ChunkCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (p *Postgres) ListPolicyChanges(ctx context.Context, severity string) ([]models.PolicyChange, error) {
	query := `SELECT id, document_name, change_type, COALESCE(old_version, ''), COALESCE(new_version, ''), affected_cases, severity, changed_date, summary FROM policy_changes`
	var args []any
	if !filterAny(severity) {
		args = append(args, severity)
		query += " WHERE severity = $1"
	}
	query += " ORDER BY changed_date DESC"

	rows, err := p.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PolicyChange{}
	for rows.Next() {
		var c models.PolicyChange
		if err := rows.Scan(&c.ID, &c.DocumentName, &c.ChangeType, &c.OldVersion, &c.NewVersion,
			&c.AffectedCases, &c.Severity, &c.ChangedDate, &c.Summary); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) Analytics(ctx context.Context) (models.Analytics, error) {
	var payload []byte
	err := p.Pool.QueryRow(ctx, `SELECT payload FROM analytics_snapshots ORDER BY created_at DESC LIMIT 1`).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Analytics{}, ErrNotFound
	}
	if err != nil {
		return models.Analytics{}, err
	}
	var a models.Analytics
	if err := json.Unmarshal(payload, &a); err != nil {
		return models.Analytics{}, err
	}
	return a, nil
}
