package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-composer/internal/domain"
)

var ErrNotFound = errors.New("resume not found")

// ResumesRepo persists validated resumes. The document itself is stored as
// JSONB; the columns beside it exist for querying and soft deletion. The
// repo never mutates a document: updates replace the whole validated entity.
type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) Save(ctx context.Context, resume *domain.Resume) error {
	if r.pool == nil {
		return nil
	}

	doc, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, template, document, ai_generated, ai_prompt, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET template = EXCLUDED.template, document = EXCLUDED.document, ai_generated = EXCLUDED.ai_generated, ai_prompt = EXCLUDED.ai_prompt, is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at`,
		resume.ID, resume.UserID, string(resume.Template), doc, resume.AIGenerated, resume.AIPrompt, resume.IsActive, resume.CreatedAt, resume.UpdatedAt)
	return err
}

func (r *ResumesRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	if r.pool == nil {
		return nil, ErrNotFound
	}

	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT document FROM resumes WHERE id = $1 AND is_active`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var resume domain.Resume
	if err := json.Unmarshal(doc, &resume); err != nil {
		return nil, fmt.Errorf("decode stored resume %s: %w", id, err)
	}
	return &resume, nil
}

// Deactivate soft-deletes a resume. The document stays in place.
func (r *ResumesRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `UPDATE resumes SET is_active = false, updated_at = now() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
