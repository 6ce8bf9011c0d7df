package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hydromon/internal/domain"
)

const importJobColumns = `id, variant, status, source, total_rows, success_rows, error_rows,
	duplicate_rows, errors, idempotency_token, error_message, created_at, updated_at, completed_at`

// PostgresJobRepository implements ImportJobRepository using PostgreSQL.
type PostgresJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresJobRepository creates a new PostgresJobRepository.
func NewPostgresJobRepository(pool *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{pool: pool}
}

// CreateImportJob creates a new import job. When another job already holds the
// idempotency token, job is replaced with the stored one.
func (r *PostgresJobRepository) CreateImportJob(ctx context.Context, job *domain.ImportJob) error {
	rowErrors, err := marshalErrors(job.Result.Errors)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO import_jobs (id, variant, status, source, total_rows, success_rows, error_rows,
			duplicate_rows, errors, idempotency_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, job.ID, job.Variant, job.Status, job.Source, job.Result.TotalRows, job.Result.SuccessRows,
		job.Result.ErrorRows, job.Result.DuplicateRows, rowErrors, job.IdempotencyToken,
		job.CreatedAt, job.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
			strings.Contains(pgErr.ConstraintName, "idempotency_token") {
			existingJob, fetchErr := r.GetImportJobByIdempotencyToken(ctx, job.IdempotencyToken)
			if fetchErr != nil {
				return fmt.Errorf("fetch existing job after race: %w", fetchErr)
			}
			if existingJob != nil {
				*job = *existingJob
				return nil
			}
		}
		return fmt.Errorf("insert import job: %w", err)
	}

	return nil
}

// GetImportJob retrieves an import job by ID.
func (r *PostgresJobRepository) GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+importJobColumns+` FROM import_jobs WHERE id = $1`, id)
	job, err := scanImportJob(row)
	if err != nil {
		return nil, fmt.Errorf("get import job: %w", err)
	}
	return job, nil
}

// GetImportJobByIdempotencyToken retrieves an import job by idempotency token.
func (r *PostgresJobRepository) GetImportJobByIdempotencyToken(ctx context.Context, token string) (*domain.ImportJob, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+importJobColumns+` FROM import_jobs WHERE idempotency_token = $1`, token)
	job, err := scanImportJob(row)
	if err != nil {
		return nil, fmt.Errorf("get import job by token: %w", err)
	}
	return job, nil
}

// UpdateImportJob updates an existing import job.
func (r *PostgresJobRepository) UpdateImportJob(ctx context.Context, job *domain.ImportJob) error {
	rowErrors, err := marshalErrors(job.Result.Errors)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE import_jobs
		SET status = $2, total_rows = $3, success_rows = $4, error_rows = $5,
			duplicate_rows = $6, errors = $7, error_message = $8,
			updated_at = $9, completed_at = $10
		WHERE id = $1
	`, job.ID, job.Status, job.Result.TotalRows, job.Result.SuccessRows, job.Result.ErrorRows,
		job.Result.DuplicateRows, rowErrors, job.ErrorMessage,
		job.UpdatedAt, job.CompletedAt)

	if err != nil {
		return fmt.Errorf("update import job: %w", err)
	}

	return nil
}

func marshalErrors(rowErrors []domain.ImportError) ([]byte, error) {
	if rowErrors == nil {
		rowErrors = []domain.ImportError{}
	}
	b, err := json.Marshal(rowErrors)
	if err != nil {
		return nil, fmt.Errorf("marshal row errors: %w", err)
	}
	return b, nil
}

// scanImportJob returns nil, nil when the row does not exist.
func scanImportJob(row pgx.Row) (*domain.ImportJob, error) {
	var job domain.ImportJob
	var rowErrors []byte
	var source *string
	var completedAt *time.Time

	err := row.Scan(&job.ID, &job.Variant, &job.Status, &source, &job.Result.TotalRows,
		&job.Result.SuccessRows, &job.Result.ErrorRows, &job.Result.DuplicateRows, &rowErrors,
		&job.IdempotencyToken, &job.ErrorMessage, &job.CreatedAt, &job.UpdatedAt, &completedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if rowErrors != nil {
		if err := json.Unmarshal(rowErrors, &job.Result.Errors); err != nil {
			return nil, fmt.Errorf("unmarshal row errors: %w", err)
		}
	}
	if source != nil {
		job.Source = *source
	}
	job.CompletedAt = completedAt

	return &job, nil
}
