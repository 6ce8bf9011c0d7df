package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hydromon/internal/domain"
)

// PostgresStationRepository implements StationRepository using PostgreSQL.
type PostgresStationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStationRepository creates a new PostgresStationRepository.
func NewPostgresStationRepository(pool *pgxpool.Pool) *PostgresStationRepository {
	return &PostgresStationRepository{pool: pool}
}

// FindByCodes looks up all codes in one query.
func (r *PostgresStationRepository) FindByCodes(ctx context.Context, codes []string) ([]domain.StationRef, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT station_code, id
		FROM monitoring_stations
		WHERE station_code = ANY($1) AND deleted_at IS NULL
	`, codes)
	if err != nil {
		return nil, fmt.Errorf("query stations by codes: %w", err)
	}
	defer rows.Close()

	refs := make([]domain.StationRef, 0, len(codes))
	for rows.Next() {
		var ref domain.StationRef
		if err := rows.Scan(&ref.Code, &ref.ID); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// Create inserts a station. A concurrent creation of the same code resolves to
// the station that won, so each active code maps to exactly one id.
func (r *PostgresStationRepository) Create(ctx context.Context, code, name string, kind domain.StationKind) (int64, error) {
	var id int64
	now := time.Now()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO monitoring_stations (station_code, name, monitoring_item_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (station_code) WHERE deleted_at IS NULL
		DO UPDATE SET station_code = EXCLUDED.station_code
		RETURNING id
	`, code, name, string(kind), now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert station %s: %w", code, err)
	}

	return id, nil
}

// GetByCode retrieves the newest station with the code; active stations take precedence.
func (r *PostgresStationRepository) GetByCode(ctx context.Context, code string) (*domain.Station, error) {
	var s domain.Station
	var kind string
	var deletedAt *time.Time

	err := r.pool.QueryRow(ctx, `
		SELECT id, station_code, name, monitoring_item_code, created_at, updated_at, deleted_at
		FROM monitoring_stations
		WHERE station_code = $1
		ORDER BY (deleted_at IS NULL) DESC, id DESC
		LIMIT 1
	`, code).Scan(&s.ID, &s.Code, &s.Name, &kind, &s.CreatedAt, &s.UpdatedAt, &deletedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get station by code: %w", err)
	}

	s.Kind = domain.StationKind(kind)
	s.Lifecycle = domain.LifecycleFromDeletedAt(deletedAt)
	return &s, nil
}
