package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"hydromon/internal/domain"
)

var seriesTables = map[domain.Variant]string{
	domain.VariantFlow:         "flow_monitoring_data",
	domain.VariantWaterLevel:   "water_level_monitoring_data",
	domain.VariantWaterQuality: "water_quality_monitoring_data",
	domain.VariantRainfall:     "rainfall_monitoring_data",
}

// chartScale is the number of decimal places kept in chart averages.
const chartScale = 3

// PostgresSeriesRepository implements SeriesRepository for one variant table.
// Measurement columns are named after the variant's measurement fields.
type PostgresSeriesRepository[M domain.Measurement] struct {
	pool         *pgxpool.Pool
	table        string
	valueColumns []string
}

// NewPostgresSeriesRepository creates a repository for the variant of M.
func NewPostgresSeriesRepository[M domain.Measurement](pool *pgxpool.Pool) *PostgresSeriesRepository[M] {
	var zero M
	fields := zero.Fields()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	return &PostgresSeriesRepository[M]{
		pool:         pool,
		table:        seriesTables[zero.Variant()],
		valueColumns: columns,
	}
}

// ExistingTimes returns the subset of times that already have an active record.
func (r *PostgresSeriesRepository[M]) ExistingTimes(ctx context.Context, stationID int64, times []time.Time) ([]time.Time, error) {
	if len(times) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT monitoring_time
		FROM %s
		WHERE station_id = $1 AND monitoring_time = ANY($2) AND deleted_at IS NULL
	`, r.table), stationID, times)
	if err != nil {
		return nil, fmt.Errorf("query existing times: %w", err)
	}

	existing, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("scan existing times: %w", err)
	}
	return existing, nil
}

// InsertBatch copies records into the table inside one transaction.
// Either every record is persisted or none is.
func (r *PostgresSeriesRepository[M]) InsertBatch(ctx context.Context, records []domain.ValidatedRecord[M]) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	columns := make([]string, 0, len(r.valueColumns)+8)
	columns = append(columns, "station_id", "monitoring_time")
	columns = append(columns, r.valueColumns...)
	columns = append(columns, "data_quality", "collection_method", "data_source", "remark", "created_at", "updated_at")

	now := time.Now()
	copied, err := tx.CopyFrom(ctx, pgx.Identifier{r.table}, columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			row := make([]any, 0, len(columns))
			row = append(row, rec.StationID, rec.MonitoringTime)
			for _, f := range rec.Measurement.Fields() {
				row = append(row, toNumeric(f.Value))
			}
			return append(row, int16(rec.Quality), string(rec.CollectionMethod),
				rec.DataSource, rec.Remark, now, now), nil
		}))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", r.table, err)
	}
	if copied != int64(len(records)) {
		return fmt.Errorf("copy into %s: wrote %d of %d rows", r.table, copied, len(records))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// recordConditions returns the WHERE clause over alias d for filter, with its
// arguments as $1..$6.
func recordConditions(filter domain.RecordFilter) (string, []any) {
	var quality *int16
	if filter.Quality != nil {
		q := int16(*filter.Quality)
		quality = &q
	}
	var method *string
	if filter.CollectionMethod != nil {
		m := string(*filter.CollectionMethod)
		method = &m
	}

	return `d.deleted_at IS NULL
			AND ($1::bigint IS NULL OR d.station_id = $1)
			AND ($2::timestamp IS NULL OR d.monitoring_time >= $2)
			AND ($3::timestamp IS NULL OR d.monitoring_time < $3)
			AND ($4::smallint IS NULL OR d.data_quality = $4)
			AND ($5::text IS NULL OR d.collection_method = $5)
			AND ($6::text IS NULL OR d.data_source = $6)`,
		[]any{filter.StationID, filter.Start, filter.End, quality, method, filter.DataSource}
}

var sortClauses = map[domain.SortOrder]string{
	domain.SortTimeDesc: "d.monitoring_time DESC, d.station_id",
	domain.SortTimeAsc:  "d.monitoring_time ASC, d.station_id",
}

func (r *PostgresSeriesRepository[M]) selectRecords() string {
	valueSelect := make([]string, len(r.valueColumns))
	for i, c := range r.valueColumns {
		valueSelect[i] = "d." + c
	}
	return fmt.Sprintf(`
		SELECT d.id, d.station_id, s.station_code, s.name, d.monitoring_time, %s,
			d.data_quality, d.collection_method, d.data_source, d.remark
		FROM %s d
		JOIN monitoring_stations s ON s.id = d.station_id`, strings.Join(valueSelect, ", "), r.table)
}

func (r *PostgresSeriesRepository[M]) scanRecord(rows pgx.Rows) (domain.StoredRecord, error) {
	var rec domain.StoredRecord
	var quality int16
	var method string
	values := make([]pgtype.Numeric, len(r.valueColumns))

	dest := make([]any, 0, len(values)+9)
	dest = append(dest, &rec.ID, &rec.StationID, &rec.StationCode, &rec.StationName, &rec.MonitoringTime)
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &quality, &method, &rec.DataSource, &rec.Remark)

	if err := rows.Scan(dest...); err != nil {
		return rec, fmt.Errorf("scan %s row: %w", r.table, err)
	}

	rec.Quality = domain.Quality(quality)
	rec.CollectionMethod = domain.CollectionMethod(method)
	rec.Values = make([]*decimal.Decimal, len(values))
	for i, v := range values {
		rec.Values[i] = fromNumeric(v)
	}
	return rec, nil
}

// StreamAll streams active records ordered by station and time with O(1) memory.
func (r *PostgresSeriesRepository[M]) StreamAll(ctx context.Context, filter domain.RecordFilter, callback func(domain.StoredRecord) error) error {
	where, args := recordConditions(filter)
	rows, err := r.pool.Query(ctx, r.selectRecords()+`
		WHERE `+where+`
		ORDER BY d.station_id, d.monitoring_time`, args...)
	if err != nil {
		return fmt.Errorf("query %s: %w", r.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return err
		}
		if err := callback(rec); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// ListPage returns one page of active records and the number of records matching the filter.
func (r *PostgresSeriesRepository[M]) ListPage(ctx context.Context, q domain.PageQuery) (domain.RecordPage, error) {
	page := domain.RecordPage{
		Fields: r.valueColumns,
		Items:  []domain.StoredRecord{},
		Page:   q.Page,
		Size:   q.Size,
	}

	orderBy, ok := sortClauses[q.Sort]
	if !ok {
		return page, fmt.Errorf("unsupported sort order %q", q.Sort)
	}

	where, args := recordConditions(q.Filter)
	var total int64
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s d WHERE %s`, r.table, where), args...).
		Scan(&total); err != nil {
		return page, fmt.Errorf("count %s: %w", r.table, err)
	}
	page.Total = int(total)
	if total == 0 || q.Offset() >= page.Total {
		return page, nil
	}

	rows, err := r.pool.Query(ctx, r.selectRecords()+`
		WHERE `+where+`
		ORDER BY `+orderBy+`
		LIMIT $7 OFFSET $8`, append(args, q.Size, q.Offset())...)
	if err != nil {
		return page, fmt.Errorf("query %s page: %w", r.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return page, err
		}
		page.Items = append(page.Items, rec)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("iterate %s page: %w", r.table, err)
	}
	return page, nil
}

// Aggregate averages one measurement field of a station per interval bucket,
// ordered by bucket. Only buckets holding at least one active record are returned.
func (r *PostgresSeriesRepository[M]) Aggregate(ctx context.Context, q domain.ChartQuery) ([]domain.ChartPoint, error) {
	if !slices.Contains(r.valueColumns, q.Field) {
		return nil, fmt.Errorf("%s has no measurement field %q", r.table, q.Field)
	}
	if !q.Interval.IsValid() {
		return nil, fmt.Errorf("unsupported chart interval %q", q.Interval)
	}

	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT date_trunc($1::text, d.monitoring_time) AS bucket, ROUND(AVG(d.%s), %d)
		FROM %s d
		WHERE d.deleted_at IS NULL
			AND d.station_id = $2
			AND ($3::timestamp IS NULL OR d.monitoring_time >= $3)
			AND ($4::timestamp IS NULL OR d.monitoring_time < $4)
		GROUP BY bucket
		ORDER BY bucket
	`, q.Field, chartScale, r.table), string(q.Interval), q.StationID, q.Start, q.End)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", r.table, err)
	}

	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChartPoint, error) {
		var p domain.ChartPoint
		var avg pgtype.Numeric
		if err := row.Scan(&p.Bucket, &avg); err != nil {
			return p, err
		}
		p.Value = fromNumeric(avg)
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s aggregate: %w", r.table, err)
	}
	return points, nil
}

func toNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return nil
	}
	d := decimal.NewFromBigInt(n.Int, n.Exp)
	return &d
}
