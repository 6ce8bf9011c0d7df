package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/metrics"
	"hydromon/internal/repository"
)

// StationResolver maps external station codes to internal identifiers,
// creating stations for unknown codes.
type StationResolver struct {
	stations repository.StationRepository
	variant  domain.Variant
}

// NewStationResolver creates a resolver that tags new stations with the variant's kind.
func NewStationResolver(stations repository.StationRepository, variant domain.Variant) *StationResolver {
	return &StationResolver{stations: stations, variant: variant}
}

// Resolve returns a code to id map covering every code. names holds the
// display name to use when a code has to be created; a missing or empty name
// falls back to the code. The returned map is the job's station cache.
func (r *StationResolver) Resolve(ctx context.Context, codes []string, names map[string]string) (map[string]int64, error) {
	resolved := make(map[string]int64, len(codes))
	if len(codes) == 0 {
		return resolved, nil
	}

	refs, err := r.stations.FindByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("find stations: %w", err)
	}
	for _, ref := range refs {
		resolved[ref.Code] = ref.ID
	}

	var missing []string
	for _, code := range codes {
		if _, ok := resolved[code]; !ok {
			missing = append(missing, code)
		}
	}
	sort.Strings(missing)

	kind := r.variant.StationKind()
	for _, code := range missing {
		name := names[code]
		if name == "" {
			name = code
		}

		id, err := r.stations.Create(ctx, code, name, kind)
		if err != nil {
			return nil, fmt.Errorf("create station %s: %w", code, err)
		}
		resolved[code] = id
		metrics.StationProvisioned(string(r.variant))
	}

	if len(missing) > 0 {
		logger.FromContext(ctx).InfoContext(ctx, "Auto-provisioned stations",
			slog.String("variant", string(r.variant)),
			slog.Int("created", len(missing)),
			slog.Int("existing", len(refs)))
	}

	return resolved, nil
}
