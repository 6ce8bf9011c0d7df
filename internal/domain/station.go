package domain

import "time"

// StationKind is the monitoring item code stamped on a station.
type StationKind string

const (
	StationKindFlow         StationKind = "Q"
	StationKindWaterLevel   StationKind = "H"
	StationKindWaterQuality StationKind = "WQ"
	StationKindRainfall     StationKind = "P"
)

// StationRef pairs an external station code with its internal identifier.
type StationRef struct {
	Code string `json:"code"`
	ID   int64  `json:"id"`
}

// Station represents a monitoring station in the directory.
type Station struct {
	ID        int64       `json:"id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Kind      StationKind `json:"kind"`
	Lifecycle Lifecycle   `json:"-"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Ref returns the code/id pair of the station.
func (s Station) Ref() StationRef {
	return StationRef{Code: s.Code, ID: s.ID}
}

// LifecycleState is either active or tombstoned.
type LifecycleState int

const (
	LifecycleActive LifecycleState = iota
	LifecycleTombstoned
)

// Lifecycle tracks soft deletion of a persisted entity.
// The zero value is active.
type Lifecycle struct {
	state        LifecycleState
	tombstonedAt time.Time
}

// Active returns an active lifecycle.
func Active() Lifecycle {
	return Lifecycle{state: LifecycleActive}
}

// TombstonedAt returns a lifecycle tombstoned at t.
func TombstonedAt(t time.Time) Lifecycle {
	return Lifecycle{state: LifecycleTombstoned, tombstonedAt: t}
}

// LifecycleFromDeletedAt maps a nullable deleted_at column to a Lifecycle.
func LifecycleFromDeletedAt(deletedAt *time.Time) Lifecycle {
	if deletedAt == nil {
		return Active()
	}
	return TombstonedAt(*deletedAt)
}

// State returns the lifecycle state.
func (l Lifecycle) State() LifecycleState {
	return l.state
}

// IsActive reports whether the entity is live.
func (l Lifecycle) IsActive() bool {
	return l.state == LifecycleActive
}

// Tombstone returns when the entity was tombstoned, if it was.
func (l Lifecycle) Tombstone() (time.Time, bool) {
	if l.state != LifecycleTombstoned {
		return time.Time{}, false
	}
	return l.tombstonedAt, true
}
