package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/euroquote/internal/contracts"
)

// Kind tells which quote a snapshot wraps
type Kind string

const (
	KindDetailed Kind = "detailed"
	KindFull     Kind = "full"
)

// ParseKind accepts "detailed" (default when empty) or "full"
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindDetailed:
		return KindDetailed, nil
	case KindFull:
		return KindFull, nil
	default:
		return "", errors.New("kind must be detailed or full")
	}
}

// ErrNotFound is returned when no snapshot exists for an instrument
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is a stored copy of one successful quote fetch.
// Exactly one of Detailed and Full is set, matching Kind.
type Snapshot struct {
	ID        uuid.UUID                    `json:"id"`
	Ref       contracts.InstrumentRef      `json:"instrument"`
	Kind      Kind                         `json:"kind"`
	Detailed  *contracts.DetailedQuote     `json:"detailed,omitempty"`
	Full      *contracts.FullDetailedQuote `json:"full,omitempty"`
	FetchedAt time.Time                    `json:"fetched_at"`
}

// NewDetailed wraps a copy of a live quote
func NewDetailed(ref contracts.InstrumentRef, q contracts.DetailedQuote, at time.Time) Snapshot {
	return Snapshot{ID: uuid.New(), Ref: ref, Kind: KindDetailed, Detailed: &q, FetchedAt: at.UTC()}
}

// NewFull wraps a copy of a 52-week range quote
func NewFull(ref contracts.InstrumentRef, q contracts.FullDetailedQuote, at time.Time) Snapshot {
	return Snapshot{ID: uuid.New(), Ref: ref, Kind: KindFull, Full: &q, FetchedAt: at.UTC()}
}

// Store persists snapshots
// ⭐ SSOT: 시세 스냅샷 저장 인터페이스는 여기서만 정의
type Store interface {
	Save(ctx context.Context, s Snapshot) error
	Latest(ctx context.Context, ref contracts.InstrumentRef, kind Kind) (Snapshot, error)
}
