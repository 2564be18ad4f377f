// Package session keeps the authenticated user snapshot and credential that
// the original site held in browser storage, behind an explicit store so
// deployments choose redis and tests choose memory.
package session

import (
	"context"
	"time"

	"github.com/iaamonline/member-portal/internal/model"
)

// Snapshot is what gets cached per session: the profile at login time plus
// the CMS credential.
type Snapshot struct {
	User model.AuthUser `json:"user"`
	JWT  string         `json:"jwt"`
}

// DefaultTTL bounds how long a snapshot is trusted before the CMS is asked
// again.
const DefaultTTL = 72 * time.Hour

type Store interface {
	Get(ctx context.Context, key string) (*Snapshot, error)
	Set(ctx context.Context, key string, snap Snapshot, ttl time.Duration) error
	Clear(ctx context.Context, key string) error
}
