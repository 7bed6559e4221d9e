package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates identifiers for assets and activity-log entries.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
