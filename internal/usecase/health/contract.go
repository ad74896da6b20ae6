package health

import (
	"context"

	"github.com/kailas-cloud/medanswer/internal/domain/tree"
)

// DBPinger checks availability of the store the tree was loaded from.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// TreeReporter exposes the loaded document tree size.
type TreeReporter interface {
	TreeStats() tree.Stats
}
