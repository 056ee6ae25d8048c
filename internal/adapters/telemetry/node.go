package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/precomp/internal/core/ports"

	progrockadapter "go.trai.ch/precomp/internal/adapters/telemetry/progrock"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			if os.Getenv("PRECOMP_NO_PROGRESS") != "" {
				return NewNoOp(), nil
			}
			return progrockadapter.New(), nil
		},
	})
}
