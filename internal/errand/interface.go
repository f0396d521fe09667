package errand

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Pipeline
	Plan(ctx context.Context, input PlanInput) (PlanOutput, error)
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// History
	ListHistory(ctx context.Context, input ListHistoryInput) (ListHistoryOutput, error)
	ToggleHistory(ctx context.Context, id string) (ToggleHistoryOutput, error)
	ClearHistory(ctx context.Context) error

	// Latest route hand-off for map clients
	LatestRoute(ctx context.Context) (LatestRouteOutput, error)
	DecodeLatestPolyline(ctx context.Context) (DecodeLatestPolylineOutput, error)
}
