package usecase

import (
	"context"

	"errand-planner/internal/errand"
	"errand-planner/pkg/polyline"
)

// LatestRoute returns the most recently planned route with its decoded path.
func (uc *implUseCase) LatestRoute(ctx context.Context) (errand.LatestRouteOutput, error) {
	route, ok, err := uc.repo.GetLatestRoute(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.LatestRoute: %v", err)
		return errand.LatestRouteOutput{}, err
	}
	if !ok {
		return errand.LatestRouteOutput{}, errand.ErrNoLatestRoute
	}

	return errand.LatestRouteOutput{
		Route:  route,
		Points: uc.decode(ctx, route.Polyline),
	}, nil
}

// DecodeLatestPolyline returns the latest route's path points, empty when
// the route has no polyline.
func (uc *implUseCase) DecodeLatestPolyline(ctx context.Context) (errand.DecodeLatestPolylineOutput, error) {
	out, err := uc.LatestRoute(ctx)
	if err != nil {
		return errand.DecodeLatestPolylineOutput{}, err
	}
	return errand.DecodeLatestPolylineOutput{Points: out.Points}, nil
}

func (uc *implUseCase) decode(ctx context.Context, encoded string) []polyline.Point {
	if encoded == "" {
		return []polyline.Point{}
	}
	points, err := polyline.Decode(encoded)
	if err != nil {
		uc.l.Warnf(ctx, "uc.decode: %v", err)
		return []polyline.Point{}
	}
	return points
}
