package resolver

import (
	"strconv"
	"strings"

	"errand-planner/pkg/foursquare"
)

// cacheKey identifies a search. The origin is kept at full precision since
// cached results carry distances measured from it.
func cacheKey(req foursquare.SearchRequest) string {
	return strings.Join([]string{
		strings.ToLower(req.Query),
		strings.Join(req.Categories, ","),
		strconv.FormatFloat(req.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(req.Longitude, 'f', -1, 64),
		strconv.Itoa(req.Radius),
		strconv.Itoa(req.Limit),
	}, "|")
}
