package http

import (
	"github.com/gin-gonic/gin"

	"errand-planner/pkg/response"
)

// Plan godoc
// @Summary     Plan an errand trip
// @Description Extracts tasks from free text, finds the nearest place for each and orders them into one trip.
// @Tags        Errands
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Errand text and current position"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request - location missing"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/errands/plan [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Plan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Extract godoc
// @Summary     Preview task extraction
// @Description Returns the categorized tasks for a sentence without searching for places.
// @Tags        Errands
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Errand text"
// @Success     200  {object} parsedResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/errands/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// ListHistory godoc
// @Summary     List planning history
// @Description Returns past planning runs, newest first.
// @Tags        History
// @Produce     json
// @Param       status query string false "Filter: all, completed or pending (default: all)"
// @Success     200 {object} listHistoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/errands/history [GET]
func (h *handler) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListHistory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListHistoryResp(output))
}

// ToggleHistory godoc
// @Summary     Toggle a history entry
// @Description Flips the completed flag of one history entry.
// @Tags        History
// @Produce     json
// @Param       id path string true "History entry ID"
// @Success     200 {object} toggleHistoryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/errands/history/{id}/toggle [PATCH]
func (h *handler) ToggleHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.ToggleHistory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear history
// @Description Removes every history entry.
// @Tags        History
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/errands/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearHistory(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// LatestRoute godoc
// @Summary     Latest planned route
// @Description Returns the most recent route with its decoded polyline points for map rendering.
// @Tags        Errands
// @Produce     json
// @Success     200 {object} latestRouteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/errands/route/latest [GET]
func (h *handler) LatestRoute(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.LatestRoute(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.LatestRoute: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLatestRouteResp(output))
}

// LatestRoutePoints godoc
// @Summary     Latest route path
// @Description Returns only the decoded polyline points of the most recent route. Empty when the route has no polyline.
// @Tags        Errands
// @Produce     json
// @Success     200 {object} routePointsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/errands/route/latest/points [GET]
func (h *handler) LatestRoutePoints(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DecodeLatestPolyline(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.DecodeLatestPolyline: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRoutePointsResp(output))
}
