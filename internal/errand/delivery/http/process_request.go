package http

import (
	"html"
	"strings"

	"github.com/gin-gonic/gin"
)

// processPlanReq binds, sanitizes and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskInput = h.sanitize(req.TaskInput)
	return req, req.validate()
}

// processExtractReq binds and sanitizes the extract request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskInput = h.sanitize(req.TaskInput)
	return req, req.validate()
}

// processListHistoryReq binds the history query parameters.
func (h *handler) processListHistoryReq(c *gin.Context) (listHistoryReq, error) {
	var req listHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	return req, req.validate()
}

// sanitize strips markup. The policy escapes text, so entities are decoded
// back to keep "eggs & milk" intact.
func (h *handler) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(h.sanitizer.Sanitize(s)))
}
