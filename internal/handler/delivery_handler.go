package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"feedwatch/internal/service"
)

type DeliveryHandler struct {
	service service.DeliveryService
}

type entryItem struct {
	EntryID string `json:"entryId"`
	Updated string `json:"updated"`
}

type entryBatchRequest struct {
	FeedName string      `json:"feedName"`
	Entries  []entryItem `json:"entries"`
}

type entryBatchResponse struct {
	Entries []entryItem `json:"entries"`
}

func NewDeliveryHandler(service service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{service: service}
}

func (h *DeliveryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/channels/:channelID/entries/filter", h.Filter)
	g.POST("/channels/:channelID/entries/seen", h.MarkSeen)
	g.POST("/channels/:channelID/entries/sift", h.Sift)
}

// Filter returns the subset of the batch not yet seen on the channel,
// without recording anything.
func (h *DeliveryHandler) Filter(c echo.Context) error {
	channelID, err := parseIDParam(c, "channelID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid channelId"})
	}
	var req entryBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	candidates, err := toCandidates(req.Entries)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entryId"})
	}

	novel, err := h.service.FilterNew(c.Request().Context(), channelID, req.FeedName, candidates)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEntryBatchResponse(novel))
}

// MarkSeen records the batch as delivered on the channel.
func (h *DeliveryHandler) MarkSeen(c echo.Context) error {
	channelID, err := parseIDParam(c, "channelID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid channelId"})
	}
	var req entryBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	candidates, err := toCandidates(req.Entries)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entryId"})
	}

	if err := h.service.RecordSeen(c.Request().Context(), channelID, req.FeedName, candidates); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Sift filters and records in one transaction. The entries in the
// response are already marked seen, so the caller can post them without
// a second round trip.
func (h *DeliveryHandler) Sift(c echo.Context) error {
	channelID, err := parseIDParam(c, "channelID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid channelId"})
	}
	var req entryBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	candidates, err := toCandidates(req.Entries)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entryId"})
	}

	novel, err := h.service.Sift(c.Request().Context(), channelID, req.FeedName, candidates)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEntryBatchResponse(novel))
}

func toCandidates(items []entryItem) ([]service.Candidate, error) {
	candidates := make([]service.Candidate, 0, len(items))
	for _, item := range items {
		entryID, err := strconv.ParseInt(item.EntryID, 10, 64)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, service.Candidate{EntryID: entryID, Updated: item.Updated})
	}
	return candidates, nil
}

func toEntryBatchResponse(candidates []service.Candidate) entryBatchResponse {
	response := entryBatchResponse{Entries: make([]entryItem, 0, len(candidates))}
	for _, candidate := range candidates {
		response.Entries = append(response.Entries, entryItem{
			EntryID: idToString(candidate.EntryID),
			Updated: candidate.Updated,
		})
	}
	return response
}
