package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"feedwatch/internal/model"
	"feedwatch/internal/service"
)

type SubscriptionHandler struct {
	service service.SubscriptionService
}

type createSubscriptionRequest struct {
	ChannelID string `json:"channelId"`
	GuildID   string `json:"guildId"`
	Name      string `json:"name"`
	URL       string `json:"url"`
}

type subscriptionResponse struct {
	Name      string `json:"name"`
	ChannelID string `json:"channelId"`
	GuildID   string `json:"guildId"`
	URL       string `json:"url"`
}

func NewSubscriptionHandler(service service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/subscriptions", h.Create)
	g.GET("/subscriptions", h.List)
	g.GET("/subscriptions/:channelID", h.Get)
	g.DELETE("/subscriptions/:channelID", h.Delete)
}

// Create subscribes a channel to a feed.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	channelID, err := strconv.ParseInt(req.ChannelID, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid channelId"})
	}
	guildID, err := strconv.ParseInt(req.GuildID, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid guildId"})
	}

	feed, err := h.service.Subscribe(c.Request().Context(), channelID, guildID, req.Name, req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSubscriptionResponse(feed))
}

// List returns a guild's subscriptions ordered by channel.
func (h *SubscriptionHandler) List(c echo.Context) error {
	guildID, err := strconv.ParseInt(c.QueryParam("guildId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid guildId"})
	}

	feeds, err := h.service.List(c.Request().Context(), guildID)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]subscriptionResponse, 0, len(feeds))
	for _, feed := range feeds {
		response = append(response, toSubscriptionResponse(feed))
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns the subscription for a channel.
func (h *SubscriptionHandler) Get(c echo.Context) error {
	channelID, err := parseIDParam(c, "channelID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid channelId"})
	}

	feed, err := h.service.Get(c.Request().Context(), channelID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if feed == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	}
	return c.JSON(http.StatusOK, toSubscriptionResponse(*feed))
}

// Delete removes a channel's subscription and its delivery history.
// Deleting a channel that has no subscription succeeds.
func (h *SubscriptionHandler) Delete(c echo.Context) error {
	channelID, err := parseIDParam(c, "channelID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid channelId"})
	}

	if err := h.service.Unsubscribe(c.Request().Context(), channelID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toSubscriptionResponse(feed model.Feed) subscriptionResponse {
	return subscriptionResponse{
		Name:      feed.Name,
		ChannelID: idToString(feed.ChannelID),
		GuildID:   idToString(feed.GuildID),
		URL:       feed.URL,
	}
}
