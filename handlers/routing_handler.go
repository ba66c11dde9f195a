package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mohamedthameursassi/flightroutes/graph"
	"github.com/mohamedthameursassi/flightroutes/middleware"
	"github.com/mohamedthameursassi/flightroutes/models"
	"github.com/mohamedthameursassi/flightroutes/services"
	"github.com/mohamedthameursassi/flightroutes/utils"
)

const apiVersion = "v1"

type RoutingHandler struct {
	routingService *services.RoutingService
}

func NewRoutingHandler(routingService *services.RoutingService) *RoutingHandler {
	return &RoutingHandler{
		routingService: routingService,
	}
}

func (h *RoutingHandler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	api.GET("/locations", h.GetLocations)
	api.GET("/strategies", h.GetStrategies)
	api.GET("/routes", h.FindRoute)
	api.POST("/routes", h.FindRoute)
}

func (h *RoutingHandler) GetLocations(c *gin.Context) {
	start := time.Now()
	locations := h.routingService.Locations()
	count := len(locations)
	meta := newMeta(start)
	meta.ResultCount = &count
	c.JSON(http.StatusOK, models.ApiResponse{
		Success:   true,
		Data:      models.LocationsResponse{Locations: locations, Count: count},
		Meta:      meta,
		RequestID: requestID(c),
	})
}

func (h *RoutingHandler) GetStrategies(c *gin.Context) {
	start := time.Now()
	c.JSON(http.StatusOK, models.ApiResponse{
		Success: true,
		Data: models.StrategiesResponse{
			Strategies: h.routingService.Strategies(),
			Default:    h.routingService.DefaultStrategy(),
		},
		Meta:      newMeta(start),
		RequestID: requestID(c),
	})
}

// FindRoute answers both GET (query string) and POST (JSON body).
func (h *RoutingHandler) FindRoute(c *gin.Context) {
	start := time.Now()
	var req models.RouteRequest
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "INVALID_REQUEST", "origin and destination are required", err)
		return
	}

	result, err := h.routingService.FindRoute(c.Request.Context(), req.Origin, req.Destination, req.Strategy)
	if err != nil {
		status, code, message := classify(err)
		h.fail(c, status, code, message, err)
		return
	}

	meta := newMeta(start)
	legs := len(result.Legs)
	meta.ResultCount = &legs
	if result.ShowTotals {
		km := result.Totals.DistanceKm
		total := utils.FormatDuration(result.Totals.DurationMin)
		meta.TotalDistance = &km
		meta.TotalTime = &total
	}
	c.JSON(http.StatusOK, models.ApiResponse{
		Success:   true,
		Data:      result,
		Meta:      meta,
		RequestID: requestID(c),
	})
}

func (h *RoutingHandler) fail(c *gin.Context, status int, code, message string, err error) {
	if status >= http.StatusInternalServerError {
		log.Printf("Route query failed: %v", err)
	}
	c.Error(err)
	c.JSON(status, models.ApiResponse{
		Success: false,
		Error: &models.ApiError{
			Code:    code,
			Message: message,
			Details: err.Error(),
		},
		RequestID: requestID(c),
	})
}

// classify maps routing errors onto HTTP responses. A missing edge on a
// computed path is an internal fault, never a client error.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, graph.ErrUnknownLocation):
		return http.StatusNotFound, "UNKNOWN_LOCATION", "location unknown"
	case errors.Is(err, graph.ErrNoPath):
		return http.StatusNotFound, "NO_PATH", "no route exists"
	case errors.Is(err, services.ErrUnknownStrategy):
		return http.StatusBadRequest, "INVALID_REQUEST", "unknown strategy"
	default:
		return http.StatusInternalServerError, "INTERNAL", "route could not be computed"
	}
}

func newMeta(start time.Time) *models.MetaData {
	return &models.MetaData{
		ProcessTime: fmt.Sprintf("%.3f", float64(time.Since(start).Microseconds())/1000),
		ApiVersion:  apiVersion,
	}
}

func requestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}
