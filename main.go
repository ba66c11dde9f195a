package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mohamedthameursassi/flightroutes/config"
	"github.com/mohamedthameursassi/flightroutes/handlers"
	"github.com/mohamedthameursassi/flightroutes/middleware"
	"github.com/mohamedthameursassi/flightroutes/services"
	"github.com/mohamedthameursassi/flightroutes/utils"
)

func main() {
	utils.InitLogging()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Loading route network from %q source...", cfg.Network.Source)
	network, err := services.BuildNetwork(context.Background(), cfg.Network)
	if err != nil {
		log.Fatalf("Failed to build route network: %v", err)
	}

	routingService := services.NewRoutingService(network, services.RoutingOptions{
		DefaultStrategy: utils.ParseStrategy(cfg.Routing.DefaultStrategy),
		CombinedScale:   cfg.Routing.CombinedScale,
		TotalsMinLegs:   cfg.Routing.TotalsMinLegs,
	})
	routingHandler := handlers.NewRoutingHandler(routingService)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 0 || cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	routingHandler.RegisterRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"locations":   network.Graph.NodeCount(),
			"connections": network.Graph.EdgeCount(),
			"rejected":    len(network.Report.Rejected),
		})
	})

	log.Printf("Flight route server starting on %s", cfg.Server.Addr())
	if err := r.Run(cfg.Server.Addr()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
