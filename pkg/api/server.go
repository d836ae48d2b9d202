package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/talosati/refundrebel-dev-challenge/pkg/api/routes"
	"github.com/talosati/refundrebel-dev-challenge/pkg/config"
	"github.com/talosati/refundrebel-dev-challenge/pkg/dbstations"
	"github.com/talosati/refundrebel-dev-challenge/pkg/dbvendo"
	"github.com/talosati/refundrebel-dev-challenge/pkg/http_server"
)

func SetupServer(listen string, cfg config.Config) error {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())
	webApp.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendOrigin,
	}))

	vendoClient := dbvendo.NewClient(cfg.DBVendoBaseURL, cfg.FrontendOrigin)
	stationSource := dbstations.NewSource(cfg.StationsPath)

	group := webApp.Group("/api")

	group.Get("health", routes.Health)

	routes.StationsRouter(group.Group("/stations"), stationSource)
	routes.JourneysRouter(group.Group("/journeys"), vendoClient)
	routes.ArrivalsRouter(group.Group("/arrivals"), vendoClient)
	routes.ArrivalsAndDeparturesRouter(group.Group("/arrivalsAndDepartures"), vendoClient)

	return webApp.Listen(listen)
}
