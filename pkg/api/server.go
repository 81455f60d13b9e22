package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/busnetwork/pkg/api/routes"
	"github.com/travigo/busnetwork/pkg/dataaggregator"
)

func NewApp(aggregator *dataaggregator.Aggregator) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StopsRouter(group.Group("/stops"), aggregator)
	routes.PlannerRouter(group.Group("/planner"), aggregator)
	routes.TripsRouter(group.Group("/trips"), aggregator)
	routes.SummaryRouter(group.Group("/summary"), aggregator)

	return webApp
}

func SetupServer(listen string, aggregator *dataaggregator.Aggregator) error {
	return NewApp(aggregator).Listen(listen)
}
