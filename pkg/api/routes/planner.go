package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/busnetwork/pkg/dataaggregator"
	"github.com/travigo/busnetwork/pkg/dataaggregator/query"
	"github.com/travigo/busnetwork/pkg/journeyplanner"
	"github.com/travigo/busnetwork/pkg/network"
)

func PlannerRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/:origin/:destination", func(c *fiber.Ctx) error {
		return getPlanBetweenStops(c, aggregator)
	})
}

func getPlanBetweenStops(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	// Get stops
	originStop, err := dataaggregator.Lookup[*network.Stop](aggregator, query.Stop{
		ExternalID: c.Params("origin"),
	})
	if err != nil {
		return sendLookupError(c, err)
	}
	destinationStop, err := dataaggregator.Lookup[*network.Stop](aggregator, query.Stop{
		ExternalID: c.Params("destination"),
	})
	if err != nil {
		return sendLookupError(c, err)
	}

	// Do the lookup
	path, err := dataaggregator.Lookup[*journeyplanner.Path](aggregator, query.JourneyPlan{
		OriginStop:      originStop,
		DestinationStop: destinationStop,
	})
	if err != nil {
		return sendLookupError(c, err)
	}

	pathReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, path)
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Sherrif could not reduce Path")
	}

	return c.JSON(pathReduced)
}
