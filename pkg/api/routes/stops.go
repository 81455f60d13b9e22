package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/busnetwork/pkg/dataaggregator"
	"github.com/travigo/busnetwork/pkg/dataaggregator/query"
	"github.com/travigo/busnetwork/pkg/network"
)

func StopsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchStops(c, aggregator)
	})
	router.Get("/index/:index", func(c *fiber.Ctx) error {
		return getStopByIndex(c, aggregator)
	})
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getStop(c, aggregator)
	})
}

func searchStops(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	searchTerm := c.Query("search")
	if searchTerm == "" {
		return sendError(c, fiber.StatusBadRequest, "A search term must be applied to the request")
	}

	stops, err := dataaggregator.Lookup[[]*network.Stop](aggregator, query.StopSearch{
		Term: searchTerm,
	})
	if err != nil {
		return sendLookupError(c, err)
	}

	stopsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stops)
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Sherrif could not reduce Stops")
	}

	return c.JSON(stopsReduced)
}

func getStopByIndex(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Parameter index should be an integer")
	}

	stop, err := dataaggregator.Lookup[*network.Stop](aggregator, query.StopByIndex{
		Index: index,
	})
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendStop(c, stop)
}

func getStop(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	stop, err := dataaggregator.Lookup[*network.Stop](aggregator, query.Stop{
		ExternalID: c.Params("identifier"),
	})
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendStop(c, stop)
}

func sendStop(c *fiber.Ctx, stop *network.Stop) error {
	stopReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, stop)
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Sherrif could not reduce Stop")
	}

	return c.JSON(stopReduced)
}
