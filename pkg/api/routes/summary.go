package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/busnetwork/pkg/dataaggregator"
	"github.com/travigo/busnetwork/pkg/dataaggregator/query"
	"github.com/travigo/busnetwork/pkg/dataimporter"
)

func SummaryRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		summary, err := dataaggregator.Lookup[dataimporter.Summary](aggregator, query.NetworkSummary{})
		if err != nil {
			return sendLookupError(c, err)
		}

		return c.JSON(summary)
	})
}
