package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/busnetwork/pkg/dataaggregator"
	"github.com/travigo/busnetwork/pkg/dataaggregator/query"
	"github.com/travigo/busnetwork/pkg/timetable"
	"github.com/travigo/busnetwork/pkg/util"
)

func TripsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listTripsArrivingAt(c, aggregator)
	})
}

func listTripsArrivingAt(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	arrivalTime, err := util.ParseServiceTime(c.Query("arrival"))
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Parameter arrival should be a HH:MM:SS time")
	}

	trips, err := dataaggregator.Lookup[[]*timetable.Trip](aggregator, query.TripsArrivingAt{
		Time: arrivalTime,
	})
	if err != nil {
		return sendLookupError(c, err)
	}

	tripsReduced := make([]interface{}, 0, len(trips))
	for _, trip := range trips {
		tripReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic"},
		}, trip)
		if err != nil {
			return sendError(c, fiber.StatusInternalServerError, "Sherrif could not reduce Trip")
		}

		if fields, ok := tripReduced.(map[string]interface{}); ok {
			fields["LastTime"] = util.FormatServiceTime(trip.LastTime)
			fields["FirstStop"] = trip.FirstStop().ExternalID
			fields["LastStop"] = trip.LastStop().ExternalID
		}

		tripsReduced = append(tripsReduced, tripReduced)
	}

	return c.JSON(tripsReduced)
}
