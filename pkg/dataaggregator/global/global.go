package global

import (
	"github.com/travigo/busnetwork/pkg/dataaggregator"
	"github.com/travigo/busnetwork/pkg/dataaggregator/source/networklookup"
	"github.com/travigo/busnetwork/pkg/dataimporter"
)

func Setup(dataset *dataimporter.Dataset) *dataaggregator.Aggregator {
	aggregator := &dataaggregator.Aggregator{}

	aggregator.RegisterSource(networklookup.Source{Dataset: dataset})

	return aggregator
}
