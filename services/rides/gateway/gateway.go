package gateway

import (
	"github.com/campuspool/campuspool/internal/pkg/nats"
	"github.com/campuspool/campuspool/internal/pkg/nsq"
)

// RideGateway implements rides.RideGW over the NATS change feed and the NSQ
// notification dispatch queue.
type RideGateway struct {
	natsProducer *nats.Producer
	nsqProducer  *nsq.Producer
}

// NewRideGateway creates a new gateway over established broker connections
func NewRideGateway(natsProducer *nats.Producer, nsqProducer *nsq.Producer) *RideGateway {
	return &RideGateway{
		natsProducer: natsProducer,
		nsqProducer:  nsqProducer,
	}
}
