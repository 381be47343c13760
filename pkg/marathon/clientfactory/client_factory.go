package clientfactory

import (
	"github.com/bruno-anjos/cluster-harness/pkg/marathon"
	"github.com/bruno-anjos/cluster-harness/pkg/marathon/client"
)

type ClientFactory struct{}

func (cf *ClientFactory) New(addr string) marathon.Client {
	return client.NewMarathonClient(addr)
}
