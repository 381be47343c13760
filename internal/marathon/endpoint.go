package marathon

import (
	"net"
	"strconv"
)

// ServiceEndpoint is where the Marathon API of a container can be reached.
type ServiceEndpoint struct {
	Host string
	Port int
}

func NewServiceEndpoint(host string, port int) ServiceEndpoint {
	return ServiceEndpoint{Host: host, Port: port}
}

func (e ServiceEndpoint) HostPort() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e ServiceEndpoint) URL() string {
	return "http://" + e.HostPort()
}

func (e ServiceEndpoint) String() string {
	return e.URL()
}
