// Package node holds value objects describing remote nodes.
package node

import (
	"fmt"

	"github.com/harvestchain/harvest-go/serialization"
)

// Endpoint is the network location of a node. The wallet layer treats
// it as an opaque value: no reachability or scheme validation happens
// here.
type Endpoint struct {
	protocol string
	host     string
	port     int
}

func NewEndpoint(protocol, host string, port int) *Endpoint {
	return &Endpoint{protocol: protocol, host: host, port: port}
}

func (e *Endpoint) Protocol() string {
	return e.protocol
}

func (e *Endpoint) Host() string {
	return e.host
}

func (e *Endpoint) Port() int {
	return e.port
}

func (e *Endpoint) Equal(other *Endpoint) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.protocol == other.protocol && e.host == other.host && e.port == other.port
}

func (e *Endpoint) String() string {
	return fmt.Sprintf("%s://%s:%d", e.protocol, e.host, e.port)
}

func (e *Endpoint) Serialize(s *serialization.Serializer) {
	s.WriteString("protocol", e.protocol)
	s.WriteString("host", e.host)
	s.WriteInt("port", e.port)
}

// DecodeEndpoint reads an endpoint record.
func DecodeEndpoint(d *serialization.Deserializer) (*Endpoint, error) {
	protocol, err := d.ReadString("protocol")
	if err != nil {
		return nil, err
	}
	host, err := d.ReadString("host")
	if err != nil {
		return nil, err
	}
	port, err := d.ReadInt("port")
	if err != nil {
		return nil, err
	}
	return NewEndpoint(protocol, host, port), nil
}
