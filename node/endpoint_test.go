package node

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harvestchain/harvest-go/serialization"
)

func TestEndpointRoundTrip(t *testing.T) {
	myassert := assert.New(t)
	endpoint := NewEndpoint("http", "10.0.0.5", 7890)

	s := serialization.NewSerializer()
	endpoint.Serialize(s)
	data, err := s.Bytes()
	myassert.NoError(err)

	decoded, err := DecodeEndpoint(serialization.NewDeserializer(data))
	myassert.NoError(err)
	myassert.True(endpoint.Equal(decoded))
}

func TestEndpointEqual(t *testing.T) {
	myassert := assert.New(t)
	a := NewEndpoint("http", "localhost", 7890)
	myassert.True(a.Equal(NewEndpoint("http", "localhost", 7890)))
	myassert.False(a.Equal(NewEndpoint("http", "localhost", 7891)))
	myassert.False(a.Equal(NewEndpoint("https", "localhost", 7890)))
	myassert.False(a.Equal(nil))
}

func TestEndpointString(t *testing.T) {
	myassert := assert.New(t)
	myassert.Equal("http://localhost:7890", NewEndpoint("http", "localhost", 7890).String())
}

func TestDecodeEndpointMissingField(t *testing.T) {
	myassert := assert.New(t)
	s := serialization.NewSerializer()
	s.WriteString("protocol", "http")
	data, err := s.Bytes()
	myassert.NoError(err)

	_, err = DecodeEndpoint(serialization.NewDeserializer(data))
	myassert.True(serialization.IsMalformed(err))
}
