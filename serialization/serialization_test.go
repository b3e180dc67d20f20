package serialization

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEntity struct {
	tag  string
	size int
}

func (e *testEntity) Serialize(s *Serializer) {
	s.WriteString("tag", e.tag)
	s.WriteInt("size", e.size)
}

func decodeTestEntity(d *Deserializer) (*testEntity, error) {
	tag, err := d.ReadString("tag")
	if err != nil {
		return nil, err
	}
	size, err := d.ReadInt("size")
	if err != nil {
		return nil, err
	}
	return &testEntity{tag: tag, size: size}, nil
}

func TestScalarRoundTrip(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteString("name", "alpha")
	s.WriteInt("count", 42)
	s.WriteBigInteger("value", big.NewInt(123456789))
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	name, err := d.ReadString("name")
	myassert.NoError(err)
	myassert.Equal("alpha", name)
	count, err := d.ReadInt("count")
	myassert.NoError(err)
	myassert.Equal(42, count)
	value, err := d.ReadBigInteger("value")
	myassert.NoError(err)
	myassert.Equal(int64(123456789), value.Int64())
}

func TestBigIntegerKeepsPrecision(t *testing.T) {
	myassert := assert.New(t)
	huge, ok := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	myassert.True(ok)

	s := NewSerializer()
	s.WriteBigInteger("value", huge)
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	value, err := d.ReadBigInteger("value")
	myassert.NoError(err)
	myassert.Zero(huge.Cmp(value))
}

func TestRequiredFieldMissing(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	_, err = d.ReadBigInteger("value")
	myassert.Error(err)
	myassert.True(IsMalformed(err))
}

func TestRequiredFieldNameMismatch(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteString("other", "x")
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	_, err = d.ReadString("expected")
	myassert.True(IsMalformed(err))
}

func TestRequiredBigIntegerRejectsGarbage(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteString("value", "not-a-number")
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	_, err = d.ReadBigInteger("value")
	myassert.True(IsMalformed(err))
}

func TestOptionalBigIntegerNullSentinel(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteBigInteger("value", nil)
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	value, err := d.ReadOptionalBigInteger("value")
	myassert.NoError(err)
	myassert.Nil(value)
}

func TestOptionalBigIntegerUnparsableIsAbsent(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteString("value", "garbage")
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	value, err := d.ReadOptionalBigInteger("value")
	myassert.NoError(err)
	myassert.Nil(value)
}

func TestOptionalBigIntegerMissingTrailingField(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteString("first", "x")
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	_, err = d.ReadString("first")
	myassert.NoError(err)
	value, err := d.ReadOptionalBigInteger("value")
	myassert.NoError(err)
	myassert.Nil(value)
}

func TestOptionalStringPresence(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteString("label", "alpha")
	s.WriteNull("comment")
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	label, present, err := d.ReadOptionalString("label")
	myassert.NoError(err)
	myassert.True(present)
	myassert.Equal("alpha", label)
	_, present, err = d.ReadOptionalString("comment")
	myassert.NoError(err)
	myassert.False(present)
}

func TestNestedObjectRoundTrip(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteObject("entity", &testEntity{tag: "inner", size: 7})
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	var entity *testEntity
	present, err := d.ReadOptionalObject("entity", func(nd *Deserializer) error {
		decoded, err := decodeTestEntity(nd)
		if err != nil {
			return err
		}
		entity = decoded
		return nil
	})
	myassert.NoError(err)
	myassert.True(present)
	myassert.Equal("inner", entity.tag)
	myassert.Equal(7, entity.size)
}

func TestOptionalObjectNullSentinel(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteNull("entity")
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	present, err := d.ReadOptionalObject("entity", func(nd *Deserializer) error {
		t.Fatal("decode must not run for the null sentinel")
		return nil
	})
	myassert.NoError(err)
	myassert.False(present)
}

func TestOptionalObjectBrokenContent(t *testing.T) {
	myassert := assert.New(t)
	s := NewSerializer()
	s.WriteObject("entity", &testEntity{tag: "inner", size: 7})
	data, err := s.Bytes()
	myassert.NoError(err)

	d := NewDeserializer(data)
	present, err := d.ReadOptionalObject("entity", func(nd *Deserializer) error {
		_, err := nd.ReadString("wrongname")
		return err
	})
	myassert.True(present)
	myassert.True(IsMalformed(err))
}

func TestBrokenRecord(t *testing.T) {
	myassert := assert.New(t)
	d := NewDeserializer([]byte("{\"privateKey\""))
	_, err := d.ReadBigInteger("privateKey")
	myassert.Error(err)
}
