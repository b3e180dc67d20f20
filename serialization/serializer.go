// Package serialization provides a named-field structured codec with
// explicit optional-field support. Records are JSON objects whose
// fields appear in a fixed order; absent optional fields are written as
// explicit nulls so that round trips preserve presence. Big integers
// travel as decimal strings since JSON numbers cannot carry arbitrary
// precision.
package serialization

import (
	"math/big"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Serializable is implemented by entities that can write themselves
// through a Serializer.
type Serializable interface {
	Serialize(s *Serializer)
}

// Serializer writes named fields into a record. Fields appear in call
// order. A Serializer is either the root of a record or a nested view
// handed to Serializable implementations by WriteObject.
type Serializer struct {
	w   *jwriter.Writer
	obj jwriter.ObjectState
}

// NewSerializer opens a fresh record.
func NewSerializer() *Serializer {
	w := jwriter.NewWriter()
	s := &Serializer{w: &w}
	s.obj = s.w.Object()
	return s
}

func (s *Serializer) WriteString(name string, v string) {
	s.obj.Name(name).String(v)
}

func (s *Serializer) WriteInt(name string, v int) {
	s.obj.Name(name).Int(v)
}

// WriteBigInteger writes v as a decimal string, or the explicit absent
// sentinel when v is nil.
func (s *Serializer) WriteBigInteger(name string, v *big.Int) {
	if v == nil {
		s.obj.Name(name).Null()
		return
	}
	s.obj.Name(name).String(v.String())
}

// WriteNull writes the explicit absent sentinel for name.
func (s *Serializer) WriteNull(name string) {
	s.obj.Name(name).Null()
}

// WriteObject writes entity as a nested record under name.
func (s *Serializer) WriteObject(name string, entity Serializable) {
	s.obj.Name(name)
	sub := s.w.Object()
	nested := &Serializer{w: s.w, obj: sub}
	entity.Serialize(nested)
	sub.End()
}

// Bytes closes the record and returns its encoded form. Only valid on
// the root Serializer, and only once.
func (s *Serializer) Bytes() ([]byte, error) {
	s.obj.End()
	if err := s.w.Error(); err != nil {
		return nil, err
	}
	return s.w.Bytes(), nil
}
