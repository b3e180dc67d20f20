package serialization

import (
	"math/big"

	"github.com/launchdarkly/go-jsonstream/v3/jreader"
)

// Deserializer reads named fields from a record in the order they were
// written. Required fields fail with a *MalformedFieldError when
// missing or undecodable; optional fields treat the null sentinel, a
// missing trailing property, or unparsable content as absence.
type Deserializer struct {
	r   *jreader.Reader
	obj jreader.ObjectState
}

// NewDeserializer opens a record over its encoded form.
func NewDeserializer(data []byte) *Deserializer {
	r := jreader.NewReader(data)
	d := &Deserializer{r: &r}
	d.obj = d.r.Object()
	return d
}

// advance moves to the next property and checks its name. Returns
// false when the record has no more properties.
func (d *Deserializer) advance(name string) (bool, error) {
	if !d.obj.Next() {
		if err := d.r.Error(); err != nil {
			return false, &MalformedFieldError{Field: name, Reason: err.Error()}
		}
		return false, nil
	}
	if got := string(d.obj.Name()); got != name {
		return false, &MalformedFieldError{Field: name, Reason: "unexpected field " + got}
	}
	return true, nil
}

// ReadString reads a required string field.
func (d *Deserializer) ReadString(name string) (string, error) {
	ok, err := d.advance(name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &MalformedFieldError{Field: name, Reason: "field missing"}
	}
	v := d.r.String()
	if err := d.r.Error(); err != nil {
		return "", &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	return v, nil
}

// ReadInt reads a required integer field.
func (d *Deserializer) ReadInt(name string) (int, error) {
	ok, err := d.advance(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &MalformedFieldError{Field: name, Reason: "field missing"}
	}
	v := d.r.Int()
	if err := d.r.Error(); err != nil {
		return 0, &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	return v, nil
}

// ReadBigInteger reads a required arbitrary-precision integer field.
func (d *Deserializer) ReadBigInteger(name string) (*big.Int, error) {
	s, err := d.ReadString(name)
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &MalformedFieldError{Field: name, Reason: "not a decimal integer"}
	}
	return v, nil
}

// ReadOptionalBigInteger reads an optional arbitrary-precision integer
// field. The null sentinel, a missing trailing property, and content
// that does not parse as a decimal integer all yield nil.
func (d *Deserializer) ReadOptionalBigInteger(name string) (*big.Int, error) {
	ok, err := d.advance(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	av := d.r.Any()
	if err := d.r.Error(); err != nil {
		return nil, &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	if av.Kind != jreader.StringValue {
		return nil, nil
	}
	v, parsed := new(big.Int).SetString(av.String, 10)
	if !parsed {
		return nil, nil
	}
	return v, nil
}

// ReadOptionalString reads an optional string field; the null sentinel
// and a missing trailing property yield absence.
func (d *Deserializer) ReadOptionalString(name string) (string, bool, error) {
	ok, err := d.advance(name)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	av := d.r.Any()
	if err := d.r.Error(); err != nil {
		return "", false, &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	if av.Kind != jreader.StringValue {
		return "", false, nil
	}
	return av.String, true, nil
}

// ReadOptionalObject reads an optional nested record under name via
// decode. It reports whether the object was present; the null sentinel
// and a missing trailing property yield absence. A decode failure of a
// present object propagates as a malformed-record error.
func (d *Deserializer) ReadOptionalObject(name string, decode func(*Deserializer) error) (bool, error) {
	ok, err := d.advance(name)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	sub := d.r.ObjectOrNull()
	if err := d.r.Error(); err != nil {
		return false, &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	if !sub.IsDefined() {
		return false, nil
	}
	nested := &Deserializer{r: d.r, obj: sub}
	if err := decode(nested); err != nil {
		if IsMalformed(err) {
			return true, err
		}
		return true, &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	// drain properties the decode function did not consume
	for nested.obj.Next() {
		d.r.SkipValue()
	}
	return true, nil
}
