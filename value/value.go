// Package value provides a JSON-compatible value model with ordered objects.
package value

import (
	"math"
	"strconv"
)

// Kind represents the kind of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String implements fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is one of Null, Bool, Number, String, Array or *Object.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	// Null represents the JSON null.
	Null struct{}
	// Bool represents a boolean.
	Bool bool
	// Number represents a number. All numbers are float64 like JavaScript.
	Number float64
	// String represents a string.
	String string
	// Array represents an ordered list of values.
	Array []Value
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}

// Member is a key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a string-keyed map which remembers insertion order.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) isValue()   {}

// Set sets the value of key. An existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value of key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the members in insertion order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return append([]Member(nil), o.members...)
}

// IsEmptyContainer reports whether v is an array or object without elements.
func IsEmptyContainer(v Value) bool {
	switch v := v.(type) {
	case Array:
		return len(v) == 0
	case *Object:
		return v.Len() == 0
	}
	return false
}

// FormatNumber formats f the way JavaScript converts a number to a string.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// JavaScript omits the leading zero of the exponent: 1e+21, not 1e+021.
		return trimExponent(s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func trimExponent(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != 'e' {
			continue
		}
		mant, sign, digits := s[:i], s[i+1], s[i+2:]
		for len(digits) > 1 && digits[0] == '0' {
			digits = digits[1:]
		}
		return mant + "e" + string(sign) + digits
	}
	return s
}

// Scalar returns the default string form of a non-container value.
func Scalar(v Value) string {
	switch v := v.(type) {
	case nil, Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(v))
	case Number:
		return FormatNumber(float64(v))
	case String:
		return string(v)
	case Array:
		if len(v) == 0 {
			return "[]"
		}
	case *Object:
		if v.Len() == 0 {
			return "{}"
		}
	}
	return ""
}
