package value

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strings"

	"github.com/scenarigo/textkit/errors"
)

// DecodeJSON decodes a single JSON document preserving the key order of objects.
func DecodeJSON(b []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	v, err := decode(dec)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFormat, "failed to decode JSON: %s", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Wrap(errors.ErrInvalidFormat, "failed to decode JSON: unexpected data after top-level value")
	}
	return v, nil
}

func decode(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch tok := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(tok), nil
	case json.Number:
		f, err := tok.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case string:
		return String(tok), nil
	case json.Delim:
		switch tok {
		case '[':
			arr := Array{}
			for dec.More() {
				v, err := decode(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		case '{':
			obj := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, errors.Errorf("unexpected object key %v", kt)
				}
				v, err := decode(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		}
	}
	return nil, errors.Errorf("unexpected token %v", tok)
}

// EncodeJSON encodes v like JSON.stringify(v, null, indent).
// An indent of zero produces compact output.
func EncodeJSON(v Value, indent int) []byte {
	var buf bytes.Buffer
	e := &encoder{buf: &buf, indent: strings.Repeat(" ", max(indent, 0))}
	e.encode(v, 0)
	return buf.Bytes()
}

type encoder struct {
	buf    *bytes.Buffer
	indent string
}

func (e *encoder) newline(level int) {
	if e.indent == "" {
		return
	}
	e.buf.WriteByte('\n')
	for range level {
		e.buf.WriteString(e.indent)
	}
}

func (e *encoder) encode(v Value, level int) {
	switch v := v.(type) {
	case nil, Null:
		e.buf.WriteString("null")
	case Number:
		// JSON has no NaN or Infinity
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			e.buf.WriteString("null")
			return
		}
		e.buf.WriteString(Scalar(v))
	case Bool:
		e.buf.WriteString(Scalar(v))
	case String:
		e.str(string(v))
	case Array:
		if len(v) == 0 {
			e.buf.WriteString("[]")
			return
		}
		e.buf.WriteByte('[')
		for i, elm := range v {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(level + 1)
			e.encode(elm, level+1)
		}
		e.newline(level)
		e.buf.WriteByte(']')
	case *Object:
		if v.Len() == 0 {
			e.buf.WriteString("{}")
			return
		}
		e.buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(level + 1)
			e.str(m.Key)
			e.buf.WriteByte(':')
			if e.indent != "" {
				e.buf.WriteByte(' ')
			}
			e.encode(m.Value, level+1)
		}
		e.newline(level)
		e.buf.WriteByte('}')
	}
}

func (e *encoder) str(s string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string never fails
	_ = enc.Encode(s)
	e.buf.Write(bytes.TrimRight(buf.Bytes(), "\n"))
}
