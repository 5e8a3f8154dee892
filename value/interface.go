package value

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"
	query "github.com/zoncoen/query-go"
	yamlextractor "github.com/zoncoen/query-go/extractor/yaml"

	"github.com/scenarigo/textkit/errors"
)

// ToInterface converts v to plain Go values.
// Objects become yaml.MapSlice to keep their order.
func ToInterface(v Value) any {
	switch v := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(v)
	case Number:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	case String:
		return string(v)
	case Array:
		s := make([]any, len(v))
		for i, elm := range v {
			s[i] = ToInterface(elm)
		}
		return s
	case *Object:
		ms := make(yaml.MapSlice, 0, v.Len())
		for _, m := range v.members {
			ms = append(ms, yaml.MapItem{Key: m.Key, Value: ToInterface(m.Value)})
		}
		return ms
	}
	return nil
}

// FromInterface converts a decoded Go value into a Value.
func FromInterface(i any) (Value, error) {
	switch i := i.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return i, nil
	case bool:
		return Bool(i), nil
	case string:
		return String(i), nil
	case float64:
		return Number(i), nil
	case float32:
		return Number(i), nil
	case int:
		return Number(i), nil
	case int64:
		return Number(i), nil
	case uint64:
		return Number(i), nil
	case []any:
		arr := make(Array, 0, len(i))
		for _, elm := range i {
			v, err := FromInterface(elm)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MapSlice:
		obj := NewObject()
		for _, item := range i {
			v, err := FromInterface(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(fmt.Sprint(item.Key), v)
		}
		return obj, nil
	case map[string]any:
		obj := NewObject()
		for _, k := range slices.Sorted(maps.Keys(i)) {
			v, err := FromInterface(i[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	}
	rv := reflect.ValueOf(i)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return Number(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Number(rv.Uint()), nil
	}
	return nil, errors.Errorf("unsupported value type %T", i)
}

// Query extracts the value at the query path expr such as ".items[0].name".
func Query(v Value, expr string) (Value, error) {
	q, err := query.ParseString(expr, query.CustomExtractFunc(yamlextractor.MapSliceExtractFunc()))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid query %q", expr)
	}
	got, err := q.Extract(ToInterface(v))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %q", expr)
	}
	return FromInterface(got)
}
