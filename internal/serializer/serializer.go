// Package serializer converts backend-native records into JSON-safe
// primitives at the response boundary. Arbitrary-precision decimals become
// IEEE-754 numbers (an accepted precision tradeoff at our price magnitudes)
// and native timestamps become ISO-8601 strings.
package serializer

import (
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ISOLayout is the millisecond-precision UTC form JavaScript clients expect,
// e.g. "2024-01-01T00:00:00.000Z".
const ISOLayout = "2006-01-02T15:04:05.000Z"

// ISOTime formats a timestamp in the wire format.
func ISOTime(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Serialize recursively transforms a value into JSON-primitive form. It never
// mutates its input, and it is idempotent: primitives and already-serialized
// structures pass through unchanged.
func Serialize(v any) any {
	if v == nil {
		return nil
	}

	switch typed := v.(type) {
	case decimal.Decimal:
		return typed.InexactFloat64()
	case *decimal.Decimal:
		if typed == nil {
			return nil
		}
		return typed.InexactFloat64()
	case time.Time:
		return ISOTime(typed)
	case *time.Time:
		if typed == nil {
			return nil
		}
		return ISOTime(*typed)
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return typed
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Serialize(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Serialize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[keyString(iter.Key())] = Serialize(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		return serializeStruct(rv)
	case reflect.String:
		return rv.String()
	}
	return v
}

func serializeStruct(rv reflect.Value) map[string]any {
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}
		value := rv.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && !isLeafType(field.Type) {
			// Embedded structs flatten like encoding/json does
			for k, v := range serializeStruct(value) {
				out[k] = v
			}
			continue
		}
		if omitEmpty && value.IsZero() {
			continue
		}
		out[name] = Serialize(value.Interface())
	}
	return out
}

func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func isLeafType(t reflect.Type) bool {
	return t == reflect.TypeOf(time.Time{}) || t == reflect.TypeOf(decimal.Decimal{})
}

func keyString(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return key.Type().String()
}
