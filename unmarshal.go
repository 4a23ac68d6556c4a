package openstep

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// structField identifies one named field of one struct type, used as a
// fieldMap key so that a field name is resolved relative to the struct
// that declares it (nested structs can reuse field names freely).
type structField struct {
	ty   reflect.Type
	name string
}

// fieldMap walks s and every struct type reachable through its fields
// (directly, through a pointer, or through a slice), recording each
// exported field's name (or its "openstep" tag override) against its
// index. types prevents re-walking a struct type more than once.
func fieldMap(out map[structField]int, types map[reflect.Type]bool, s reflect.Type) error {
	if types[s] {
		return nil
	}
	types[s] = true
	for i := 0; i < s.NumField(); i++ {
		field := s.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldName := field.Name
		if tag, ok := field.Tag.Lookup("openstep"); ok {
			var opts string
			fieldName, opts, _ = strings.Cut(tag, ",")
			if fieldName == "-" {
				continue
			}
			if opts != "" {
				return fmt.Errorf("openstep: unknown tag option %q on field %q", opts, field.Name)
			}
		}
		key := structField{s, fieldName}
		if _, ok := out[key]; ok {
			return fmt.Errorf("openstep: multiple fields named %q in %s", fieldName, s)
		}
		out[key] = i

		elem := field.Type
		for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Slice {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Struct {
			if err := fieldMap(out, types, elem); err != nil {
				return err
			}
		}
	}
	return nil
}

// Unmarshal reflects a decoded dictionary Value into out, a non-nil
// pointer to a struct. It is the struct-binding counterpart to the
// Value tree returned by Decode: where Lookup/Index/AsX navigate the
// tree by hand, Unmarshal populates Go fields from it in one pass.
//
// A dictionary key binds to the exported field of the same name, or to
// the field whose `openstep:"name"` tag names it; `openstep:"-"`
// excludes a field. String values bind to string, bool, any sized
// int/uint/float field (parsed with strconv), or to a field whose type
// (or pointer to it) implements encoding.TextUnmarshaler. Data values
// bind to a []byte field; a string value also binds to []byte if it
// decodes as standard base64. Array values bind to a slice field,
// repeating the element rule per entry. Dictionary values bind to a
// struct (or pointer-to-struct) field, recursing.
func Unmarshal(v Value, out any) error {
	val := reflect.ValueOf(out)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("openstep: Unmarshal target must be a non-nil pointer to a struct")
	}
	d, ok := v.AsDictionary()
	if !ok {
		return fmt.Errorf("openstep: Unmarshal requires a dictionary value, got %s", v.Kind())
	}
	fields := make(map[structField]int)
	if err := fieldMap(fields, make(map[reflect.Type]bool), val.Type().Elem()); err != nil {
		return err
	}
	return unpackStruct(val.Elem(), fields, d)
}

func unpackStruct(out reflect.Value, fields map[structField]int, d *Dictionary) error {
	for _, k := range d.Keys() {
		name := k.String()
		idx, ok := fields[structField{out.Type(), name}]
		if !ok {
			return fmt.Errorf("openstep: no field named %q in %s", name, out.Type())
		}
		val, _ := d.Get(k)
		if err := unpackVal(out.Field(idx), fields, val, name); err != nil {
			return err
		}
	}
	return nil
}

func unpackVal(fieldVal reflect.Value, fields map[structField]int, val Value, field string) error {
	switch val.Kind() {
	case KindString:
		s, _ := val.AsString()
		return unpackString(fieldVal, s.String(), field)
	case KindData:
		b, _ := val.AsData()
		return unpackBytes(fieldVal, b, field)
	case KindArray:
		elems, _ := val.AsArray()
		if fieldVal.Kind() != reflect.Slice {
			return fmt.Errorf("openstep: field %q should have a slice type (got %s)", field, fieldVal.Type())
		}
		out := reflect.MakeSlice(fieldVal.Type(), len(elems), len(elems))
		for i, el := range elems {
			if err := unpackVal(out.Index(i), fields, el, field); err != nil {
				return err
			}
		}
		fieldVal.Set(out)
		return nil
	case KindDictionary:
		d, _ := val.AsDictionary()
		target := fieldVal
		if target.Kind() == reflect.Pointer {
			if target.IsNil() {
				target.Set(reflect.New(target.Type().Elem()))
			}
			target = target.Elem()
		}
		if target.Kind() != reflect.Struct {
			return fmt.Errorf("openstep: field %q should have struct type (got %s)", field, fieldVal.Type())
		}
		return unpackStruct(target, fields, d)
	}
	return nil
}

func textUnmarshaler(fieldVal reflect.Value) (encoding.TextUnmarshaler, bool) {
	if fieldVal.Kind() == reflect.Pointer {
		if fieldVal.IsNil() {
			fieldVal.Set(reflect.New(fieldVal.Type().Elem()))
		}
		if tu, ok := fieldVal.Interface().(encoding.TextUnmarshaler); ok {
			return tu, true
		}
	}
	if fieldVal.CanAddr() {
		if tu, ok := fieldVal.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu, true
		}
	}
	return nil, false
}

func unpackString(fieldVal reflect.Value, s string, field string) error {
	if tu, ok := textUnmarshaler(fieldVal); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(s)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("openstep: field %q should have type bool: %w", field, err)
		}
		fieldVal.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("openstep: field %q should have an integer type: %w", field, err)
		}
		min, max, _ := intLimits(fieldVal.Kind())
		if n < min || (max < math.MaxInt64 && n > int64(max)) {
			return fmt.Errorf("openstep: field %q: %d is out of range for %s", field, n, fieldVal.Kind())
		}
		fieldVal.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("openstep: field %q should have an unsigned integer type: %w", field, err)
		}
		_, max, _ := intLimits(fieldVal.Kind())
		if n > max {
			return fmt.Errorf("openstep: field %q: %d is out of range for %s", field, n, fieldVal.Kind())
		}
		fieldVal.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		bits := 64
		if fieldVal.Kind() == reflect.Float32 {
			bits = 32
		}
		n, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return fmt.Errorf("openstep: field %q should have a float type: %w", field, err)
		}
		fieldVal.SetFloat(n)
		return nil
	case reflect.Slice:
		if fieldVal.Type().Elem() != reflect.TypeOf(byte(0)) {
			return fmt.Errorf("openstep: field %q should have type string (got %s)", field, fieldVal.Type())
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("openstep: field %q: not valid base64: %w", field, err)
		}
		fieldVal.SetBytes(b)
		return nil
	default:
		return fmt.Errorf("openstep: field %q should have type string (got %s)", field, fieldVal.Type())
	}
}

func unpackBytes(fieldVal reflect.Value, b []byte, field string) error {
	if fieldVal.Kind() != reflect.Slice || fieldVal.Type().Elem() != reflect.TypeOf(byte(0)) {
		return fmt.Errorf("openstep: field %q should have type []byte (got %s)", field, fieldVal.Type())
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	fieldVal.SetBytes(cp)
	return nil
}

// intLimits reports the representable range of an integer reflect.Kind
// as a signed lower bound and unsigned upper bound, so that a single
// range check covers both signed and unsigned fields.
func intLimits(kind reflect.Kind) (min int64, max uint64, ok bool) {
	switch kind {
	case reflect.Int:
		return math.MinInt, math.MaxInt, true
	case reflect.Int8:
		return math.MinInt8, math.MaxInt8, true
	case reflect.Int16:
		return math.MinInt16, math.MaxInt16, true
	case reflect.Int32:
		return math.MinInt32, math.MaxInt32, true
	case reflect.Int64:
		return math.MinInt64, math.MaxInt64, true
	case reflect.Uint:
		return 0, math.MaxUint, true
	case reflect.Uint8:
		return 0, math.MaxUint8, true
	case reflect.Uint16:
		return 0, math.MaxUint16, true
	case reflect.Uint32:
		return 0, math.MaxUint32, true
	case reflect.Uint64:
		return 0, math.MaxUint64, true
	default:
		return 0, 0, false
	}
}
