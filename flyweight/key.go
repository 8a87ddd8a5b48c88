package flyweight

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// KeySerializer builds the canonical cache key for a set of construction
// arguments. Two argument lists must serialize to the same key exactly when
// they would compare equal as a tuple.
type KeySerializer interface {
	SerializeKey(args ...any) (string, error)
}

// Named is a keyword argument. Keyword arguments are ordered by name when
// the key is built, so their order at the call site does not matter.
type Named struct {
	Name  string
	Value any
}

// Kw is shorthand for Named{Name: name, Value: value}.
func Kw(name string, value any) Named {
	return Named{Name: name, Value: value}
}

// Split separates keyword arguments from positional ones. Positional
// order is kept; keyword arguments keep their call-site order.
func Split(args []any) (positional []any, named []Named) {
	for _, arg := range args {
		if kw, ok := arg.(Named); ok {
			named = append(named, kw)
			continue
		}
		positional = append(positional, arg)
	}
	return positional, named
}

// Lookup returns the value of the keyword argument called name.
func Lookup(args []any, name string) (any, bool) {
	for _, arg := range args {
		if kw, ok := arg.(Named); ok && kw.Name == name {
			return kw.Value, true
		}
	}
	return nil, false
}

// defaultKeySerializer implements KeySerializer using reflection.
// Every segment is tagged with its type so 1, int64(1) and "1" never
// collide, and strings are quoted so they cannot forge a separator.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds the key from positional args in call order followed
// by keyword args sorted by name.
func (s *defaultKeySerializer) SerializeKey(args ...any) (string, error) {
	if len(args) == 0 {
		return "()", nil
	}

	parts := make([]string, 0, len(args))
	var named []indexedNamed

	for i, arg := range args {
		if kw, ok := arg.(Named); ok {
			named = append(named, indexedNamed{Named: kw, position: i})
			continue
		}

		serialized, err := s.serialize(arg)
		if err != nil {
			return "", s.unhashable(err, i, "", arg)
		}
		parts = append(parts, serialized)
	}

	if len(named) > 0 {
		sort.SliceStable(named, func(i, j int) bool {
			return named[i].Name < named[j].Name
		})

		pairs := make([]string, 0, len(named))
		for _, kw := range named {
			serialized, err := s.serialize(kw.Value)
			if err != nil {
				return "", s.unhashable(err, kw.position, kw.Name, kw.Value)
			}
			pairs = append(pairs, strconv.Quote(kw.Name)+"="+serialized)
		}
		parts = append(parts, "kw{"+strings.Join(pairs, ",")+"}")
	}

	return strings.Join(parts, KeySeparator), nil
}

type indexedNamed struct {
	Named
	position int
}

// notComparable carries the nested type that broke serialization.
type notComparable struct {
	kind string
}

func (e *notComparable) Error() string { return e.kind + " is not comparable" }

func (s *defaultKeySerializer) unhashable(err error, position int, name string, arg any) error {
	kind := ""
	if nc, ok := err.(*notComparable); ok {
		kind = nc.kind
	}
	return &UnhashableKeyError{
		Position: position,
		Name:     name,
		Type:     fmt.Sprintf("%T", arg),
		Kind:     kind,
	}
}

func (s *defaultKeySerializer) serialize(v any) (string, error) {
	if v == nil {
		return "nil", nil
	}
	return s.serializeValue(reflect.ValueOf(v))
}

// serializeValue walks rv with the same equality rules the language uses
// for comparable values: pointers and channels by address, everything else
// by content. Unexported struct fields take part, as they do in ==.
func (s *defaultKeySerializer) serializeValue(rv reflect.Value) (string, error) {
	rt := rv.Type()
	tag := typeName(rt)

	switch rt.Kind() {
	case reflect.Func, reflect.Slice, reflect.Map:
		return "", &notComparable{kind: rt.String()}

	case reflect.Interface:
		if rv.IsNil() {
			return tag + "(nil)", nil
		}
		return s.serializeValue(rv.Elem())

	case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%s(%#x)", tag, rv.Pointer()), nil

	case reflect.Array:
		return s.serializeArray(rv, tag)

	case reflect.Struct:
		return s.serializeStruct(rv, rt, tag)

	case reflect.Bool:
		return tag + "(" + strconv.FormatBool(rv.Bool()) + ")", nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return tag + "(" + strconv.FormatInt(rv.Int(), 10) + ")", nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return tag + "(" + strconv.FormatUint(rv.Uint(), 10) + ")", nil

	case reflect.Float32, reflect.Float64:
		return tag + "(" + formatFloat(rv.Float()) + ")", nil

	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return tag + "(" + formatFloat(real(c)) + "," + formatFloat(imag(c)) + ")", nil

	case reflect.String:
		return tag + "(" + strconv.Quote(rv.String()) + ")", nil
	}

	return "", &notComparable{kind: rt.String()}
}

// serializeArray handles array serialization element by element.
func (s *defaultKeySerializer) serializeArray(rv reflect.Value, tag string) (string, error) {
	length := rv.Len()
	parts := make([]string, length)

	for i := 0; i < length; i++ {
		part, err := s.serializeValue(rv.Index(i))
		if err != nil {
			return "", err
		}
		parts[i] = part
	}

	return tag + "[" + strings.Join(parts, ",") + "]", nil
}

// serializeStruct handles struct serialization with field names.
func (s *defaultKeySerializer) serializeStruct(rv reflect.Value, rt reflect.Type, tag string) (string, error) {
	numFields := rv.NumField()
	parts := make([]string, 0, numFields)

	for i := 0; i < numFields; i++ {
		field := rt.Field(i)
		if field.Name == "_" {
			continue
		}

		part, err := s.serializeValue(rv.Field(i))
		if err != nil {
			return "", err
		}
		parts = append(parts, field.Name+":"+part)
	}

	return tag + "{" + strings.Join(parts, ",") + "}", nil
}

// typeName qualifies named types with their import path so two packages
// declaring a Card type get distinct keys.
func typeName(rt reflect.Type) string {
	if rt.Name() != "" && rt.PkgPath() != "" {
		return rt.PkgPath() + "." + rt.Name()
	}
	return rt.String()
}

func formatFloat(f float64) string {
	// -0 == 0
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
