package ast

import (
	"reflect"

	"rsyn/internal/source"
)

var (
	spanType = reflect.TypeFor[source.Span]()
	attrType = reflect.TypeFor[Attribute]()
)

// Normalize returns a copy of node with every position reset to the zero
// Span, empty slices replaced by nil and Attribute.IsSugaredDoc cleared.
// The input is not modified; shared *Delimited bodies are copied.
func Normalize[T any](node T) T {
	src := reflect.ValueOf(&node).Elem()
	dst := reflect.New(src.Type()).Elem()
	normalizeInto(dst, src)
	out, _ := dst.Interface().(T)
	return out
}

func normalizeInto(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Struct:
		if src.Type() == spanType {
			return
		}
		for i := range src.NumField() {
			normalizeInto(dst.Field(i), src.Field(i))
		}
		if src.Type() == attrType {
			dst.FieldByName("IsSugaredDoc").SetBool(false)
		}
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		p := reflect.New(src.Type().Elem())
		normalizeInto(p.Elem(), src.Elem())
		dst.Set(p)
	case reflect.Interface:
		if src.IsNil() {
			return
		}
		inner := src.Elem()
		c := reflect.New(inner.Type()).Elem()
		normalizeInto(c, inner)
		dst.Set(c)
	case reflect.Slice:
		if src.Len() == 0 {
			return
		}
		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := range src.Len() {
			normalizeInto(s.Index(i), src.Index(i))
		}
		dst.Set(s)
	default:
		dst.Set(src)
	}
}
