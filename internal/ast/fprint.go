package ast

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Fprint writes an indented dump of node to w. Zero spans, nil values and
// empty slices are omitted.
func Fprint(w io.Writer, node any) error {
	p := &printer{w: w}
	p.value(reflect.ValueOf(node))
	p.printf("\n")
	return p.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) newline() {
	p.printf("\n%s", strings.Repeat(".  ", p.indent))
}

func (p *printer) value(v reflect.Value) {
	if !v.IsValid() {
		p.printf("nil")
		return
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			p.printf("nil")
			return
		}
		if v.Kind() == reflect.Pointer {
			p.printf("&")
		}
		p.value(v.Elem())
	case reflect.Slice:
		p.printf("%s (len = %d) {", v.Type(), v.Len())
		p.indent++
		for i := range v.Len() {
			p.newline()
			p.printf("%d: ", i)
			p.value(v.Index(i))
		}
		p.indent--
		if v.Len() > 0 {
			p.newline()
		}
		p.printf("}")
	case reflect.Struct:
		if v.Type() == spanType {
			p.printf("%v", v.Interface())
			return
		}
		p.printf("%s {", v.Type())
		p.indent++
		printed := false
		for i := range v.NumField() {
			f := v.Field(i)
			if f.IsZero() || (f.Kind() == reflect.Slice && f.Len() == 0) {
				continue
			}
			printed = true
			p.newline()
			p.printf("%s: ", v.Type().Field(i).Name)
			p.value(f)
		}
		p.indent--
		if printed {
			p.newline()
		}
		p.printf("}")
	case reflect.String:
		p.printf("%q", v.String())
	default:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			p.printf("%s", s)
			return
		}
		p.printf("%v", v.Interface())
	}
}
