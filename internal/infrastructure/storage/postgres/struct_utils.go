package postgres

import (
	"reflect"
	"strings"
	"sync"
)

// columnCache memoizes per-type db tag extraction.
var columnCache sync.Map // reflect.Type -> []string

// ExtractDBColumns returns the db tag names of the struct's fields in
// declaration order, skipping fields tagged "-" and untagged fields. Embedded
// structs are flattened. The catalog and cash repos derive their column lists
// from it; repos whose models carry joined display columns keep hand lists.
func ExtractDBColumns(v any) []string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	if cached, ok := columnCache.Load(t); ok {
		return cached.([]string)
	}

	cols := collectColumns(t)
	columnCache.Store(t, cols)
	return cols
}

func collectColumns(t reflect.Type) []string {
	cols := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "-" {
			continue
		}

		if field.Anonymous && tag == "" {
			ft := field.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				cols = append(cols, collectColumns(ft)...)
			}
			continue
		}

		if tag == "" {
			continue
		}
		cols = append(cols, strings.Split(tag, ",")[0])
	}
	return cols
}

// StructToMap converts a struct to a column -> value map keyed by db tags,
// for building update statements without hand-maintained set lists.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	m := make(map[string]any, rv.NumField())
	fillMap(m, rv)
	return m
}

func fillMap(m map[string]any, rv reflect.Value) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "-" {
			continue
		}

		if field.Anonymous && tag == "" {
			fv := rv.Field(i)
			for fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					break
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				fillMap(m, fv)
			}
			continue
		}

		if tag == "" {
			continue
		}
		m[strings.Split(tag, ",")[0]] = rv.Field(i).Interface()
	}
}
