package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the struct's db tags.
// Fields tagged with the "readonly" option (`db:"id,readonly"`) are store-assigned and skipped.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel builds an UPDATE setting every writable db column of the struct.
// A model error surfaces from ToSQL.
func UpdateModel(table string, model any, where ...Condition) *UpdateBuilder {
	b := Update(table)
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		b.err = err
		return b
	}
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b.Where(where...)
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		col, readonly := parseDBTag(field.Tag.Get("db"))
		if col == "" || readonly {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func parseDBTag(tag string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(tag), ",")
	col := strings.TrimSpace(parts[0])
	if col == "-" {
		return "", false
	}

	readonly := false
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "readonly" {
			readonly = true
		}
	}
	return col, readonly
}
