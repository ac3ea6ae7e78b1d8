package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the db tags of a struct or a slice of
// structs. Fields tagged db:"-" and the columns listed in skip are omitted.
func InsertModel(table string, model any, skip ...string) (*InsertBuilder, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("insert model is nil")
		}
		value = value.Elem()
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, column := range skip {
		skipped[column] = struct{}{}
	}

	switch value.Kind() {
	case reflect.Struct:
		columns, row, err := modelRow(value, skipped)
		if err != nil {
			return nil, err
		}
		return InsertInto(table).Columns(columns...).Values(row...), nil
	case reflect.Slice:
		if value.Len() == 0 {
			return nil, fmt.Errorf("insert model slice is empty")
		}
		builder := InsertInto(table)
		for i := 0; i < value.Len(); i++ {
			element := value.Index(i)
			for element.Kind() == reflect.Pointer {
				if element.IsNil() {
					return nil, fmt.Errorf("insert model slice element %d is nil", i)
				}
				element = element.Elem()
			}
			columns, row, err := modelRow(element, skipped)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				builder.Columns(columns...)
			}
			builder.Values(row...)
		}
		return builder, nil
	default:
		return nil, fmt.Errorf("insert model must be a struct or slice, got %s", value.Kind())
	}
}

func modelRow(value reflect.Value, skipped map[string]struct{}) ([]string, []any, error) {
	t := value.Type()
	columns := make([]string, 0, t.NumField())
	row := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		column := strings.Split(tag, ",")[0]
		if _, ok := skipped[column]; ok {
			continue
		}
		columns = append(columns, column)
		row = append(row, value.Field(i).Interface())
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("insert model %s has no db-tagged fields", t.Name())
	}
	return columns, row, nil
}
