package queries

import (
	"fmt"
	"reflect"
	"strings"
)

// Insert builds an INSERT for every `db`-tagged field of a struct value.
func Insert(table string, value interface{}) (string, []interface{}, error) {
	v := reflect.Indirect(reflect.ValueOf(value))

	if v.Kind() != reflect.Struct {
		return ``, nil, fmt.Errorf(`value must be a struct or a pointer to a struct`)
	}

	vType := v.Type()
	numField := v.NumField()

	fields := make([]string, 0, numField)
	placeholders := make([]string, 0, numField)
	fieldsValues := make([]interface{}, 0, numField)

	for i := 0; i < numField; i++ {
		column := vType.Field(i).Tag.Get(`db`)
		if column == `` || column == `-` {
			continue
		}

		fields = append(fields, column)
		fieldsValues = append(fieldsValues, v.Field(i).Interface())
		placeholders = append(placeholders, fmt.Sprintf(`$%d`, len(fieldsValues)))
	}

	if len(fields) == 0 {
		return ``, nil, fmt.Errorf(`%s has no db fields`, vType.Name())
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES(%s)`,
		table, strings.Join(fields, `, `), strings.Join(placeholders, `, `))

	return query, fieldsValues, nil
}

// UpdateById builds a partial UPDATE from the non-nil pointer fields of value.
// The id is bound as the last argument.
func UpdateById(table string, value interface{}, id string) (string, []interface{}, error) {
	v := reflect.Indirect(reflect.ValueOf(value))

	if v.Kind() != reflect.Struct {
		return ``, nil, fmt.Errorf(`value must be a struct or a pointer to a struct`)
	}

	vType := v.Type()

	var sets []string
	var args []interface{}

	for i := 0; i < v.NumField(); i++ {
		column := vType.Field(i).Tag.Get(`db`)
		field := v.Field(i)

		if column == `` || column == `-` || field.Kind() != reflect.Ptr || field.IsNil() {
			continue
		}

		args = append(args, field.Elem().Interface())
		sets = append(sets, fmt.Sprintf(`%s = $%d`, column, len(args)))
	}

	if len(sets) == 0 {
		return ``, nil, fmt.Errorf(`nothing to update`)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`, table, strings.Join(sets, `, `), len(args))

	return query, args, nil
}
