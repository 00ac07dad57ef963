package utils

import (
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Builds the $set content of a partial update form.
// Nil pointers, nil slices and fields tagged update:"-" are skipped,
// keys come from the json tag.
func UpdateSet(form interface{}) bson.D {
	set := bson.D{}

	value := reflect.Indirect(reflect.ValueOf(form))
	if value.Kind() != reflect.Struct {
		return set
	}
	for i := 0; i < value.NumField(); i++ {
		field := value.Type().Field(i)
		if field.Tag.Get("update") == "-" || !field.IsExported() {
			continue
		}
		key := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if key == "" || key == "-" {
			continue
		}

		fieldValue := value.Field(i)
		switch fieldValue.Kind() {
		case reflect.Ptr:
			if fieldValue.IsNil() {
				continue
			}
			set = append(set, bson.E{Key: key, Value: fieldValue.Elem().Interface()})
		case reflect.Slice, reflect.Map:
			if fieldValue.IsNil() {
				continue
			}
			set = append(set, bson.E{Key: key, Value: fieldValue.Interface()})
		}
	}
	return set
}
