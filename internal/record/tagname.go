package record

import (
	"reflect"
	"strings"
)

// yamlFieldName reports validation failures with the YAML key authors wrote.
func yamlFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
