package function

import (
	"reflect"

	"git.home.luguber.info/inful/wikigen/internal/record"
)

// RemoveRepeatedDefinitions clears every field of the client and server
// definitions that is structurally equal to the same field of the shared
// definition. It does nothing when shared is absent and is idempotent.
func RemoveRepeatedDefinitions(v *record.Variants) {
	if v.Lookup(record.Shared).IsNone() {
		return
	}
	shared := reflect.ValueOf(v.Shared).Elem()
	for _, side := range record.Sides {
		info := v.Get(side)
		if info == nil {
			continue
		}
		other := reflect.ValueOf(info).Elem()
		for i := 0; i < shared.NumField(); i++ {
			sf, of := shared.Field(i), other.Field(i)
			if sf.IsZero() || of.IsZero() {
				continue
			}
			if reflect.DeepEqual(sf.Interface(), of.Interface()) {
				of.SetZero()
			}
		}
	}
}
