package rulebook

import (
	"fmt"
	"reflect"
)

// Resolve turns a raw reference into a catalog entry.
//
// ref may already be a T, which is returned unchanged. Anything else is read
// as a name and looked up in catalog. When nothing matches, onUnknown (a
// format string receiving the raw name) is sent to warn if both are set, and a
// placeholder tagged with capability is returned, so resolution never fails.
func Resolve[T Entry](ref any, catalog *Catalog[T], capability Capability, onUnknown string, warn WarnFunc) T {
	if entry, ok := ref.(T); ok && !isNilEntry(entry) {
		return entry
	}

	name := ReferenceName(ref)
	if entry, ok := catalog.Lookup(name); ok {
		return entry
	}

	if onUnknown != "" && warn != nil {
		warn(fmt.Sprintf(onUnknown, name))
	}

	placeholder := catalog.placeholder(Unknown(name, capability))
	return placeholder
}

// ReferenceName extracts the name from a reference of any supported shape
func ReferenceName(ref any) string {
	switch v := ref.(type) {
	case nil:
		return ""
	case string:
		return v
	case Entry:
		if isNilEntry(v) {
			return ""
		}
		return v.Header().Name
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func isNilEntry(e Entry) bool {
	v := reflect.ValueOf(e)
	return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
}
