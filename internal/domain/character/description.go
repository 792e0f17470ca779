package character

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dnd-sheets/internal/errors"
)

// Description is the raw, user-authored shape of a character: the sparse
// attribute map a sheet file or a stored record decodes into.
type Description map[string]any

// Keys consumed by the constructor before the remaining attributes are applied
const (
	KeyClasses        = "classes"
	KeyLevels         = "levels"
	KeySubclasses     = "subclasses"
	KeyFeatureChoices = "feature_choices"
	KeyRace           = "race"
	KeyBackground     = "background"
	KeyHPMax          = "hp_max"

	// legacy single-class keys
	keyClass          = "class"
	keyLevel          = "level"
	keySubclass       = "subclass"
	keyCharacterClass = "character_class"
)

// ParseDescription decodes a JSON object into a Description
func ParseDescription(data []byte) (Description, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode character description")
	}
	if desc == nil {
		desc = Description{}
	}
	return desc, nil
}

// Clone returns a shallow copy
func (d Description) Clone() Description {
	out := make(Description, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Normalize returns a copy in the list-based shape. The legacy singular
// keys class, level and subclass (and the older character_class) become
// one-element classes, levels and subclasses; a description with no class at
// all becomes a Fighter of the given level, or level 1.
func (d Description) Normalize() Description {
	out := d.Clone()
	if len(toList(out[KeyClasses])) > 0 {
		return out
	}

	switch {
	case out[keyClass] != nil:
		out[KeyClasses] = []any{out[keyClass]}
		out[KeyLevels] = []any{valueOr(out[keyLevel], 1)}
		out[KeySubclasses] = []any{out[keySubclass]}
	case out[keyCharacterClass] != nil:
		name := strings.ToLower(toString(out[keyCharacterClass]))
		out[KeyClasses] = []any{cases.Title(language.English).String(name)}
		out[KeyLevels] = []any{valueOr(out[keyLevel], 1)}
		out[KeySubclasses] = []any{out[keySubclass]}
	default:
		out[KeyClasses] = []any{"Fighter"}
		out[KeyLevels] = []any{valueOr(out[keyLevel], 1)}
		out[KeySubclasses] = []any{nil}
	}
	delete(out, keyClass)
	delete(out, keyCharacterClass)
	delete(out, keyLevel)
	delete(out, keySubclass)
	return out
}

func valueOr(v, fallback any) any {
	if v == nil {
		return fallback
	}
	return v
}

// toList broadcasts a scalar to a one element list; nil becomes an empty list
func toList(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	case string, []byte:
		return []any{val}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

func toStrings(v any) []string {
	items := toList(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := toString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// toInt accepts any integer kind, a float without a fractional part or a numeric string
func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int8, int16, int32, int64:
		return int(reflect.ValueOf(val).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return int(reflect.ValueOf(val).Uint()), true
	case float32:
		return floatToInt(float64(val))
	case float64:
		return floatToInt(val)
	case json.Number:
		n, err := val.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		return n, err == nil
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func toBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return b, err == nil
	}
	if n, ok := toInt(v); ok {
		return n != 0, true
	}
	return false, false
}
