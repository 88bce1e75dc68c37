package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// starlarkConfigName is the global a Starlark configuration file must define.
const starlarkConfigName = "config"

// loadStarlark executes a Starlark configuration script and decodes its
// top-level config dict. Scripts see a predeclared "defaults" dict holding
// the built-in prefixes, suggestions, banned, skip and disallowed lists, so
// they can extend rather than restate them.
func loadStarlark(filename string, src []byte) (*Config, error) {
	thread := &starlark.Thread{
		Name:  "config:" + filename,
		Print: func(_ *starlark.Thread, _ string) {},
	}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{TopLevelControl: true, Set: true}, thread, filename, src, starlarkPredeclared())
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", filename, err)
	}

	value, ok := globals[starlarkConfigName]
	if !ok {
		return nil, fmt.Errorf("%s: no top-level %q dict defined", filename, starlarkConfigName)
	}
	if _, ok := value.(*starlark.Dict); !ok {
		return nil, fmt.Errorf("%s: %q must be a dict, got %s", filename, starlarkConfigName, value.Type())
	}

	goValue, err := starlarkToGo(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	// Round-trip through JSON so Switch fields see false the same way they
	// do in JSON files.
	data, err := json.Marshal(goValue)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding config: %w", filename, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: parsing config: %w", filename, err)
	}
	return &cfg, nil
}

func starlarkPredeclared() starlark.StringDict {
	d := CreateDefaultConfiguration()

	defaults := starlark.NewDict(5)
	_ = defaults.SetKey(starlark.String("prefixes"), stringList(d.Prefixes.Value))
	_ = defaults.SetKey(starlark.String("banned"), stringList(*d.Banned))
	_ = defaults.SetKey(starlark.String("skip"), stringList(*d.Skip))
	_ = defaults.SetKey(starlark.String("disallowed"), stringList(*d.Disallowed))

	keys := make([]string, 0, len(d.Suggestions))
	for k := range d.Suggestions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	suggestions := starlark.NewDict(len(keys))
	for _, k := range keys {
		_ = suggestions.SetKey(starlark.String(k), starlark.String(d.Suggestions[k]))
	}
	_ = defaults.SetKey(starlark.String("suggestions"), suggestions)

	return starlark.StringDict{"defaults": defaults}
}

func stringList(ss []string) *starlark.List {
	elems := make([]starlark.Value, len(ss))
	for i, s := range ss {
		elems[i] = starlark.String(s)
	}
	return starlark.NewList(elems)
}

// starlarkToGo converts a Starlark value to plain Go values suitable for
// JSON encoding: string, int64, float64, bool, []any, map[string]any or nil.
func starlarkToGo(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.String:
		return string(val), nil
	case starlark.Bool:
		return bool(val), nil
	case starlark.Int:
		i, ok := val.Int64()
		if !ok {
			return nil, fmt.Errorf("integer %s out of range", val.String())
		}
		return i, nil
	case starlark.Float:
		return float64(val), nil
	case *starlark.List:
		return starlarkSequence(val)
	case starlark.Tuple:
		return starlarkSequence(val)
	case *starlark.Dict:
		out := make(map[string]any, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be a string, got %s", item[0].Type())
			}
			gv, err := starlarkToGo(item[1])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", string(key), err)
			}
			out[string(key)] = gv
		}
		return out, nil
	default:
		return nil, errors.New("unsupported value of type " + v.Type())
	}
}

func starlarkSequence(seq starlark.Indexable) ([]any, error) {
	out := make([]any, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		gv, err := starlarkToGo(seq.Index(i))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = gv
	}
	return out, nil
}
