package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadStarlark evaluates a Starlark configuration. If src is nil, the
// file is read from filename. The globals machines (a dict of name to a
// list of opcode names), max_lines and verbose are used.
func LoadStarlark(filename string, src any) (cfg *Config, err error) {
	thread := starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, nil)
	if err != nil {
		return
	}

	cfg = Default()
	defer func() {
		if err != nil {
			cfg = nil
		}
	}()

	if value, ok := globals["machines"]; ok {
		dict, ok := value.(*starlark.Dict)
		if !ok {
			err = &ErrConfigValue{Key: "machines", Err: ErrConfigType}
			return
		}
		for _, item := range dict.Items() {
			name, ok := starlark.AsString(item[0])
			if !ok {
				err = &ErrConfigValue{Key: "machines." + item[0].String(), Err: ErrConfigType}
				return
			}
			var names []string
			names, err = starlarkStrings(item[1])
			if err != nil {
				err = &ErrConfigValue{Key: "machines." + name, Err: err}
				return
			}
			err = cfg.setMachine(name, names)
			if err != nil {
				return
			}
		}
	}

	if value, ok := globals["max_lines"]; ok {
		var lines int
		lines, err = starlark.AsInt32(value)
		if err != nil {
			err = &ErrConfigValue{Key: "max_lines", Err: err}
			return
		}
		err = cfg.setMaxLines(lines)
		if err != nil {
			return
		}
	}

	if value, ok := globals["verbose"]; ok {
		cfg.Verbose = bool(value.Truth())
	}

	return
}

// starlarkStrings converts an iterable of Starlark strings.
func starlarkStrings(value starlark.Value) (strs []string, err error) {
	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrConfigType
		return
	}
	defer iter.Done()

	var elem starlark.Value
	for iter.Next(&elem) {
		str, ok := starlark.AsString(elem)
		if !ok {
			err = ErrConfigType
			return
		}
		strs = append(strs, str)
	}

	return
}
