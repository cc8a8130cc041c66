package options

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// optionsSchema constrains untyped option documents.
const optionsSchema = `
#Options: {
	"enable"?:       bool
	"package"?:      string & !=""
	"configSource"?: string & !=""
}
`

// names lists every option name.
var names = []string{EnableOption, PackageOption, ConfigSourceOption}

// Decode checks an untyped options document, as read from a configuration
// file, against the options schema and converts it to Options. Keys absent
// from raw stay omitted, and so do keys whose value is nil (a null in the
// file). A key of the wrong type, or a key that is not an option, fails with
// an *InvalidOptionError naming it; keys are checked in alphabetical order.
func Decode(raw map[string]any) (Options, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(optionsSchema)
	if err := schema.Err(); err != nil {
		return Options{}, fmt.Errorf("failed to compile options schema: %w", err)
	}
	v := schema.LookupPath(cue.ParsePath("#Options"))

	for _, k := range slices.Sorted(maps.Keys(raw)) {
		if !slices.Contains(names, k) {
			return Options{}, &InvalidOptionError{Option: k, Err: errors.New("unknown option")}
		}
		if raw[k] == nil {
			continue
		}
		v = v.FillPath(cue.MakePath(cue.Str(k)), raw[k])
		if err := v.Validate(cue.Concrete(true)); err != nil {
			return Options{}, &InvalidOptionError{Option: k, Err: err}
		}
	}

	var o Options
	if err := v.Decode(&o); err != nil {
		return Options{}, fmt.Errorf("failed to decode options: %w", err)
	}
	if o.ConfigSource != nil {
		if err := checkPath(*o.ConfigSource); err != nil {
			return Options{}, &InvalidOptionError{Option: ConfigSourceOption, Err: err}
		}
	}
	return o, nil
}
