package domain

import "github.com/spf13/cast"

// Values holds the parameters a matcher bound while recognizing a line.
// Regex matchers bind strings; argument grammars bind typed values.
type Values map[string]any

func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v Values) String(name string) string {
	return cast.ToString(v[name])
}

func (v Values) Int(name string) int {
	return cast.ToInt(v[name])
}

func (v Values) Bool(name string) bool {
	return cast.ToBool(v[name])
}
