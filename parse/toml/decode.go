package toml

import "github.com/mitchellh/mapstructure"

// Decode maps a parsed document onto v (a pointer to a struct or map) using
// `toml` field tags. Repeated keys collapse to the newest entry, matching
// ToUntyped. Weakly typed conversions are enabled so int64 scalars fit plain
// int fields.
func Decode(root *Table, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "toml",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	m, _ := ToUntyped(root).(map[string]any)
	return dec.Decode(m)
}
