package attrs

import "github.com/mitchellh/mapstructure"

// Decode decodes b into out, a pointer to a struct. Fields are matched by
// their `attr` tag, or case-insensitively by name. Decoding is weakly typed
// so "3" decodes into an int field. Keys without a matching field are ignored.
func Decode(b Bag, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "attr",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(b))
}
