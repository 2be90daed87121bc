package requests

import (
	"github.com/mitchellh/mapstructure"
)

// FormValues holds raw field values keyed by form field name. Values may be
// strings or JSON scalars; they are coerced to strings while decoding.
type FormValues map[string]interface{}

// FormValuesFromStrings converts command line key=value pairs.
func FormValuesFromStrings(values map[string]string) FormValues {
	form := make(FormValues, len(values))
	for key, value := range values {
		form[key] = value
	}
	return form
}

// Merge returns a new set where overrides replace the receiver's values.
func (f FormValues) Merge(overrides FormValues) FormValues {
	merged := make(FormValues, len(f)+len(overrides))
	for key, value := range f {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}

// DecodeForm fills out from values and fails on field names out does not declare.
func DecodeForm(values FormValues, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]interface{}(values))
}
