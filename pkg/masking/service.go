package masking

import "strings"

// sensitiveKeys are payload keys whose values are masked wholesale,
// regardless of shape. Lookup is case-insensitive.
var sensitiveKeys = map[string]bool{
	"password":      true,
	"pwd":           true,
	"pass":          true,
	"secret":        true,
	"api_key":       true,
	"apikey":        true,
	"token":         true,
	"authorization": true,
	"x-cx-apikey":   true,
}

// MaskedValue replaces the value of a sensitive payload key.
const MaskedValue = "__MASKED__"

// Service applies credential masking to strings and payload maps.
type Service struct {
	patterns []*CompiledPattern
	maskers  []Masker
}

// NewService creates a masking service with the built-in patterns and
// code maskers.
func NewService() *Service {
	return &Service{
		patterns: compileBuiltinPatterns(),
		maskers:  []Masker{&SIPURIMasker{}},
	}
}

// MaskString applies all code maskers and regex patterns to data.
func (s *Service) MaskString(data string) string {
	for _, m := range s.maskers {
		if m.AppliesTo(data) {
			data = m.Mask(data)
		}
	}
	for _, p := range s.patterns {
		data = p.Regex.ReplaceAllString(data, p.Replacement)
	}
	return data
}

// MaskMap returns a masked deep copy of a payload map. Sensitive keys are
// masked wholesale; remaining string values run through MaskString. The
// input map is never mutated.
func (s *Service) MaskMap(data map[string]interface{}) map[string]interface{} {
	if data == nil {
		return nil
	}
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if sensitiveKeys[strings.ToLower(k)] {
			out[k] = MaskedValue
			continue
		}
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return s.MaskString(val)
	case map[string]interface{}:
		return s.MaskMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return v
	}
}
