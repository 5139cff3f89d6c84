package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns are the credential shapes that show up in carrier payloads
// and SIP agent configuration.
var builtinPatterns = map[string]struct {
	Pattern     string
	Replacement string
	Description string
}{
	"api_key": {
		Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,})["']?`,
		Replacement: `"api_key": "__MASKED_API_KEY__"`,
		Description: "API keys",
	},
	"password": {
		Pattern:     `(?i)(?:password|pwd|pass)["']?\s*[:=]\s*["']?([^"'\s\n]{4,})["']?`,
		Replacement: `"password": "__MASKED_PASSWORD__"`,
		Description: "Passwords",
	},
	"token": {
		Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		Replacement: `"token": "__MASKED_TOKEN__"`,
		Description: "Access tokens",
	},
}

// compileBuiltinPatterns compiles the built-in regex patterns.
// Invalid patterns are logged and skipped.
func compileBuiltinPatterns() []*CompiledPattern {
	out := make([]*CompiledPattern, 0, len(builtinPatterns))
	for name, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: p.Replacement,
			Description: p.Description,
		})
	}
	return out
}
