package logging

import "strings"

// secretKeyPatterns contains substrings that indicate an attribute
// likely carries sensitive data. Matched case-insensitively. The
// settings document holds the credential encryption key, so anything
// key- or secret-shaped is masked before it reaches log output.
var secretKeyPatterns = []string{
	"KEY",
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"CREDENTIAL",
}

// ShouldMask reports whether an attribute with the given key should
// have its value redacted.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
