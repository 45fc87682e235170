// Package naming holds the wire-name conversion helpers used when
// ingesting XML attributes and when deriving class identifiers from
// element tags. All conversions are deterministic and pure.
package naming

import (
	"strings"
	"unicode"
)

// Identity returns the wire name unchanged. It is the default attribute
// naming convention: stored names equal wire names, which keeps a
// serialize/deserialize round trip exact.
func Identity(name string) string {
	return name
}

// ToSnake converts a camelCase wire name to snake_case, e.g.
// "adminPower" becomes "admin_power". Consecutive upper-case runes each
// start a new word, matching the management SDKs that use snake_case
// internal field names.
func ToSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamel converts a snake_case name back to camelCase, e.g.
// "admin_power" becomes "adminPower". It is the inverse of ToSnake for
// names that contain no consecutive underscores.
func ToCamel(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Capitalize upper-cases the first rune of name, turning an element tag
// such as "computeBlade" into the class identifier "ComputeBlade".
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
