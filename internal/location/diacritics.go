package location

import (
	"strings"
	"unicode"
)

// Romanian diacritics fold into four base letters. Both the cedilla (ş, ţ)
// and comma-below (ș, ț) forms occur in the source data, so every variant
// maps to the same class as its base letter: "Brasov" and "Brașov" produce
// the same pattern.
var diacriticClasses = map[rune]string{
	'a': "[aăâAĂÂ]",
	'ă': "[aăâAĂÂ]",
	'â': "[aăâAĂÂ]",
	'i': "[iîIÎ]",
	'î': "[iîIÎ]",
	's': "[sșşSȘŞ]",
	'ș': "[sșşSȘŞ]",
	'ş': "[sșşSȘŞ]",
	't': "[tțţTȚŢ]",
	'ț': "[tțţTȚŢ]",
	'ţ': "[tțţTȚŢ]",
}

const regexSpecials = `.*+?^$()[]{}|\`

// FlexiblePattern builds a case-insensitive POSIX regex in which every letter
// with a diacritic variant matches any of its forms. The same pattern works
// against Go's regexp and Postgres ~* since only character classes are used.
// With exact set the pattern is anchored to the whole string.
func FlexiblePattern(term string, exact bool) string {
	var b strings.Builder
	if exact {
		b.WriteString("^")
	}
	for _, r := range term {
		if class, ok := diacriticClasses[unicode.ToLower(r)]; ok {
			b.WriteString(class)
			continue
		}
		if strings.ContainsRune(regexSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	if exact {
		b.WriteString("$")
	}
	return b.String()
}
