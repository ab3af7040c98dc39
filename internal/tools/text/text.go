package text

import (
	"regexp"
	"strings"
)

var (
	separatorRE = regexp.MustCompile(`[/\-{](\w)`)
	nonWordRE   = regexp.MustCompile(`\W`)
	identRE     = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
)

// IsIdentifier reports whether s can be written as a bare TypeScript
// property name.
func IsIdentifier(s string) bool {
	return identRE.MatchString(s)
}

// CapitaliseFirstLetter upper-cases the first character of s when it is an
// ASCII word character. Anything else is returned untouched.
func CapitaliseFirstLetter(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

// PathToIdentifier turns a URL path template into a capitalised identifier:
// a slash, dash or opening brace is dropped and the word character after it
// is upper-cased, then every remaining non-word character is removed.
//
//	/pets/{id}      -> PetsId
//	/user-accounts  -> UserAccounts
func PathToIdentifier(path string) string {
	s := separatorRE.ReplaceAllStringFunc(path, func(m string) string {
		return strings.ToUpper(m[1:])
	})
	return CapitaliseFirstLetter(nonWordRE.ReplaceAllString(s, ""))
}
