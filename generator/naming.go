// This file implements name conversion from schema identifiers to valid
// Go identifiers, including reserved word escaping and initialism
// handling.

package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goReservedWords contains Go reserved keywords that cannot be used as
// identifiers. Predeclared identifiers like "error" are not included
// because they can be shadowed.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// initialisms maps lowercase words to their conventional Go spelling.
var initialisms = map[string]string{
	"id":   "ID",
	"ids":  "IDs",
	"uri":  "URI",
	"url":  "URL",
	"api":  "API",
	"dto":  "DTO",
	"uuid": "UUID",
	"http": "HTTP",
	"json": "JSON",
}

// escapeReservedWord escapes Go reserved keywords by appending an
// underscore. Keywords are all lowercase, so PascalCase names like
// "Type" pass through untouched.
func escapeReservedWord(name string) string {
	if goReservedWords[name] {
		return name + "_"
	}
	return name
}

// toTypeName converts a schema or property name to a valid Go identifier
// (PascalCase). Words split on non-alphanumeric characters; initialisms
// are upper-cased; the result is guaranteed to start with a letter.
//
// Examples:
//
//	"ProcessorConfigDTO" -> "ProcessorConfigDTO"
//	"clientId"           -> "ClientId"
//	"PRIMARY_NODE"       -> "PrimaryNode"
//	"id"                 -> "ID"
func toTypeName(s string) string {
	if s == "" {
		return "Type"
	}

	titleCaser := cases.Title(language.English, cases.NoLower)
	lowerTitleCaser := cases.Title(language.English)

	var result strings.Builder
	result.Grow(len(s))

	for _, word := range splitWords(s) {
		switch {
		case initialisms[strings.ToLower(word)] != "":
			result.WriteString(initialisms[strings.ToLower(word)])
		case isAllUpper(word) && len(word) > 1:
			result.WriteString(lowerTitleCaser.String(word))
		default:
			result.WriteString(titleCaser.String(word))
		}
	}

	name := result.String()
	if name == "" {
		return "Type"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "T" + name
	}
	return escapeReservedWord(name)
}

// toFieldName converts a property name to a valid Go field name
func toFieldName(s string) string {
	return toTypeName(s)
}

// splitWords splits a name on non-alphanumeric characters
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isAllUpper reports whether every letter in the word is upper case
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// cleanDescription prepares a schema description for use in Go comments
func cleanDescription(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
