package domain

import "strings"

// Category classifies the subject of a study log. The set is closed: values
// outside it are rejected at the boundary by ParseCategory.
type Category string

const (
	CategoryJava      Category = "JAVA"
	CategorySpring    Category = "SPRING"
	CategoryDatabase  Category = "DATABASE"
	CategoryAlgorithm Category = "ALGORITHM"
	CategoryNetwork   Category = "NETWORK"
	CategoryEtc       Category = "ETC"
)

var categoryIcons = map[Category]string{
	CategoryJava:      "☕",
	CategorySpring:    "🌱",
	CategoryDatabase:  "🗄️",
	CategoryAlgorithm: "🧮",
	CategoryNetwork:   "🌐",
	CategoryEtc:       "📚",
}

// Icon returns the display icon associated with the category.
func (c Category) Icon() string { return categoryIcons[c] }

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryIcons[c]
	return ok
}

// ParseCategory resolves a category token case-insensitively. Unrecognized
// tokens yield an invalid-enum error naming the field and the offending value.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", NewInvalidEnumError("category", s)
	}
	return c, nil
}

// Understanding is the author's self-assessed grasp of the studied subject.
type Understanding string

const (
	UnderstandingPerfect Understanding = "PERFECT"
	UnderstandingGood    Understanding = "GOOD"
	UnderstandingNormal  Understanding = "NORMAL"
	UnderstandingBad     Understanding = "BAD"
)

var understandingEmojis = map[Understanding]string{
	UnderstandingPerfect: "💯",
	UnderstandingGood:    "😊",
	UnderstandingNormal:  "😐",
	UnderstandingBad:     "😢",
}

// Emoji returns the display glyph associated with the understanding level.
func (u Understanding) Emoji() string { return understandingEmojis[u] }

// Valid reports whether u is a member of the closed understanding set.
func (u Understanding) Valid() bool {
	_, ok := understandingEmojis[u]
	return ok
}

// ParseUnderstanding resolves an understanding token case-insensitively.
func ParseUnderstanding(s string) (Understanding, error) {
	u := Understanding(strings.ToUpper(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", NewInvalidEnumError("understanding", s)
	}
	return u, nil
}
