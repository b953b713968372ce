// Package therapy holds the therapy-type vocabulary shared by the referral
// parser, the roster and the scheduling domain.
package therapy

import "strings"

// Type is a canonical therapy category as it appears in roster entries,
// extracted referrals and generated certificates.
type Type string

const (
	Speech        Type = "Λογοθεραπεία"
	Occupational  Type = "Εργοθεραπεία"
	Behavioral    Type = "Θεραπεία Συμπεριφοράς"
	SpecialPhysio Type = "Ειδική Αγωγή - Φυσικοθεραπεία"
)

// All lists the canonical therapy types in display order.
func All() []Type {
	return []Type{Speech, Occupational, Behavioral, SpecialPhysio}
}

// Valid reports whether t is one of the canonical therapy types.
func (t Type) Valid() bool {
	switch t {
	case Speech, Occupational, Behavioral, SpecialPhysio:
		return true
	}
	return false
}

// accentFold maps accented Greek uppercase and lowercase vowels to their
// unaccented uppercase forms.
var accentFold = map[rune]rune{
	'Ά': 'Α', 'Έ': 'Ε', 'Ή': 'Η', 'Ί': 'Ι', 'Ό': 'Ο', 'Ύ': 'Υ', 'Ώ': 'Ω',
	'ά': 'Α', 'έ': 'Ε', 'ή': 'Η', 'ί': 'Ι', 'ό': 'Ο', 'ύ': 'Υ', 'ώ': 'Ω',
}

// FoldUpper uppercases s and strips Greek accent diacritics, so that label
// variants like "Λογοθεραπεία" and "ΛΟΓΟΘΕΡΑΠΕΙΑ" compare equal.
func FoldUpper(s string) string {
	upper := strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		if folded, ok := accentFold[r]; ok {
			return folded
		}
		return r
	}, upper)
}

// Normalize maps a raw therapy label from document text to its canonical
// Type. Both spellings of speech therapy (ΛΟΓΟΘΕΡΑΠΕΙΑ / ΛΟΓΟΘΕΡΑΠΙΑ) fold
// to the canonical name, and the combined special-education/physiotherapy
// label is kept as one category, never split. Unrecognized labels pass
// through unchanged.
func Normalize(raw string) Type {
	folded := FoldUpper(raw)
	switch {
	case strings.Contains(folded, "ΛΟΓΟΘΕΡΑΠΕΙ") || strings.Contains(folded, "ΛΟΓΟΘΕΡΑΠΙ"):
		return Speech
	case strings.Contains(folded, "ΕΡΓΟΘΕΡΑΠΕΙ") || strings.Contains(folded, "ΕΡΓΟΘΕΡΑΠΙ"):
		return Occupational
	case strings.Contains(folded, "ΣΥΜΠΕΡΙΦΟΡ"):
		return Behavioral
	case strings.Contains(folded, "ΕΙΔΙΚΗ") && strings.Contains(folded, "ΦΥΣΙΚΟΘΕΡΑΠΕΙΑ"):
		return SpecialPhysio
	}
	return Type(raw)
}
