package tokenizer

// Stem reduces a lowercased ASCII word to its Porter stem. Words of length
// <= 2 are returned unchanged. Stem is a pure function of its input: the
// same word always stems to the same result.
func Stem(w string) string {
	if len(w) <= 2 {
		return w
	}
	b := []byte(w)
	b = step1a(b)
	b = step1b(b)
	b = step1c(b)
	b = step2(b)
	b = step3(b)
	b = step4(b)
	b = step5a(b)
	b = step5b(b)
	return string(b)
}

// isConsonant reports whether the byte at index i of w is a consonant.
// Vowels are a e i o u; y is a vowel iff the preceding character is a
// consonant, and is treated as a consonant at position 0.
func isConsonant(w []byte, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(w, i-1)
	default:
		return true
	}
}

// measure counts vowel-group-to-consonant-group transitions in the VC
// pattern of w (Porter's m).
func measure(w []byte) int {
	n := 0
	i := 0
	for i < len(w) && isConsonant(w, i) {
		i++
	}
	for i < len(w) {
		for i < len(w) && !isConsonant(w, i) {
			i++
		}
		if i >= len(w) {
			break
		}
		for i < len(w) && isConsonant(w, i) {
			i++
		}
		n++
	}
	return n
}

// containsVowel reports whether any position in w is a non-consonant.
func containsVowel(w []byte) bool {
	for i := range w {
		if !isConsonant(w, i) {
			return true
		}
	}
	return false
}

// doubleConsonant reports whether w's last two characters are equal
// consonants.
func doubleConsonant(w []byte) bool {
	n := len(w)
	if n < 2 {
		return false
	}
	if w[n-1] != w[n-2] {
		return false
	}
	return isConsonant(w, n-1)
}

// cvc reports the consonant-vowel-consonant tail pattern, excluding a final
// w, x, or y.
func cvc(w []byte) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	if !isConsonant(w, n-1) || isConsonant(w, n-2) || !isConsonant(w, n-3) {
		return false
	}
	last := w[n-1]
	return last != 'w' && last != 'x' && last != 'y'
}

func hasSuffix(w []byte, suffix string) bool {
	n := len(w)
	m := len(suffix)
	if n < m {
		return false
	}
	return string(w[n-m:]) == suffix
}

func trimSuffix(w []byte, suffix string) []byte {
	return w[:len(w)-len(suffix)]
}

func replaceSuffix(w []byte, suffix, replacement string) []byte {
	return append(trimSuffix(w, suffix), replacement...)
}

func step1a(w []byte) []byte {
	switch {
	case hasSuffix(w, "sses"):
		return replaceSuffix(w, "sses", "ss")
	case hasSuffix(w, "ies"):
		return replaceSuffix(w, "ies", "i")
	case hasSuffix(w, "ss"):
		return w
	case hasSuffix(w, "s"):
		return trimSuffix(w, "s")
	}
	return w
}

func step1b(w []byte) []byte {
	if hasSuffix(w, "eed") {
		stem := trimSuffix(w, "eed")
		if measure(stem) > 0 {
			return replaceSuffix(w, "eed", "ee")
		}
		return w
	}

	var stem []byte
	removed := false
	switch {
	case hasSuffix(w, "ed"):
		stem = trimSuffix(w, "ed")
		if containsVowel(stem) {
			w = stem
			removed = true
		}
	case hasSuffix(w, "ing"):
		stem = trimSuffix(w, "ing")
		if containsVowel(stem) {
			w = stem
			removed = true
		}
	}
	if !removed {
		return w
	}

	switch {
	case hasSuffix(w, "at"), hasSuffix(w, "bl"), hasSuffix(w, "iz"):
		w = append(w, 'e')
	case doubleConsonant(w):
		last := w[len(w)-1]
		if last != 'l' && last != 's' && last != 'z' {
			w = w[:len(w)-1]
		}
	case measure(w) == 1 && cvc(w):
		w = append(w, 'e')
	}
	return w
}

func step1c(w []byte) []byte {
	if hasSuffix(w, "y") {
		stem := trimSuffix(w, "y")
		if containsVowel(stem) {
			w[len(w)-1] = 'i'
		}
	}
	return w
}

type suffixRule struct {
	suffix      string
	replacement string
}

var step2Rules = []suffixRule{
	{"ational", "ate"}, {"tional", "tion"}, {"enci", "ence"}, {"anci", "ance"},
	{"izer", "ize"}, {"abli", "able"}, {"alli", "al"}, {"entli", "ent"},
	{"eli", "e"}, {"ousli", "ous"}, {"ization", "ize"}, {"ation", "ate"},
	{"ator", "ate"}, {"alism", "al"}, {"iveness", "ive"}, {"fulness", "ful"},
	{"ousness", "ous"}, {"aliti", "al"}, {"iviti", "ive"}, {"biliti", "ble"},
}

var step3Rules = []suffixRule{
	{"icate", "ic"}, {"ative", ""}, {"alize", "al"}, {"iciti", "ic"},
	{"ical", "ic"}, {"ful", ""}, {"ness", ""},
}

func applyGatedRules(w []byte, rules []suffixRule, minMeasure int) []byte {
	for _, rule := range rules {
		if hasSuffix(w, rule.suffix) {
			stem := trimSuffix(w, rule.suffix)
			if measure(stem) > minMeasure {
				return replaceSuffix(w, rule.suffix, rule.replacement)
			}
			return w
		}
	}
	return w
}

func step2(w []byte) []byte {
	return applyGatedRules(w, step2Rules, 0)
}

func step3(w []byte) []byte {
	return applyGatedRules(w, step3Rules, 0)
}

var step4Suffixes = []string{
	"al", "ance", "ence", "er", "ic", "able", "ible", "ant", "ement", "ment", "ent",
	"ou", "ism", "ate", "iti", "ous", "ive", "ize",
}

func step4(w []byte) []byte {
	for _, suffix := range step4Suffixes {
		if hasSuffix(w, suffix) {
			stem := trimSuffix(w, suffix)
			if measure(stem) > 1 {
				return stem
			}
			return w
		}
	}
	if hasSuffix(w, "ion") {
		stem := trimSuffix(w, "ion")
		if len(stem) >= 1 {
			prev := stem[len(stem)-1]
			if (prev == 's' || prev == 't') && measure(stem) > 1 {
				return stem
			}
		}
	}
	return w
}

func step5a(w []byte) []byte {
	if hasSuffix(w, "e") {
		stem := trimSuffix(w, "e")
		m := measure(stem)
		if m > 1 || (m == 1 && !cvc(stem)) {
			return stem
		}
	}
	return w
}

func step5b(w []byte) []byte {
	if measure(w) > 1 && hasSuffix(w, "ll") {
		return w[:len(w)-1]
	}
	return w
}
