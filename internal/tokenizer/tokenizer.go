package tokenizer

// Tab is the word produced for a tab character or four consecutive spaces.
const Tab = "\t"

// reserved lists every character that always forms its own one-character word.
var reserved = map[rune]bool{
	' ': true, '\n': true, '\t': true,
	'=': true, ',': true, ':': true, '(': true, ')': true, '"': true, '\'': true,
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'#': true,
}

/**
* Splits raw Snake source into a flat list of words. Whitespace is reduced to
* newline and tab words, comments are dropped, and reserved symbols are split
* into their own words. No classification happens here.
* @param input The source text.
* @return The words in source order.
 */
func Tokenize(input string) []string {
	text := []rune(input)
	var words []string
	i := 0

	for i < len(text) {
		ch := text[i]

		// Four spaces are one tab.
		if hasIndentRun(text, i) {
			words = append(words, Tab)
			i += 4
			continue
		}

		if ch == ' ' {
			i++
			continue
		}

		if ch == '#' {
			i = skipComment(text, i)
			continue
		}

		if reserved[ch] {
			words = append(words, string(ch))
			i++
			continue
		}

		word, next := scanWord(text, i)
		words = append(words, word)
		i = next
	}

	return words
}

func hasIndentRun(text []rune, i int) bool {
	if i+4 > len(text) {
		return false
	}
	for _, ch := range text[i : i+4] {
		if ch != ' ' {
			return false
		}
	}
	return true
}

// skipComment returns the index of the newline ending the comment (or the end
// of input). The newline itself is left for the caller.
func skipComment(text []rune, i int) int {
	for i < len(text) && text[i] != '\n' {
		i++
	}
	return i
}

func scanWord(text []rune, start int) (string, int) {
	i := start
	for i < len(text) && !reserved[text[i]] {
		i++
	}
	return string(text[start:i]), i
}

