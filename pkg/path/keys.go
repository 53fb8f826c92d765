package path

import "strings"

// Keys splits a path expression into its ordered keys.
//
// Keys are separated by '.' outside of brackets or delimited by '[' and ']'.
// A bracketed key that starts with a quote (" or ') runs until the matching
// quote, so brackets inside it are literal, and a bracketed key wrapped in a
// matching pair of quotes is returned without them. Quotes outside brackets
// are ordinary characters.
//
//	Keys(`step_1.data[0]["first name"]`) // ["step_1" "data" "0" "first name"]
//
// Keys never fails: unbalanced brackets or quotes and empty segments yield
// best-effort keys.
func Keys(path string) []string {
	var (
		keys       []string
		word       strings.Builder
		inBrackets bool
		afterDot   = true
		quote      rune
	)

	flush := func(bracketed bool) {
		k := word.String()
		if bracketed {
			k = unquote(k)
		}
		keys = append(keys, k)
		word.Reset()
	}

	for _, r := range path {
		if quote != 0 {
			word.WriteRune(r)
			if r == quote {
				quote = 0
			}
			continue
		}
		if (r == '"' || r == '\'') && word.Len() == 0 && inBrackets {
			quote = r
			word.WriteRune(r)
			continue
		}

		switch {
		case r == '.' && !afterDot && !inBrackets:
			// Dot right after a closing bracket only separates.
			afterDot = true
		case r == '.' && afterDot:
			flush(false)
		case afterDot && r != '[':
			word.WriteRune(r)
		case r == '[':
			if word.Len() > 0 {
				flush(false)
			}
			inBrackets = true
			afterDot = false
		case r == ']':
			flush(true)
			inBrackets = false
		default:
			word.WriteRune(r)
		}
	}
	switch {
	case quote != 0:
		// Unterminated quoted key, kept verbatim.
		flush(false)
	case afterDot:
		flush(false)
	}
	return keys
}

// Join is the inverse of Keys for simple identifiers: keys are joined with
// dots, and keys that are not plain identifiers are written in bracket form.
func Join(keys []string) string {
	var sb strings.Builder
	for i, k := range keys {
		switch {
		case isIdentifier(k):
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(k)
		case isIndex(k):
			sb.WriteString("[" + k + "]")
		default:
			q := `"`
			if strings.Contains(k, `"`) {
				q = `'`
			}
			sb.WriteString("[" + q + k + q + "]")
		}
	}
	return sb.String()
}

func unquote(k string) string {
	if len(k) < 2 {
		return k
	}
	first, last := k[0], k[len(k)-1]
	if (first == '"' || first == '\'') && first == last {
		return k[1 : len(k)-1]
	}
	return k
}

func isIdentifier(k string) bool {
	if k == "" {
		return false
	}
	for i, r := range k {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isIndex(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
