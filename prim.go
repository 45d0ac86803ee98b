package dlnaheader

func peek(v string) byte {
	if v == "" {
		return 0
	}
	return v[0]
}

func skipWS(v string) string {
	for v != "" && isWS(v[0]) {
		v = v[1:]
	}
	return v
}

// consumeDigits splits v after its leading run of ASCII digits.
func consumeDigits(v string) (digits, rest string) {
	i := 0
	for ; i < len(v); i++ {
		if !isDigit(v[i]) {
			break
		}
	}
	return v[:i], v[i:]
}

// consumeTo splits v before the first byte that is whitespace or one of delims.
func consumeTo(v string, delims ...byte) (item, rest string) {
	i := 0
scan:
	for ; i < len(v); i++ {
		if isWS(v[i]) {
			break
		}
		for _, d := range delims {
			if v[i] == d {
				break scan
			}
		}
	}
	return v[:i], v[i:]
}

// indexFold is like strings.Index, but ASCII letters match regardless of case.
// Offsets into s are preserved, so the result can be used to slice s itself.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

// indexWordFold is like indexFold, but skips matches that continue a word,
// so that "BYTES" is not found inside "cleartextbytes".
func indexWordFold(s, word string) int {
	for off := 0; off < len(s); {
		i := indexFold(s[off:], word)
		if i == -1 {
			return -1
		}
		i += off
		if i == 0 || !isAlpha(s[i-1]) {
			return i
		}
		off = i + 1
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if toUpper(a[i]) != toUpper(b[i]) {
			return false
		}
	}
	return true
}
