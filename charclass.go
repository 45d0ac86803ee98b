package dlnaheader

type charClass uint8

const (
	cDigit charClass = 1 << iota
	cUpper
	cLower
	cWS
)

var byteClass [256]charClass

func init() {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		switch {
		case b >= '0' && b <= '9':
			byteClass[b] = cDigit
		case b >= 'A' && b <= 'Z':
			byteClass[b] = cUpper
		case b >= 'a' && b <= 'z':
			byteClass[b] = cLower
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			byteClass[b] = cWS
		}
	}
}

func isDigit(b byte) bool { return byteClass[b]&cDigit != 0 }
func isAlpha(b byte) bool { return byteClass[b]&(cUpper|cLower) != 0 }
func isWS(b byte) bool    { return byteClass[b]&cWS != 0 }

func toUpper(b byte) byte {
	if byteClass[b]&cLower != 0 {
		return b - 'a' + 'A'
	}
	return b
}
