package dlnaheader

import (
	"math/rand"
	"net/http"
	"testing"
)

func header(name, value string) http.Header {
	h := http.Header{}
	h.Set(name, value)
	return h
}

func checkFuzz(t *testing.T, parseFunc func(t *testing.T, v string)) {
	// Simplistic fuzz testing: On any input, the parse function must not panic.
	t.Helper()
	for i := 0; i < 200; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			b := make([]byte, r.Intn(48))
			for j := range b {
				// Biased towards the range grammar, to trigger more parser states.
				const chars = "\x00 \t=-/:.*0123456789nptNPTbytes"
				b[j] = chars[r.Intn(len(chars))]
			}
			t.Logf("value: %q", b)
			parseFunc(t, string(b))
		})
	}
}

func randNPTSec(r *rand.Rand) (secs int, millis int) {
	return r.Intn(60), r.Intn(1000)
}
