package dlnaheader

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleParseNPTTime() {
	ns, _ := ParseNPTTime("0:00:48.716")
	fmt.Println(ns)
	// Output: 48716001280
}

func TestParseNPTTime(t *testing.T) {
	tests := []struct {
		input  string
		result uint64
	}{
		// Short form.
		{"0", 0},
		{"5", 5000000000},
		{"10.0", 10000000000},
		{"1.5", 1500000000},
		{"0.001", 1000000},
		{"0.232", 232000000},
		{"12.5", 12499999744},
		{"16.652", 16652000256},
		{"20.500", 20500000768},
		{"59.999", 59998998528},
		{"100", 99999997952},
		{"335.1", 335099985920},
		{"336.1", 336099999744},
		{"40445.4", 40445400842240},

		// Long form.
		{"0:00:00.000", 0},
		{"0:00:5", 5000000000},
		{"0:00:10.0", 10000000000},
		{"0:00:48.716", 48716001280},
		{"0:1:30.5", 90499997696},
		{"1:00:00", 3599999959040},
		{"1:02:03.450", 3723450122240},
		{"2:15:07.25", 8107249893376},
		{"10:00:00", 36000000638976},
		{"100:00:00", 359999998001152},

		// Minutes and seconds are not range checked.
		{"0:75:99", 4598999810048},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			ns, err := ParseNPTTime(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.result, ns)
		})
	}
}

func TestParseNPTTimeMalformed(t *testing.T) {
	tests := []string{
		"",
		" ",
		"*",
		".5",
		"5.",
		"-5",
		"+5",
		" 5",
		"5 ",
		"5s",
		"1e3",
		"0x10",
		"1:2",
		"1:",
		":1:2",
		"1::2",
		"1:2:",
		"1:2:3:4",
		"1:123:00",
		"1:00:123",
		"1:00:00.",
		"1:00:.5",
		"a:00:00",
		"1:0a:00",
		"99999999999999999999:00:00",
		"100000000000000",
		"0:00:00.000-0:00:48.716",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseNPTTime(input)
			assert.ErrorIs(t, err, ErrMalformedTime)
		})
	}
}

func TestNPTTimeFormsAgree(t *testing.T) {
	// Below one minute, both forms must give the same value.
	for i := 0; i < 200; i++ {
		r := rand.New(rand.NewSource(int64(i)))
		secs, millis := randNPTSec(r)
		frac := fmt.Sprintf("%d.%03d", secs, millis)
		short, err := ParseNPTTime(frac)
		require.NoError(t, err)
		long, err := ParseNPTTime("0:00:" + frac)
		require.NoError(t, err)
		require.Equal(t, short, long, frac)
	}
}

func TestParseNPTTimeFloatPath(t *testing.T) {
	// The conversion goes through 32-bit float milliseconds,
	// so results may differ from exact integer arithmetic, but not by much.
	for i := 0; i < 200; i++ {
		r := rand.New(rand.NewSource(int64(i)))
		hours, mins := r.Intn(24), r.Intn(60)
		secs, millis := randNPTSec(r)
		input := fmt.Sprintf("%d:%02d:%02d.%03d", hours, mins, secs, millis)
		exact := uint64(((hours*3600+mins*60+secs)*1000 + millis)) * 1000000
		ns, err := ParseNPTTime(input)
		require.NoError(t, err)
		if exact == 0 {
			require.Zero(t, ns, input)
			continue
		}
		require.InEpsilon(t, exact, ns, 1e-6, input)
	}
}

func TestFormatNPTTime(t *testing.T) {
	tests := []struct {
		input  uint64
		result string
	}{
		{0, "0:00:00.000"},
		{999999, "0:00:00.000"},
		{1000000, "0:00:00.001"},
		{5000000000, "0:00:05.000"},
		{48716001280, "0:00:48.716"},
		{3723450122240, "1:02:03.450"},
		{359999998001152, "99:59:59.998"},
	}
	for _, test := range tests {
		t.Run(test.result, func(t *testing.T) {
			assert.Equal(t, test.result, FormatNPTTime(test.input))
		})
	}
}

func TestFormatNPTTimeRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		r := rand.New(rand.NewSource(int64(i)))
		ns := uint64(1+r.Int63n(100*3600*1000)) * 1000000
		s := FormatNPTTime(ns)
		parsed, err := ParseNPTTime(s)
		require.NoError(t, err, s)
		require.InEpsilon(t, ns, parsed, 1e-6, s)
	}
}
