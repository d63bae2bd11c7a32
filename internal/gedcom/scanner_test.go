package gedcom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_LineEndings(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		rests []string
	}{
		{
			name:  "lf",
			input: "0 HEAD\n1 CHAR UTF-8\n0 TRLR\n",
			rests: []string{"HEAD", "CHAR UTF-8", "TRLR"},
		},
		{
			name:  "crlf",
			input: "0 HEAD\r\n1 CHAR UTF-8\r\n0 TRLR\r\n",
			rests: []string{"HEAD", "CHAR UTF-8", "TRLR"},
		},
		{
			name:  "mixed endings split on crlf only",
			input: "0 HEAD\r\n1 NOTE a\nb\r\n0 TRLR",
			rests: []string{"HEAD", "NOTE a\nb", "TRLR"},
		},
		{
			name:  "blank lines skipped",
			input: "0 HEAD\n\n   \n0 TRLR\n",
			rests: []string{"HEAD", "TRLR"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := Scan([]byte(tc.input))
			require.NoError(t, err)
			var rests []string
			for _, l := range lines {
				rests = append(rests, l.Rest)
			}
			assert.Equal(t, tc.rests, rests)
		})
	}
}

func TestScan_LineNumbersCountBlankLines(t *testing.T) {
	lines, err := Scan([]byte("0 HEAD\n\n1 SOUR x\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, 3, lines[1].Number)
	assert.Equal(t, 1, lines[1].Level)
	assert.Equal(t, "SOUR", lines[1].Tag())
	assert.Equal(t, "x", lines[1].Value())
}

func TestScan_BOM(t *testing.T) {
	lines, err := Scan([]byte("\ufeff0 HEAD\n0 TRLR\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 0, lines[0].Level)
	assert.Equal(t, "HEAD", lines[0].Rest)
}

func TestScan_BOMOnlyOnFirstLine(t *testing.T) {
	_, err := Scan([]byte("0 HEAD\n\ufeff1 SOUR x\n"))
	var malformed *MalformedLevelError
	require.True(t, errors.As(err, &malformed))

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Number)
}

func TestScan_MalformedLevel(t *testing.T) {
	_, err := Scan([]byte("0 HEAD\nx SOUR\n"))

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Number)
	assert.Equal(t, "x SOUR", lineErr.Raw)

	var malformed *MalformedLevelError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "x", malformed.Token)
}

func TestScan_InvalidUTF8(t *testing.T) {
	_, err := Scan([]byte("0 HEAD\n1 NOTE \xff\xfe\n"))

	var encoding *EncodingError
	require.True(t, errors.As(err, &encoding))

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Number)
}

func TestDetect(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain", input: "0 HEAD\n1 SOUR x\n", want: true},
		{name: "bom and blank lines", input: "\n\ufeff0 HEAD\r\n", want: true},
		{name: "not gedcom", input: "digraph {}\n", want: false},
		{name: "record first", input: "0 @P1@ INDI\n", want: false},
		{name: "empty", input: "", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect([]byte(tc.input)))
		})
	}
}
