package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "github.com/agmada-asa/Nexus/internal/errors"
)

// reassemble undoes the overlap: every chunk after the first contributes only
// the runes past the overlapping prefix.
func reassemble(chunks []string, overlap int) string {
	var sb strings.Builder
	for i, c := range chunks {
		if i == 0 {
			sb.WriteString(c)
			continue
		}
		sb.WriteString(string([]rune(c)[overlap:]))
	}
	return sb.String()
}

func TestSplit_ShortTextIsSingleChunk(t *testing.T) {
	for _, text := range []string{"", "Hi", strings.Repeat("a", 10)} {
		chunks, err := Split(text, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{text}, chunks)
	}
}

func TestSplit_Properties(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		maxSize int
		overlap int
	}{
		{"one past max", 11, 10, 3},
		{"exact multiple", 30, 10, 0},
		{"large overlap", 57, 10, 9},
		{"default sizes", 19200, 10000, 500},
		{"just over", 10500, 10000, 500},
		{"long no overlap", 1001, 7, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			for i := 0; i < tc.n; i++ {
				sb.WriteByte(byte('a' + i%26))
			}
			text := sb.String()

			chunks, err := Split(text, tc.maxSize, tc.overlap)
			require.NoError(t, err)

			assert.Len(t, chunks, Count(tc.n, tc.maxSize, tc.overlap))
			for i, c := range chunks[:len(chunks)-1] {
				assert.Len(t, []rune(c), tc.maxSize, "chunk %d", i)
			}
			assert.LessOrEqual(t, len([]rune(chunks[len(chunks)-1])), tc.maxSize)
			assert.Equal(t, text, reassemble(chunks, tc.overlap))

			step := tc.maxSize - tc.overlap
			for i := 1; i < len(chunks); i++ {
				assert.Equal(t, text[i*step:i*step+tc.overlap], chunks[i][:tc.overlap], "chunk %d must start %d runes after the previous one", i, step)
			}
		})
	}
}

func TestCount_MatchesFormula(t *testing.T) {
	// ceil(max(0, n-overlap) / (maxSize-overlap)) for n > maxSize.
	assert.Equal(t, 2, Count(10500, 10000, 500))
	assert.Equal(t, 2, Count(19200, 10000, 500))
	assert.Equal(t, 3, Count(19501, 10000, 500))
	assert.Equal(t, 1, Count(0, 10, 3))
	assert.Equal(t, 3, Count(30, 10, 0))
}

func TestSplit_CountsRunesNotBytes(t *testing.T) {
	text := strings.Repeat("é", 12)

	chunks, err := Split(text, 5, 1)
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("é", 5), chunks[0])
	assert.Equal(t, strings.Repeat("é", 4), chunks[2])
}

func TestSplit_InvalidParameters(t *testing.T) {
	_, err := Split("text", 0, 0)
	assert.ErrorIs(t, err, app_errors.ErrValidation)

	_, err = Split("text", 5, 5)
	assert.ErrorIs(t, err, app_errors.ErrValidation)

	_, err = Split("text", 5, -1)
	assert.ErrorIs(t, err, app_errors.ErrValidation)
}
