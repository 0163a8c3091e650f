package sourcing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Reader_newlineFolding(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectChars []rune
		expectLines []int
		expectCols  []int
	}{
		{
			name:        "plain LF",
			input:       "a\nb",
			expectChars: []rune{'a', '\n', 'b'},
			expectLines: []int{1, 2, 2},
			expectCols:  []int{2, 1, 2},
		},
		{
			name:        "CRLF folds to one newline",
			input:       "ab\r\ncd",
			expectChars: []rune{'a', 'b', '\n', 'c', 'd'},
			expectLines: []int{1, 1, 2, 2, 2},
			expectCols:  []int{2, 3, 1, 2, 3},
		},
		{
			name:        "CRCR folds to one newline",
			input:       "a\r\rb",
			expectChars: []rune{'a', '\n', 'b'},
			expectLines: []int{1, 2, 2},
			expectCols:  []int{2, 1, 2},
		},
		{
			name:        "lone CR at end of input",
			input:       "a\r",
			expectChars: []rune{'a', '\n'},
			expectLines: []int{1, 2},
			expectCols:  []int{2, 1},
		},
		{
			name:        "CR followed by ordinary char",
			input:       "a\rb",
			expectChars: []rune{'a', '\n', 'b'},
			expectLines: []int{1, 2, 2},
			expectCols:  []int{2, 1, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			r := NewReader(NewStringSource("test", tc.input))
			for i := range tc.expectChars {
				c, err := r.EatNext()
				if !assert.NoErrorf(err, "consume %d", i) {
					return
				}
				assert.Equalf(tc.expectChars[i], c, "char %d", i)
				assert.Equalf(tc.expectLines[i], r.Position().Line, "line after char %d", i)
				assert.Equalf(tc.expectCols[i], r.Position().Column, "column after char %d", i)
			}
			assert.False(r.HasMore())
		})
	}
}

func Test_Reader_offsetJumpsAcrossFoldedCRLF(t *testing.T) {
	assert := assert.New(t)

	r := NewReader(NewStringSource("test", "ab\r\ncd"))

	var offsets []int
	for r.HasMore() {
		_, err := r.EatNext()
		if !assert.NoError(err) {
			return
		}
		offsets = append(offsets, r.Position().Offset)
	}

	assert.Equal([]int{1, 2, 4, 5, 6}, offsets)
}

func Test_Reader_soleNewlinePosition(t *testing.T) {
	assert := assert.New(t)

	r := NewReader(NewStringSource("test", "\n"))
	_, err := r.EatNext()
	assert.NoError(err)
	assert.Equal(2, r.Position().Line)
	assert.Equal(1, r.Position().Column)
}

func Test_Reader_peekNeverMutates(t *testing.T) {
	assert := assert.New(t)

	r := NewReader(NewStringSource("test", "\r\n"))

	peeked, err := r.PeekNext()
	assert.NoError(err)
	assert.Equal('\n', peeked)
	assert.Equal(0, r.Position().Offset)

	c, err := r.EatNext()
	assert.NoError(err)
	assert.Equal('\n', c)
	assert.Equal(2, r.Position().Offset)
	assert.False(r.HasMore())
}

func Test_Reader_captureBuffer(t *testing.T) {
	assert := assert.New(t)

	r := NewReader(NewStringSource("test", "abc"))

	_, err := r.Buffer()
	assert.Error(err, "buffer not yet enabled")

	assert.NoError(r.EnableCapture())
	assert.Error(r.EnableCapture(), "double enable is an error")

	_, err = r.EatNext()
	assert.NoError(err)
	_, err = r.EatNext()
	assert.NoError(err)

	buf, err := r.Buffer()
	assert.NoError(err)
	assert.Equal("ab", buf)

	popped, err := r.PopCapture()
	assert.NoError(err)
	assert.Equal("ab", popped)

	afterPop, err := r.Buffer()
	assert.NoError(err)
	assert.Equal("", afterPop)

	_, err = r.EatNext()
	assert.NoError(err)
	assert.NoError(r.ClearCapture())
	cleared, err := r.Buffer()
	assert.NoError(err)
	assert.Equal("", cleared)

	assert.NoError(r.DisableCapture())
	assert.Error(r.DisableCapture(), "double disable is an error")
	assert.Error(r.ClearCapture())
}

func Test_StringSource_exhaustion(t *testing.T) {
	assert := assert.New(t)

	s := NewStringSource("test", "")
	assert.False(s.HasMore())

	_, err := s.PeekNext()
	assert.ErrorIs(err, ErrNoMoreChars)

	_, err = s.EatNext()
	assert.ErrorIs(err, ErrNoMoreChars)
}

func Test_NewAnonymousStringSource_generatesDistinctPaths(t *testing.T) {
	assert := assert.New(t)

	a := NewAnonymousStringSource("x")
	b := NewAnonymousStringSource("x")

	assert.NotEqual(a.Info(), b.Info())
}
