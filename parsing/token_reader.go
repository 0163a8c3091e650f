package parsing

import "github.com/dekarrin/langtools/token"

// defaultMaxRecursionDepth bounds LazyParser recursion when a TokenReader is
// built with NewTokenReader instead of NewTokenReaderWithMaxDepth.
const defaultMaxRecursionDepth = 1000

// TokenIterator is satisfied by anything that can produce a stream of
// tokens one at a time, in particular *lexing.Driver[K]. Its Next returns a
// non-nil error once the stream is exhausted or has failed; TokenReader
// treats any such error as "no more tokens" and preserves it for inspection
// via Err.
type TokenIterator[K any] interface {
	Next() (token.Token[K], error)
}

// TokenReader is a lazy, buffered cursor over a TokenIterator. It caches
// every token it has ever pulled from the upstream iterator, so that Seek
// can move its cursor backward to re-read tokens already seen; this is what
// lets ChoiceParser backtrack. Seeking forward past the cursor's current
// position is not supported, since nothing has decided yet what comes next.
type TokenReader[K any] struct {
	upstream TokenIterator[K]
	buf      []token.Token[K]
	pos      int
	err      error

	depth    int
	maxDepth int
}

// NewTokenReader wraps upstream with the default recursion-depth limit.
func NewTokenReader[K any](upstream TokenIterator[K]) *TokenReader[K] {
	return NewTokenReaderWithMaxDepth(upstream, defaultMaxRecursionDepth)
}

// NewTokenReaderWithMaxDepth wraps upstream, bounding LazyParser recursion
// at maxDepth. See langcfg.Config.MaxParseDepth.
func NewTokenReaderWithMaxDepth[K any](upstream TokenIterator[K], maxDepth int) *TokenReader[K] {
	return &TokenReader[K]{upstream: upstream, maxDepth: maxDepth}
}

// Offset returns the reader's current cursor position, suitable for a later
// Seek call.
func (r *TokenReader[K]) Offset() int {
	return r.pos
}

// Seek moves the cursor back to a previously visited offset. It is an error
// to seek to a position ahead of the cursor's current offset.
func (r *TokenReader[K]) Seek(offset int) error {
	if offset < 0 || offset > r.pos {
		return &invalidSeekError{offset: offset, cursor: r.pos}
	}
	r.pos = offset
	return nil
}

// HasMore reports whether a subsequent PeekNext/EatNext would succeed.
func (r *TokenReader[K]) HasMore() bool {
	_, err := r.PeekNext()
	return err == nil
}

// PeekNext returns the token at the cursor without advancing it.
func (r *TokenReader[K]) PeekNext() (token.Token[K], error) {
	if r.pos < len(r.buf) {
		return r.buf[r.pos], nil
	}
	if r.err != nil {
		return token.Token[K]{}, r.err
	}

	tok, err := r.upstream.Next()
	if err != nil {
		r.err = err
		return token.Token[K]{}, err
	}
	r.buf = append(r.buf, tok)
	return tok, nil
}

// EatNext returns the token at the cursor and advances past it.
func (r *TokenReader[K]) EatNext() (token.Token[K], error) {
	tok, err := r.PeekNext()
	if err != nil {
		return token.Token[K]{}, err
	}
	r.pos++
	return tok, nil
}

// Err returns the error (if any) returned by the most recent failed pull
// from the upstream iterator. It is the caller's responsibility to decide,
// e.g. via errors.Is against the iterator's own end-of-stream sentinel,
// whether that error represents a clean end of input or something fatal.
func (r *TokenReader[K]) Err() error {
	return r.err
}

func (r *TokenReader[K]) enterRecursion() error {
	r.depth++
	if r.depth > r.maxDepth {
		return &RecursionLimitExceededError{Limit: r.maxDepth}
	}
	return nil
}

func (r *TokenReader[K]) exitRecursion() {
	r.depth--
}
