package arfix

import (
	"golang.org/x/text/transform"
)

// Transformer applies [Fix] as a golang.org/x/text/transform.Transformer.
//
// Reversal needs to see the complete text, so the transformer consumes nothing
// until it is called with atEOF set. It is meant for single messages, not for
// unbounded streams.
type Transformer struct {
	transform.NopResetter
	opts Options
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer creates a transformer which fixes its input with opts.
//
//	out, _, err := transform.String(arfix.NewTransformer(opts), msg)
func NewTransformer(opts Options) *Transformer {
	return &Transformer{opts: opts}
}

// Transform is part of interface transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	out := Fix(string(src), t.opts)
	if len(dst) < len(out) {
		return 0, 0, transform.ErrShortDst
	}
	return copy(dst, out), len(src), nil
}
