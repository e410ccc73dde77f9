package intent

import "errors"

var (
	ErrLexiconRead    = errors.New("read lexicon")
	ErrLexiconParse   = errors.New("parse lexicon")
	ErrInvalidLexicon = errors.New("invalid lexicon")
)
