package corpus

import "errors"

// Fatal CorpusError kinds.
var (
	ErrMissingCorpus  = errors.New("corpus: card table file not found")
	ErrSchemaMismatch = errors.New("corpus: required column missing")
	ErrEmptyCorpus    = errors.New("corpus: card table has no rows")
	ErrDuplicateName  = errors.New("corpus: duplicate card name")
	ErrInvalidRow     = errors.New("corpus: row fails validation")
)

// RequiredColumns is the schema contract for the card table CSV.
var RequiredColumns = []string{
	"name", "faceName", "edhrecRank", "colorIdentity", "colors",
	"manaCost", "manaValue", "type", "creatureTypes", "text",
	"power", "toughness", "keywords", "themeTags", "layout", "side",
}
