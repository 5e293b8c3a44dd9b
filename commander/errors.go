package commander

import "errors"

var (
	errNotEligible = errors.New("not commander-eligible")
	errBadStats    = errors.New("invalid power/toughness/mana value")
	errBadIdentity = errors.New("color identity not expressible as a canonical name")
)
