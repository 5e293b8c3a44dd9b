package compose

import (
	"context"

	"github.com/commanderforge/commanderforge/corpus"
	"github.com/commanderforge/commanderforge/priceapi"
)

// gateApproves consults the price gate for card, accumulating its price
// into the running deck total on approval. A card with no ceiling
// configured, or an unknown price, always clears; a card whose price
// lookup fails is skipped, with the lookup error recorded as a warning.
func gateApproves(s *builderState, card *corpus.Card) bool {
	if s.gate.IsUnlimited() {
		return true
	}
	price, err := s.gate.PriceOf(context.Background(), card.Name)
	if err != nil {
		s.addWarning(err)
		return false
	}
	if err := s.gate.CheckCard(card.Name, price); err != nil {
		s.addWarning(err)
		return false
	}
	if s.gate.WouldExceedDeck(price) {
		s.addWarning(priceapi.ErrPriceLimit)
		return false
	}
	s.gate.Accumulate(price)
	return true
}
