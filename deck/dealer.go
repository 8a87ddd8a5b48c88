package deck

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// ErrNilCard is returned by Dealer.Pair when given a nil card.
var ErrNilCard = goerrors.New("deck: nil card", goerrors.CategoryBadInput).
	WithTextCode("NIL_CARD")

// Dealer creates card groupings without callers naming values or suits.
type Dealer struct {
	pool *Pool
}

// NewDealer creates a dealer over pool. A nil pool gets a private one.
func NewDealer(pool *Pool) *Dealer {
	return &Dealer{pool: poolOrNew(pool)}
}

// FourAces returns the ace of every suit in suit order.
func (d *Dealer) FourAces() []*Card {
	out := make([]*Card, 0, len(Suits))
	for _, s := range Suits {
		out = append(out, d.pool.mustCard("Ace", s))
	}
	return out
}

// Pair returns card with a card of the same value in the first other suit.
func (d *Dealer) Pair(card *Card) ([2]*Card, error) {
	if card == nil {
		return [2]*Card{}, ErrNilCard
	}
	if !ValidSuit(card.Suit) {
		return [2]*Card{}, fmt.Errorf("%w: %q", ErrUnknownSuit, card.Suit)
	}

	var other string
	for _, s := range Suits {
		if s != card.Suit {
			other = s
			break
		}
	}

	match, err := d.pool.Card(card.Value, other)
	if err != nil {
		return [2]*Card{}, err
	}
	return [2]*Card{card, match}, nil
}
