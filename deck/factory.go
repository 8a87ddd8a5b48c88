package deck

import "fmt"

// CardFactory creates a family of cards.
type CardFactory interface {
	// Deck returns every card, suit by suit.
	Deck() []*Card
	// Suit returns every card of one suit.
	Suit(suit string) ([]*Card, error)
	// Size is the number of cards in Deck.
	Size() int
}

type deck struct {
	values []string
	pool   *Pool
}

func (d deck) Deck() []*Card {
	out := make([]*Card, 0, len(Suits)*len(d.values))
	for _, s := range Suits {
		for _, v := range d.values {
			out = append(out, d.pool.mustCard(v, s))
		}
	}
	return out
}

func (d deck) Suit(suit string) ([]*Card, error) {
	if !ValidSuit(suit) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuit, suit)
	}

	out := make([]*Card, 0, len(d.values))
	for _, v := range d.values {
		out = append(out, d.pool.mustCard(v, suit))
	}
	return out, nil
}

func (d deck) Size() int {
	return len(Suits) * len(d.values)
}

// Deck36 deals the short deck, six through ace.
type Deck36 struct{ deck }

// NewDeck36 creates a 36 card factory. A nil pool gets a private one.
func NewDeck36(pool *Pool) *Deck36 {
	return &Deck36{deck{values: values36, pool: poolOrNew(pool)}}
}

// Deck52 deals the full deck.
type Deck52 struct{ deck }

// NewDeck52 creates a 52 card factory. A nil pool gets a private one.
func NewDeck52(pool *Pool) *Deck52 {
	return &Deck52{deck{values: values52, pool: poolOrNew(pool)}}
}

// NewFactory picks the factory for a deck size, 36 or 52.
func NewFactory(size int, pool *Pool) (CardFactory, error) {
	switch size {
	case 36:
		return NewDeck36(pool), nil
	case 52:
		return NewDeck52(pool), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDeck, size)
	}
}
