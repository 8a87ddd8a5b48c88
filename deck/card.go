// Package deck builds playing cards through an abstract factory (36 and 52
// card decks) and a factory method (four aces, pairs). Every factory draws
// its cards from a Pool, so equal cards are one shared instance.
package deck

import (
	"fmt"
	"log/slog"
	"slices"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-patterns/flyweight"
)

var (
	// ErrUnknownSuit is returned for a suit not listed in Suits.
	ErrUnknownSuit = goerrors.New("deck: no such suit", goerrors.CategoryBadInput).
			WithTextCode("UNKNOWN_SUIT")

	// ErrUnknownValue is returned for a card value outside the 52 card deck.
	ErrUnknownValue = goerrors.New("deck: no such card value", goerrors.CategoryBadInput).
			WithTextCode("UNKNOWN_VALUE")

	// ErrUnknownDeck is returned by NewFactory for sizes other than 36 and 52.
	ErrUnknownDeck = goerrors.New("deck: unsupported deck size", goerrors.CategoryBadInput).
			WithTextCode("UNKNOWN_DECK")
)

// Suits in deck order.
var Suits = []string{"spades", "hearts", "diamonds", "clubs"}

var (
	values36 = []string{"6", "7", "8", "9", "10", "Ace", "King", "Queen", "Jack"}
	values52 = append([]string{"2", "3", "4", "5"}, values36...)
)

// Card is an immutable playing card.
type Card struct {
	Value string
	Suit  string
}

// NewCard returns a new card. It does not validate its arguments; use a
// Pool to get shared, validated cards.
func NewCard(value, suit string) *Card {
	return &Card{Value: value, Suit: suit}
}

func (c *Card) String() string {
	return c.Value + " of " + c.Suit
}

// ValidSuit reports whether s is one of Suits.
func ValidSuit(s string) bool {
	return slices.Contains(Suits, s)
}

// Pool hands out one *Card per (value, suit). It is safe for concurrent use.
type Pool struct {
	cards *flyweight.Factory[*Card]
}

// NewPool creates an empty card pool.
func NewPool(logger *slog.Logger) *Pool {
	return &Pool{
		cards: flyweight.New(
			flyweight.Of2(NewCard),
			flyweight.WithLogger(logger),
			flyweight.WithSizeHint(len(values52)*len(Suits)),
		),
	}
}

// Card returns the shared card for value and suit.
func (p *Pool) Card(value, suit string) (*Card, error) {
	if !ValidSuit(suit) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuit, suit)
	}
	if !slices.Contains(values52, value) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValue, value)
	}
	return p.cards.GetInstance(value, suit)
}

func (p *Pool) mustCard(value, suit string) *Card {
	c, err := p.Card(value, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of distinct cards handed out so far.
func (p *Pool) Len() int {
	return p.cards.Len()
}

// Stats returns the pool's cache counters.
func (p *Pool) Stats() flyweight.Stats {
	return p.cards.Stats()
}

func poolOrNew(p *Pool) *Pool {
	if p == nil {
		return NewPool(nil)
	}
	return p
}
