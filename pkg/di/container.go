package di

import (
	"cmp"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-patterns/deck"
	"github.com/goliatone/go-patterns/flyweight"
	"github.com/goliatone/go-patterns/internal/logging"
	"github.com/goliatone/go-patterns/observer"
	"github.com/goliatone/go-patterns/prototype"
	"github.com/goliatone/go-patterns/singleton"
	"github.com/goliatone/go-patterns/strategy"
)

// Config aggregates the settings of every component the container builds.
type Config struct {
	LogLevel string          `json:"log_level" mapstructure:"log_level"`
	DeckSize int             `json:"deck_size" mapstructure:"deck_size"`
	Strategy strategy.Config `json:"strategy" mapstructure:"strategy"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		DeckSize: 52,
		Strategy: strategy.DefaultConfig(),
	}
}

// Validate checks the container settings, then the strategy settings.
func (c Config) Validate() error {
	levels := make([]any, len(logging.Levels))
	for i, l := range logging.Levels {
		levels[i] = l
	}

	err := validation.ValidateStruct(&c,
		validation.Field(&c.LogLevel, validation.Required, validation.In(levels...)),
		validation.Field(&c.DeckSize, validation.Required, validation.In(36, 52)),
	)
	if err != nil {
		return err
	}
	return c.Strategy.Validate()
}

// Container provides dependency injection for the pattern components.
// Shared instances are built lazily, once, and handed out on every call.
type Container struct {
	config Config
	logger *slog.Logger

	pool    *singleton.Singleton[*deck.Pool]
	board   *singleton.Singleton[*observer.WeatherBoard]
	catalog *singleton.Singleton[*prototype.Registry[*prototype.Book]]
}

// NewContainer validates config and creates a container. A nil logger
// discards output.
func NewContainer(config Config, logger *slog.Logger) (*Container, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger = logging.OrNop(logger)

	return &Container{
		config: config,
		logger: logger,
		pool: singleton.New(func() *deck.Pool {
			return deck.NewPool(logger.With("component", "deck"))
		}),
		board: singleton.New(observer.NewWeatherBoard),
		catalog: singleton.New(func() *prototype.Registry[*prototype.Book] {
			r := prototype.NewRegistry[*prototype.Book]()
			r.Register("alice", prototype.NewBook("Lewis Carroll", "Alice in Wonderland", 100))
			return r
		}),
	}, nil
}

// NewContainerWithDefaults creates a container using DefaultConfig.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(DefaultConfig(), nil)
}

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() Config {
	return c.config
}

// Logger returns the container logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// CardPool returns the card pool shared by every deck and dealer.
func (c *Container) CardPool() *deck.Pool {
	return c.pool.Get()
}

// Deck returns a card factory of the given size over the shared pool.
// A size of 0 uses the configured deck size.
func (c *Container) Deck(size int) (deck.CardFactory, error) {
	if size == 0 {
		size = c.config.DeckSize
	}
	return deck.NewFactory(size, c.CardPool())
}

// Dealer returns a dealer over the shared pool.
func (c *Container) Dealer() *deck.Dealer {
	return deck.NewDealer(c.CardPool())
}

// WeatherBoard returns the container's weather board.
func (c *Container) WeatherBoard() *observer.WeatherBoard {
	return c.board.Get()
}

// Catalog returns the book prototypes.
func (c *Container) Catalog() *prototype.Registry[*prototype.Book] {
	return c.catalog.Get()
}

// NewContext creates a strategy context using the container's threshold and
// logger. Go methods cannot have type parameters, so this is a function:
//
//	ctx, err := di.NewContext(container, []int{3, 1, 2}, strategy.Auto)
func NewContext[T cmp.Ordered](c *Container, seq []T, v strategy.Variant) (*strategy.Context[T], error) {
	return strategy.NewContext(seq, v,
		strategy.WithConfig(c.config.Strategy),
		strategy.WithLogger(c.logger.With("component", "strategy")),
	)
}

// NewFlyweight creates a flyweight factory that logs through the container.
func NewFlyweight[V any](c *Container, ctor flyweight.Constructor[V], opts ...flyweight.Option) *flyweight.Factory[V] {
	opts = append([]flyweight.Option{flyweight.WithLogger(c.logger.With("component", "flyweight"))}, opts...)
	return flyweight.New(ctor, opts...)
}
