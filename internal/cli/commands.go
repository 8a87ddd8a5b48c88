package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-patterns/deck"
	"github.com/goliatone/go-patterns/observer"
	"github.com/goliatone/go-patterns/pkg/di"
	"github.com/goliatone/go-patterns/strategy"
	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	var variant, op string

	cmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "Sort numbers with an interchangeable algorithm",
		Example: `  patterns sort 5 3 1 4
  patterns sort --strategy insertion --op reverse_sort 5 3 1 4
  patterns sort --op evens 5 3 1 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := make([]int, len(args))
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %q is not an integer", i, arg)
				}
				seq[i] = n
			}

			v, err := strategy.ParseVariant(variant)
			if err != nil {
				return err
			}

			ctx, err := di.NewContext(a.container, seq, v)
			if err != nil {
				return err
			}

			out, err := ctx.Call(op)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", ctx.Name(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&variant, "strategy", "s", string(strategy.Auto), "Algorithm: insertion, library or auto")
	cmd.Flags().StringVar(&op, "op", "sort", "Operation: sort, reverse_sort, evens or odds")
	return cmd
}

func newFlyweightCmd(a *app) *cobra.Command {
	var repeat int

	cmd := &cobra.Command{
		Use:   "flyweight VALUE SUIT",
		Short: "Request the same card repeatedly from the shared pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := atLeastOne("repeat", repeat); err != nil {
				return err
			}
			pool := a.container.CardPool()

			first, err := pool.Card(args[0], args[1])
			if err != nil {
				return err
			}
			shared := 1
			for i := 1; i < repeat; i++ {
				c, err := pool.Card(args[0], args[1])
				if err != nil {
					return err
				}
				if c == first {
					shared++
				}
			}

			stats := pool.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d of %d requests shared one instance (constructions=%d hits=%d)\n",
				first, shared, repeat, stats.Constructions, stats.Hits)
			return nil
		},
	}

	cmd.Flags().IntVarP(&repeat, "repeat", "n", 3, "Number of requests")
	return cmd
}

func newDeckCmd(a *app) *cobra.Command {
	var size int
	var suit string

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Deal a 36 or 52 card deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factory, err := a.container.Deck(size)
			if err != nil {
				return err
			}

			cards := factory.Deck()
			if suit != "" {
				if cards, err = factory.Suit(suit); err != nil {
					return err
				}
			}

			printCards(cmd, cards)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "Deck size, 36 or 52 (defaults to the configured size)")
	cmd.Flags().StringVar(&suit, "suit", "", "Only deal one suit")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "aces",
			Short: "Deal the four aces",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				printCards(cmd, a.container.Dealer().FourAces())
			},
		},
		&cobra.Command{
			Use:   "pair VALUE SUIT",
			Short: "Deal a pair for a card",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				card, err := a.container.CardPool().Card(args[0], args[1])
				if err != nil {
					return err
				}
				pair, err := a.container.Dealer().Pair(card)
				if err != nil {
					return err
				}
				printCards(cmd, pair[:])
				return nil
			},
		},
	)
	return cmd
}

func atLeastOne(flag string, n int) error {
	if n < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", flag, n)
	}
	return nil
}

func printCards(cmd *cobra.Command, cards []*deck.Card) {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d cards: %s\n", len(cards), strings.Join(names, ", "))
}

func newWeatherCmd(a *app) *cobra.Command {
	var clients int

	cmd := &cobra.Command{
		Use:   "weather TEMP...",
		Short: "Publish temperature readings to subscribed clients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := atLeastOne("clients", clients); err != nil {
				return err
			}
			board := a.container.WeatherBoard()
			subscribed := make([]*observer.Client, clients)
			for i := range subscribed {
				subscribed[i] = observer.NewClient()
				board.Attach(subscribed[i])
			}
			defer func() {
				for _, c := range subscribed {
					_ = board.Detach(c)
				}
			}()

			out := cmd.OutOrStdout()
			for _, arg := range args {
				temp, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("%q is not a temperature", arg)
				}
				board.SetTemperature(temp)

				for i, c := range subscribed {
					fmt.Fprintf(out, "client %d: %g\n", i+1, c.Temperature())
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&clients, "clients", "c", 2, "Number of subscribed clients")
	return cmd
}

func newBookCmd(a *app) *cobra.Command {
	var name string
	var price float64

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Clone a book prototype",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			original, ok := a.container.Catalog().New("alice")
			if !ok {
				return fmt.Errorf("prototype %q not registered", "alice")
			}

			clone := original.Clone()
			if name != "" {
				clone.Name = name
			}
			if cmd.Flags().Changed("price") {
				clone.Price = price
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "prototype:", original.Render())
			fmt.Fprintln(out, "clone:    ", clone.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Title for the clone")
	cmd.Flags().Float64Var(&price, "price", 0, "Price for the clone")
	return cmd
}
