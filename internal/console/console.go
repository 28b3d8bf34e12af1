package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blackjack-console/internal/util"
	"blackjack-console/pkg/blackjack"
	"blackjack-console/pkg/deck"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Options configures a console game
type Options struct {
	// Practice plays rounds without wagering
	Practice bool

	// StartingBalance is the player's bankroll
	StartingBalance int

	// MinBet is the table minimum
	MinBet int

	// DefaultBet is wagered when the player answers the bet prompt with a blank line
	DefaultBet int

	// Seed makes the shuffle deterministic when non-zero
	Seed int64

	// PlayerName is shown in greetings; a random name is picked if empty
	PlayerName string
}

// Console runs blackjack over a line-based reader and writer.
// All input validation happens here; the game state machine only ever
// sees pre-validated actions.
type Console struct {
	reader  *bufio.Reader
	writer  io.Writer
	logger  logrus.FieldLogger
	session *blackjack.Session
	opts    Options
}

// New returns a console game ready to Run
func New(r io.Reader, w io.Writer, logger logrus.FieldLogger, opts Options) (*Console, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if opts.PlayerName == "" {
		opts.PlayerName = util.GetRandomName()
	}

	session, err := blackjack.NewSession(logger, blackjack.Options{
		StartingBalance: opts.StartingBalance,
		MinBet:          opts.MinBet,
		Seed:            opts.Seed,
	})
	if err != nil {
		return nil, err
	}

	return &Console{
		reader:  bufio.NewReader(r),
		writer:  w,
		logger:  logger,
		session: session,
		opts:    opts,
	}, nil
}

// Run plays hands until the player quits or runs out of money.
// Reaching end of input counts as quitting.
func (c *Console) Run() error {
	c.clearScreen()
	c.printf("🎰 Welcome to Blackjack, %s! 🎰\n", c.opts.PlayerName)
	c.printf("Get as close to 21 as you can without going over. Dealer stands on 17.\n")
	if !c.opts.Practice {
		c.printf("Blackjack pays 3:2. Starting balance: $%d.\n", c.session.Balance())
	}
	c.printf("\n")

	for {
		if !c.opts.Practice && c.session.GameOver() {
			if balance := c.session.Balance(); balance > 0 {
				c.printf("Your $%d balance can't cover the $%d minimum. Game over.\n", balance, c.session.MinBet())
			} else {
				c.printf("You're out of money! Game over.\n")
			}
			break
		}

		play, err := c.promptYesNo("Play a hand? (y/n): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		if !play {
			break
		}

		if err := c.playHand(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}

	c.printSummary()
	return nil
}

func (c *Console) playHand() error {
	var round *blackjack.Round
	var err error
	if c.opts.Practice {
		round, err = c.session.Deal()
	} else {
		round, err = c.promptBet()
	}

	if err != nil {
		return err
	}

	for round.State == blackjack.RoundStatePlayerTurn {
		c.printf("\n")
		c.renderHands(round)

		action, err := c.promptAction()
		if err != nil {
			return err
		}

		switch action {
		case blackjack.ActionHit:
			card, err := round.Hit()
			if err != nil {
				return err
			}
			c.printf("🃏 You drew: %s\n", card)
		case blackjack.ActionStand:
			if err := round.Stand(); err != nil {
				return err
			}
		}

		c.drainGameLog()
	}

	c.printf("\n")
	c.renderHands(round)
	c.printf("%s\n", outcomeBanner(round.Outcome))

	_, payout, err := c.session.Settle()
	if err != nil {
		return err
	}
	c.drainGameLog()

	if !c.opts.Practice {
		if payout > 0 {
			c.printf("You collect $%d.\n", payout)
		}
		c.printf("Balance: $%d.\n", c.session.Balance())
	}

	return nil
}

// promptBet re-prompts until the player places a valid wager
func (c *Console) promptBet() (*blackjack.Round, error) {
	for {
		c.printf("Place your bet (balance $%d, enter for $%d): $", c.session.Balance(), c.defaultBet())
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}

		amount := c.defaultBet()
		if line != "" {
			amount, err = strconv.Atoi(line)
			if err != nil {
				c.printf("❌ Please enter a whole-dollar amount.\n")
				continue
			}
		}

		round, err := c.session.PlaceBet(amount)
		switch {
		case errors.Is(err, blackjack.ErrInsufficientFunds):
			c.printf("❌ Insufficient funds!\n")
		case errors.Is(err, blackjack.ErrInvalidBet):
			c.printf("❌ Bets must be at least $%d.\n", c.session.MinBet())
		case err != nil:
			return nil, err
		default:
			c.drainGameLog()
			return round, nil
		}
	}
}

// defaultBet never suggests less than the table minimum or more than the
// player can cover. The game-over check guarantees the balance covers the
// minimum whenever a bet is prompted for.
func (c *Console) defaultBet() int {
	bet := c.opts.DefaultBet
	if bet < c.session.MinBet() {
		bet = c.session.MinBet()
	}

	if balance := c.session.Balance(); bet > balance {
		bet = balance
	}

	return bet
}

// promptAction re-prompts until the input parses to a hit or stand
func (c *Console) promptAction() (blackjack.Action, error) {
	for {
		c.printf("🎯 Hit or stand? (h/s): ")
		line, err := c.readLine()
		if err != nil {
			return -1, err
		}

		action, err := blackjack.ActionFromString(line)
		if err != nil {
			c.printf("❌ Please enter 'h' to hit or 's' to stand.\n")
			continue
		}

		return action, nil
	}
}

// promptYesNo re-prompts until the input is a yes or no token
func (c *Console) promptYesNo(prompt string) (bool, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		c.printf("❌ Please enter 'y' for yes or 'n' for no.\n")
	}
}

func (c *Console) renderHands(round *blackjack.Round) {
	c.printf("Your hand:   %s\n", formatHand(round.PlayerHand))
	c.printf("Dealer hand: %s\n", formatDealerHand(round))
}

func (c *Console) printSummary() {
	stats := c.session.Stats()
	c.printf("\n🎉 Thanks for playing, %s!\n", c.opts.PlayerName)
	c.printf("Hands played: %d (%d won, %d lost, %d pushed).\n",
		stats.HandsPlayed, stats.Wins, stats.Losses, stats.Pushes)
	if !c.opts.Practice {
		c.printf("Final balance: $%d.\n", stats.Balance)
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.writer, format, a...)
}

// drainGameLog forwards pending game events to the logger
func (c *Console) drainGameLog() {
	for {
		select {
		case batch := <-c.session.LogChan():
			for _, m := range batch {
				c.logger.WithFields(logrus.Fields{
					"uuid":  m.UUID,
					"cards": deck.CardsToString(m.Cards),
				}).Debug(m.Message)
			}
		default:
			return
		}
	}
}

// clearScreen emits an ANSI clear only when writing to a real terminal
func (c *Console) clearScreen() {
	if f, ok := c.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.printf("\033[H\033[2J")
	}
}
