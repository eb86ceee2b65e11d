package cli

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/aretw0/gameinput"
	"github.com/aretw0/gameinput/pkg/domain"
)

const demoTitle = "GUESS"

var demoInstructions = domain.NewMultilineInstructions(true, domain.YesNo,
	"WOULD YOU LIKE THE INSTRUCTIONS?",
	[]string{
		"I'M THINKING OF A NUMBER BETWEEN 1 AND 100.",
		"TRY TO GUESS IT. I'LL TELL YOU IF YOU ARE",
		"TOO HIGH OR TOO LOW.",
	},
)

// RunDemo plays a number guessing game until the player declines another round.
func RunDemo(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	s, err := newSession(opts, opts.Out)
	if err != nil {
		return err
	}
	defer s.close()

	pick := func() int { return rand.IntN(100) + 1 }
	return handleExecutionError(PlayDemo(ctx, s.prompter, pick))
}

// PlayDemo runs the guessing game on p, drawing secrets from pick.
func PlayDemo(ctx context.Context, p *gameinput.Prompter, pick func() int) error {
	p.Intro(demoTitle)
	if err := p.ShowInstructions(ctx, demoInstructions); err != nil {
		return err
	}

	for {
		secret := pick()
		for tries := 1; ; tries++ {
			guess, err := gameinput.NumberRange(ctx, p, "YOUR GUESS?", domain.Between(1, 100))
			if err != nil {
				return err
			}
			if guess == secret {
				p.Console().Printf("YOU GOT IT IN %d TRIES!", tries)
				break
			}
			p.Console().Println(hint(guess, secret))
		}

		again, err := p.Bool(ctx, "PLAY AGAIN?", domain.YesNo)
		if err != nil {
			return err
		}
		if !again {
			p.Console().Println("SO LONG.")
			return nil
		}
	}
}

func hint(guess, secret int) string {
	if guess > secret {
		return fmt.Sprintf("%d IS TOO HIGH.", guess)
	}
	return fmt.Sprintf("%d IS TOO LOW.", guess)
}
