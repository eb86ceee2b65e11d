package gameinput

import (
	"context"

	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/aretw0/gameinput/pkg/scalar"
)

// String shows msg and returns the next normalized line, whatever it is.
func (p *Prompter) String(ctx context.Context, msg string) (string, error) {
	var answer string
	err := p.loop(ctx, domain.KindString, msg, func(line string) *rejection {
		answer = line
		return nil
	})
	return answer, err
}

// Bool asks a yes/no question until it gets a recognizable answer.
//
// In YesNo mode YES and Y mean true, NO and N mean false. In OneZero mode the
// line must parse as a small unsigned number and be exactly 1 or 0.
func (p *Prompter) Bool(ctx context.Context, msg string, mode domain.BoolMode) (bool, error) {
	var answer bool
	err := p.loop(ctx, domain.KindBool, msg, func(line string) *rejection {
		if mode == domain.OneZero {
			n, err := scalar.Parse[uint8](line)
			if err != nil {
				return reject(domain.ReasonParse, MsgNumberOneOrZero)
			}
			switch n {
			case 1:
				answer = true
				return nil
			case 0:
				answer = false
				return nil
			}
			return reject(domain.ReasonToken, MsgOneOrZero)
		}

		switch line {
		case "YES", "Y":
			answer = true
			return nil
		case "NO", "N":
			answer = false
			return nil
		}
		return reject(domain.ReasonToken, MsgYesOrNo)
	})
	return answer, err
}
