package gameinput

import (
	"context"

	"github.com/aretw0/gameinput/pkg/domain"
)

// ShowInstructions asks ins.Question (in ins.Mode) when ins.Ask is set and prints
// the body if the answer is yes. Without Ask nothing is shown at all.
func (p *Prompter) ShowInstructions(ctx context.Context, ins domain.Instructions) error {
	if !ins.Ask {
		return nil
	}

	show, err := p.Bool(ctx, ins.Question, ins.Mode)
	if err != nil {
		return err
	}
	if !show {
		return nil
	}

	p.console.Render(ins.Lines())
	return nil
}
