package gameinput

import "github.com/aretw0/gameinput/internal/presentation/tui"

// Intro prints the classic game header with title centered by tabs.
func (p *Prompter) Intro(title string) {
	p.console.Println(tui.Intro(title))
}
