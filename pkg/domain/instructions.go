package domain

// Instructions describes help text that is shown only if the player asks for it.
//
// A single-line block prints Body[0] as one line. A multiline block prints each
// element of Body as its own line, in order.
type Instructions struct {
	Ask       bool     `yaml:"ask" mapstructure:"ask"`
	Mode      BoolMode `yaml:"mode" mapstructure:"mode"`
	Question  string   `yaml:"question" mapstructure:"question"`
	Body      []string `yaml:"body" mapstructure:"body"`
	Multiline bool     `yaml:"multiline" mapstructure:"multiline"`
}

// NewInstructions builds a single-line instruction block.
func NewInstructions(ask bool, mode BoolMode, question, body string) Instructions {
	return Instructions{
		Ask:      ask,
		Mode:     mode,
		Question: question,
		Body:     []string{body},
	}
}

// NewMultilineInstructions builds a block printed one line per element.
func NewMultilineInstructions(ask bool, mode BoolMode, question string, lines []string) Instructions {
	body := make([]string, len(lines))
	copy(body, lines)
	return Instructions{
		Ask:       ask,
		Mode:      mode,
		Question:  question,
		Body:      body,
		Multiline: true,
	}
}

// Lines returns the lines that are printed when the player accepts.
func (i Instructions) Lines() []string {
	if i.Multiline {
		return i.Body
	}
	if len(i.Body) == 0 {
		return []string{""}
	}
	return i.Body[:1]
}
