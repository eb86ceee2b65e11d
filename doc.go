/*
Package gameinput collects and validates player input for text-based games.

Every prompt is a small loop: show the message, read one line, normalize it (trim and
uppercase), validate it, and either return the accepted value or print one corrective
line and ask again. Callers never see a validation failure; the only errors a prompt
returns are the ones no retry can fix, such as a closed input stream, a cancelled
context, or a range that no answer could ever satisfy.

# Prompt Shapes

  - String: any line, returned as is.
  - Bool: YES/Y/NO/N, or 1/0 when asked in OneZero mode.
  - Number, NumberRange: a single value of any integer or float type.
  - MultiString, MultiNumber: a line split on a separator, with optional count and
    per-element range constraints.
  - Value, ValueRange: the same loop for any ordered type with a caller-supplied parser.

# Usage

	p := gameinput.New()

	p.Intro("HAMURABI")
	_ = p.ShowInstructions(ctx, domain.NewInstructions(true, domain.YesNo,
		"DO YOU WANT INSTRUCTIONS?", "TRY YOUR HAND AT GOVERNING ANCIENT SUMERIA"))

	acres, err := gameinput.NumberRange(ctx, p, "HOW MANY ACRES DO YOU WISH TO BUY?",
		domain.Between(0, 1000))
	if err != nil {
		log.Fatal(err)
	}

Games that want the terse style of the classic listings can use the stdin shortcuts
(PromptString, PromptBool, PromptNumber, ...), which treat any error as fatal.
*/
package gameinput
