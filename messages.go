package gameinput

import "github.com/aretw0/gameinput/internal/validator"

// Diagnostics printed when an attempt is rejected.
const (
	MsgYesOrNo         = "ENTER (Y)ES OR (N)O"
	MsgOneOrZero       = "ENTER 1 (YES) OR 0 (NO)"
	MsgNumberOneOrZero = "ENTER A NUMBER (1 OR 0)"
	MsgValidNumber     = "ENTER A VALID NUMBER"
	MsgOnlyNumbers     = "ENTER ONLY NUMBERS"
	MsgInputTooLong    = "INPUT TOO LONG, TRY AGAIN"
	MsgInputUnreadable = "INPUT NOT READABLE, TRY AGAIN"

	MsgExactCount  = validator.MsgExactCount
	MsgCountRange  = validator.MsgCountRange
	MsgNumberRange = validator.MsgNumberRange
	MsgElemRange   = validator.MsgElemRange
)
