package gameinput

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the released version of gameinput.
var Version = strings.TrimSpace(rawVersion)
