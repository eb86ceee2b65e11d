/*
Package domain contains the value types shared by every prompt in gameinput.

It defines the constraints a caller can attach to a prompt, the instruction block
shown before a game starts, and the events emitted while a prompt loop runs. The
package is kept pure: no I/O, no logging, no parsing of user text.

# Key Entities

  - Count: how many elements a multi-value answer must have (none, exact, or bounded).
  - Range: an inclusive lower/upper bound on an ordered scalar.
  - BoolMode: whether a yes/no question expects YES/NO tokens or a 1/0 answer.
  - Instructions: an optional help text gated behind a yes/no question.
  - PromptEvent: what observability hooks receive for each attempt.
*/
package domain
