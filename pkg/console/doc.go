/*
Package console implements the line-oriented terminal boundary used by every prompt.

A Console reads one line at a time from an io.Reader and writes one line at a time to
an io.Writer. Each line read is sanitized (size limit, UTF-8, control characters) and
normalized: surrounding whitespace is trimmed and the text is uppercased, so callers
can match answers against fixed tokens such as "YES".

# Usage

	c := console.New(os.Stdin, os.Stdout)
	c.Println("WHAT IS YOUR NAME")
	name, err := c.ReadLine(ctx)
*/
package console
