package lisp

import "io"

// Config is a function that configures an interpreter.
type Config func(ip *Interp)

// WithPrimitives returns a Config that makes the interpreter resolve
// primitive names against table instead of DefaultPrimitives.
func WithPrimitives(table PrimTable) Config {
	return func(ip *Interp) {
		ip.Prims = table
	}
}

// WithStderr returns a Config that makes the interpreter write debugging
// output to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(ip *Interp) {
		ip.Stderr = w
	}
}

// WithReader returns a Config that makes the interpreter use r to parse
// source streams.  There is no default Reader for an interpreter.
func WithReader(r Reader) Config {
	return func(ip *Interp) {
		ip.Reader = r
	}
}
