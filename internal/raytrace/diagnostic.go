package raytrace

import "log"

// Logf receives ray-tracing diagnostics. The integrator uses it to
// report a skipped Step-1 seed (see integrate in integrator.go); a
// caller embedding this package, such as cmd/raytrace, may swap it to
// route its own diagnostic output through the same sink instead of
// calling log.Printf directly. It defaults to log.Printf.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogf replaces the package-level diagnostic logger. Passing nil
// installs a no-op logger, muting ray-trace diagnostics entirely.
func SetLogf(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
