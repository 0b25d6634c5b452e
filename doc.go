// Package guard provides small operations that validate their inputs before
// computing a result.
//
// Every operation either returns a correct value or an error carrying exactly
// one code from the errors package taxonomy. Nothing is retried, recovered, or
// defaulted: a violated precondition is reported where it is detected.
//
// # Basic Usage
//
//	g := guard.New()
//
//	n, err := g.ParseInt("11")
//	if err != nil {
//	    switch errors.GetCode(err) {
//	    case errors.CodeFormat:
//	        // not a number
//	    case errors.CodeOverflow:
//	        // does not fit in an int
//	    }
//	}
//
// Absent inputs are passed with the optional package rather than as nil:
//
//	sum, err := g.SumCollectionElements(optional.Of([]int{1, 2, 3, 4}), 3) // 10
//	_, err = g.SumCollectionElements(optional.None[[]int](), 3)           // NULL_INPUT
//
// Failures can also be matched with the package sentinels:
//
//	if stderrors.Is(err, guard.ErrIndexOutOfRange) {
//	    // ...
//	}
//
// # Configuration
//
// A Guard is configured with functional options:
//
//	g := guard.New(
//	    guard.WithLogger(slog.Default()),
//	    guard.WithSecureMessage("Welcome back."),
//	)
//
// When a logger is set, each precondition violation is written as a Debug
// record with the error code and context. A Guard holds no mutable state and
// is safe for concurrent use.
package guard
