package jqapi

import "fmt"

// Match returns the first expanded signature of e that accepts args: the
// signature must take that many arguments and every position must accept the
// argument's kind. Values past the last argument of a repeating signature are
// checked against that argument.
// If none does, the error is a *SignatureError wrapping ErrNoMatchingSignature.
func Match(e *Entry, args []Kind) (Signature, error) {
	sigs := e.Expanded()
	arityFound := false
	for _, sig := range sigs {
		if !sig.Takes(len(args)) {
			continue
		}
		arityFound = true
		if accepts(sig, args) {
			return sig, nil
		}
	}

	reason := "no signature accepts these argument kinds"
	if !arityFound {
		reason = fmt.Sprintf("no signature takes %d argument(s)", len(args))
	}
	return Signature{}, &SignatureError{Method: e.Name, Args: append([]Kind(nil), args...), Reason: reason}
}

func accepts(sig Signature, args []Kind) bool {
	last := len(sig.Args) - 1
	for i, k := range args {
		a := sig.Args[min(i, last)]
		if !a.Accepts(k) {
			return false
		}
	}
	return true
}
