package jqapi

// Expand returns every arity variant of sig. Each optional argument may be
// left out on its own, so "[duration] [, complete]" yields (), (duration),
// (complete) and (duration, complete). Required arguments are always kept
// and the documented order is preserved. Variants come shortest first; among
// variants of one length, those keeping earlier arguments come first.
// Variants with identical argument types are reported once.
func Expand(sig Signature) []Signature {
	var optional []int
	for i, a := range sig.Args {
		if a.Optional {
			optional = append(optional, i)
		}
	}

	out := make([]Signature, 0, 1<<len(optional))
	for keep := 0; keep <= len(optional); keep++ {
		for _, kept := range combinations(optional, keep) {
			v := Signature{Added: sig.Added, Args: project(sig.Args, kept)}
			if !containsSignature(out, v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// combinations returns the k-element subsets of idx in lexicographic order.
func combinations(idx []int, k int) [][]int {
	if k == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for i := 0; i+k <= len(idx); i++ {
		for _, rest := range combinations(idx[i+1:], k-1) {
			out = append(out, append([]int{idx[i]}, rest...))
		}
	}
	return out
}

// project copies the required arguments of args and the optional ones whose
// index is in kept.
func project(args []Argument, kept []int) []Argument {
	keep := make(map[int]bool, len(kept))
	for _, i := range kept {
		keep[i] = true
	}
	out := make([]Argument, 0, len(args))
	for i, a := range args {
		if !a.Optional || keep[i] {
			out = append(out, a)
		}
	}
	return out
}

func expandAll(sigs []Signature) []Signature {
	var out []Signature
	for _, sig := range sigs {
		for _, v := range Expand(sig) {
			if !containsSignature(out, v) {
				out = append(out, v)
			}
		}
	}
	if out == nil {
		out = []Signature{}
	}
	return out
}

func containsSignature(list []Signature, s Signature) bool {
	for _, o := range list {
		if o.sameTypes(s) {
			return true
		}
	}
	return false
}
