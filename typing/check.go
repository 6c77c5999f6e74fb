package typing

// Isinstance reports whether the value v conforms to the descriptor t.
// It is a pure function of its two inputs and never fails: a value
// whose shape is not covered by t simply yields false.
//
// Primitive kinds are mutually exclusive: an int value does not satisfy
// Float, and a float64 value does not satisfy Int.
func Isinstance(v any, t Type) bool {
	switch t := t.(type) {
	case Base:
		switch t {
		case Any:
			return true
		case Bool:
			_, ok := v.(bool)
			return ok
		case Int:
			switch v.(type) {
			case int, int64:
				return true
			}
			return false
		case Float:
			_, ok := v.(float64)
			return ok
		case String:
			_, ok := v.(string)
			return ok
		}
	case List:
		vals, ok := v.([]any)
		if !ok {
			return false
		}
		if t.Elem == nil {
			return true
		}
		for _, e := range vals {
			if !Isinstance(e, t.Elem) {
				return false
			}
		}
		return true
	case Tuple:
		vals, ok := v.(Tup)
		if !ok {
			return false
		}
		return matchElems(t.Elems, vals)
	case Union:
		for _, m := range t.Members {
			if Isinstance(v, m) {
				return true
			}
		}
		return false
	}
	return false
}

// matchElems decides whether vals can be partitioned left to right so
// that every element is satisfied in order. feasible[i][j] answers
// whether elems[i:] can consume vals[j:]; a splat extends itself one
// value at a time instead of backtracking, so the cost is bounded by
// O(len(elems) * len(vals)) even with several splats.
func matchElems(elems []Element, vals Tup) bool {
	n, m := len(elems), len(vals)
	feasible := make([][]bool, n+1)
	for i := range feasible {
		feasible[i] = make([]bool, m+1)
	}
	feasible[n][m] = true
	for i := n - 1; i >= 0; i-- {
		e := elems[i]
		for j := m; j >= 0; j-- {
			if e.Splat {
				feasible[i][j] = feasible[i+1][j] ||
					j < m && Isinstance(vals[j], e.Type) && feasible[i][j+1]
			} else {
				feasible[i][j] = j < m && Isinstance(vals[j], e.Type) && feasible[i+1][j+1]
			}
		}
	}
	return feasible[0][0]
}
