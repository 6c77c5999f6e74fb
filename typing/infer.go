package typing

// TypeOf computes the narrowest descriptor matching v, so that
// Isinstance(v, TypeOf(v)) always holds. It never fails: a value whose
// shape is not recognized infers Any.
//
// Inference always produces the most literal shape; splat elements only
// arise from parsed text, never from TypeOf.
func TypeOf(v any) Type {
	switch v := v.(type) {
	case bool:
		return Bool
	case int, int64:
		return Int
	case float64:
		return Float
	case string:
		return String
	case Tup:
		elems := make([]Element, len(v))
		for i, e := range v {
			elems[i] = Element{Type: TypeOf(e)}
		}
		return Tuple{Elems: elems}
	case []any:
		if len(v) == 0 {
			return List{}
		}
		members := make([]Type, 0, len(v))
		for _, e := range v {
			members = append(members, TypeOf(e))
		}
		return List{Elem: MakeUnion(members...)}
	}
	return Any
}
