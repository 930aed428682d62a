package ratecard

import "strings"

// currencyFieldAliases are the field names observed to carry a
// currency code across rate card deployments, in probe order.
var currencyFieldAliases = []string{"currency", "currency_code", "ccy", "code", "symbol"}

// DefaultMaxDepth bounds the document walk. Real rate cards sit
// two or three levels deep; anything past this is pathological.
const DefaultMaxDepth = 32

// Locate finds the sub-document describing the given currency.
// Pre-order depth-first walk: lists in index order, objects in
// key insertion order. A node matches by content when one of
// the known currency fields equals the code case-insensitively,
// or by key when the object has the upper-cased code as a key
// whose value is itself an object. First match wins; nil when
// nothing matches.
//
// The walk tracks visited composite nodes by identity and bounds
// its depth, so it terminates on cyclic or degenerate inputs.
func Locate(doc *Value, currency string) *Value {
	return LocateDepth(doc, currency, DefaultMaxDepth)
}

// LocateDepth is Locate with a caller-chosen depth bound.
func LocateDepth(doc *Value, currency string, maxDepth int) *Value {
	w := locator{
		target:   strings.ToUpper(strings.TrimSpace(currency)),
		maxDepth: maxDepth,
		seen:     make(map[*Value]struct{}),
	}

	return w.visit(doc, 0)
}

type locator struct {
	target   string
	maxDepth int
	seen     map[*Value]struct{}
}

func (l *locator) visit(v *Value, depth int) *Value {
	if v == nil || l.target == "" || depth > l.maxDepth {
		return nil
	}

	if v.Kind() != Object && v.Kind() != Array {
		return nil
	}

	if _, visited := l.seen[v]; visited {
		return nil
	}
	l.seen[v] = struct{}{}

	if v.Kind() == Array {
		for _, item := range v.Items() {
			if hit := l.visit(item, depth+1); hit != nil {
				return hit
			}
		}

		return nil
	}

	// content match: the first present alias with scalar text decides
	for _, alias := range currencyFieldAliases {
		f, ok := v.Field(alias)
		if !ok {
			continue
		}

		code := strings.ToUpper(strings.TrimSpace(f.Text()))
		if code == "" {
			continue
		}

		if code == l.target {
			return v
		}

		break
	}

	// key match: map keyed by upper-cased currency code
	if f, ok := v.Field(l.target); ok && f.Kind() == Object {
		return f
	}

	for _, key := range v.Keys() {
		child, _ := v.Field(key)
		if hit := l.visit(child, depth+1); hit != nil {
			return hit
		}
	}

	return nil
}
