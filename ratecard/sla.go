package ratecard

import "strings"

// slaAliases are the keys observed to carry a delivery estimate,
// in probe order. Checked at the document top level first, then
// one level down under `data`.
var slaAliases = []string{"tat", "delivery_tat", "deliveryTat", "delivery_eta", "deliveryEta", "sla"}

// DeliverySLA extracts a human-readable delivery estimate from
// the whole document. A non-empty string candidate is returned
// trimmed, a number is returned as its literal text and an
// object yields its text or message field. Absence is a
// legitimate outcome; substituting fallback wording is the
// caller's policy, not this package's.
func DeliverySLA(doc *Value) (string, bool) {
	if doc == nil || doc.Kind() != Object {
		return "", false
	}

	if s, ok := probeSLA(doc); ok {
		return s, true
	}

	if data, ok := doc.Field("data"); ok && data.Kind() == Object {
		return probeSLA(data)
	}

	return "", false
}

func probeSLA(node *Value) (string, bool) {
	for _, alias := range slaAliases {
		f, ok := node.Field(alias)
		if !ok {
			continue
		}

		if s, ok := slaText(f); ok {
			return s, true
		}
	}

	return "", false
}

func slaText(v *Value) (string, bool) {
	switch v.Kind() {
	case String:
		if s := strings.TrimSpace(v.Text()); s != "" {
			return s, true
		}

	case Number:
		return v.Text(), true

	case Object:
		for _, key := range []string{"text", "message"} {
			f, ok := v.Field(key)
			if !ok {
				continue
			}

			if s := strings.TrimSpace(f.Text()); s != "" {
				return s, true
			}
		}
	}

	return "", false
}
