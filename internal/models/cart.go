package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Portion is the serving size of a cart entry.
type Portion string

const (
	PortionFull Portion = "full"
	PortionHalf Portion = "half"
)

// ParsePortion validates a portion name.
func ParsePortion(s string) (Portion, error) {
	switch Portion(strings.ToLower(strings.TrimSpace(s))) {
	case PortionFull:
		return PortionFull, nil
	case PortionHalf:
		return PortionHalf, nil
	default:
		return "", fmt.Errorf("unknown portion: %q", s)
	}
}

// Initial returns the upper-cased first letter used on printed receipts ("F" or "H").
func (p Portion) Initial() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[0]))
}

// CartKey identifies one cart counter. Full and half portions of the same
// item are independent keys.
type CartKey struct {
	ItemID  string
	Portion Portion
}

// String renders the key as "<id>_<portion>", e.g. "1_full".
func (k CartKey) String() string {
	return k.ItemID + "_" + string(k.Portion)
}

// ParseCartKey parses the "<id>_<portion>" form. The portion is taken from
// the last underscore so item IDs may themselves contain underscores.
func ParseCartKey(s string) (CartKey, error) {
	i := strings.LastIndex(s, "_")
	if i <= 0 {
		return CartKey{}, fmt.Errorf("malformed cart key: %q", s)
	}
	p, err := ParsePortion(s[i+1:])
	if err != nil {
		return CartKey{}, fmt.Errorf("malformed cart key %q: %w", s, err)
	}
	return CartKey{ItemID: s[:i], Portion: p}, nil
}

// CartEntry is one line of the cart. Quantity is always positive.
type CartEntry struct {
	Key      CartKey
	Quantity int
}

// CartSnapshot is an insertion-ordered copy of the cart.
// It marshals to a JSON object such as {"1_full":2,"4_half":1} with keys in cart order.
type CartSnapshot []CartEntry

// MarshalJSON keeps the cart order, which a Go map would lose.
func (s CartSnapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", e.Quantity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
