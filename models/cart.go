package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Cart Models (item identifiers + persisted entry map)
// ═══════════════════════════════════════════════════════════

// ItemKind distinguishes the three addressing forms an identifier can take.
type ItemKind int

const (
	// ItemPlain addresses a product with no variant: "p1"
	ItemPlain ItemKind = iota
	// ItemFixed addresses a fixed variant: "p1::w500"
	ItemFixed
	// ItemCustom addresses a custom per-unit amount: "p1::custom-g-500"
	ItemCustom
)

// customSuffixRe matches the custom-amount suffix. Same pattern the
// storefront uses when it synthesizes these ids.
var customSuffixRe = regexp.MustCompile(`^custom-(g|ml|l)-(\d+)$`)

// ItemID is a parsed item identifier. Identifiers are the sole key into
// cart state; parsing happens once at this boundary and the decoded form
// is passed around afterwards.
type ItemID struct {
	Raw       string
	ProductID string
	Kind      ItemKind

	// Fixed only
	VariantID string

	// Custom only
	Unit   string
	Amount int
}

// ParseItemID decodes a raw identifier. `::` is the only permitted
// delimiter inside an identifier; anything after a second `::` makes the
// identifier unparseable.
func ParseItemID(raw string) (ItemID, error) {
	parts := strings.Split(raw, "::")
	switch {
	case raw == "" || parts[0] == "":
		return ItemID{}, errors.New("empty item identifier")
	case len(parts) == 1:
		return ItemID{Raw: raw, ProductID: parts[0], Kind: ItemPlain}, nil
	case len(parts) == 2 && parts[1] != "":
		id := ItemID{Raw: raw, ProductID: parts[0]}
		if m := customSuffixRe.FindStringSubmatch(parts[1]); m != nil {
			amount, err := strconv.Atoi(m[2])
			if err != nil {
				return ItemID{}, fmt.Errorf("invalid custom amount in %q", raw)
			}
			id.Kind = ItemCustom
			id.Unit = m[1]
			id.Amount = amount
			return id, nil
		}
		id.Kind = ItemFixed
		id.VariantID = parts[1]
		return id, nil
	default:
		return ItemID{}, fmt.Errorf("malformed item identifier %q", raw)
	}
}

// VariantItemID builds the identifier for a fixed variant selection.
func VariantItemID(productID, variantID string) string {
	return productID + "::" + variantID
}

// CustomItemID builds the identifier for a custom amount selection.
func CustomItemID(productID, unit string, amount int) string {
	return fmt.Sprintf("%s::custom-%s-%d", productID, unit, amount)
}

// CartChange is emitted to listeners on every cart mutation.
type CartChange struct {
	Identifier    string `json:"id"`
	Quantity      int    `json:"qty"`
	TotalQuantity int    `json:"total"`
}

// CartEntry is one identifier→quantity pair. Quantity is always > 0 while
// the entry exists; reaching 0 removes it entirely.
type CartEntry struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// CartEntries is the persisted cart state. It serializes to the same
// `{"identifier": quantity}` JSON object the storefront has always stored,
// while preserving insertion order, the order line items are enumerated in.
type CartEntries []CartEntry

// Quantity returns the stored quantity for an identifier, 0 when absent.
func (e CartEntries) Quantity(id string) int {
	for _, entry := range e {
		if entry.ID == id {
			return entry.Qty
		}
	}
	return 0
}

// TotalQuantity sums all entry quantities.
func (e CartEntries) TotalQuantity() int {
	total := 0
	for _, entry := range e {
		total += entry.Qty
	}
	return total
}

// Set updates the quantity for an identifier, appending new identifiers at
// the end and deleting entries that reach 0. Returns the updated slice.
func (e CartEntries) Set(id string, qty int) CartEntries {
	for i, entry := range e {
		if entry.ID != id {
			continue
		}
		if qty <= 0 {
			return append(e[:i], e[i+1:]...)
		}
		e[i].Qty = qty
		return e
	}
	if qty <= 0 {
		return e
	}
	return append(e, CartEntry{ID: id, Qty: qty})
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (e CartEntries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Qty))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the stored object with a token decoder so key order
// survives the round trip. Non-positive and non-numeric quantities are
// dropped rather than failing the whole cart.
func (e *CartEntries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("cart state is not a JSON object")
	}

	entries := make(CartEntries, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("cart state has a non-string key")
		}
		var qty float64
		if err := dec.Decode(&qty); err != nil {
			return err
		}
		if q := int(qty); q > 0 {
			entries = append(entries, CartEntry{ID: key, Qty: q})
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*e = entries
	return nil
}
