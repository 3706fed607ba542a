package invoice

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"lengolf/internal/domain"
)

var itemKeyPattern = regexp.MustCompile(`^items\[(\d+)\]\[(description|amount)\]$`)

// ParseLineItems converts the flat items[<i>][description|amount] form payload
// into the ordered list of valid line items. Row order follows the numeric
// index, not key serialization order. Rows with a blank description or a
// non-positive amount are dropped silently; an amount that does not parse as
// a decimal counts as zero. Keys outside the pattern are ignored.
func ParseLineItems(form url.Values) []domain.LineItem {
	type entry struct {
		index int
		field string
		value string
	}

	var entries []entry
	for key, values := range form {
		m := itemKeyPattern.FindStringSubmatch(key)
		if m == nil || len(values) == 0 {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			// Index out of integer range; skip the key.
			continue
		}
		// A repeated key carries multiple submitted values; the last one wins.
		entries = append(entries, entry{index: idx, field: m[2], value: values[len(values)-1]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	var (
		items      []domain.LineItem
		current    domain.LineItem
		currentIdx = -1
	)
	flush := func() {
		if currentIdx >= 0 && current.Description != "" && current.Amount.IsPositive() {
			items = append(items, current)
		}
	}
	for _, e := range entries {
		if e.index != currentIdx {
			flush()
			current = domain.LineItem{Amount: decimal.Zero}
			currentIdx = e.index
		}
		switch e.field {
		case "description":
			current.Description = strings.TrimSpace(e.value)
		case "amount":
			amount, err := decimal.NewFromString(strings.TrimSpace(e.value))
			if err != nil {
				amount = decimal.Zero
			}
			current.Amount = amount
		}
	}
	// The last index never sees an index change, so flush it explicitly.
	flush()
	return items
}
