package shopping

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
	"github.com/GamingGoku/ProductionMealApp/internal/normalize"
)

// Input carries everything aggregation reads. The aggregate is always
// derived in full from these sources, never stored.
type Input struct {
	Plan      *domain.Plan
	Staples   []string
	Extras    []domain.Extra
	Overrides domain.Overrides
	Checked   domain.CheckedSet
}

// Item is one aggregated shopping list entry.
type Item struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Qty     string `json:"qty"`
	Count   int    `json:"count"`
	Checked bool   `json:"checked"`
}

// Group is all items resolved to one category, in display order.
type Group struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// List is the fully derived shopping list. Groups appear in the canonical
// category order and empty categories are omitted.
type List struct {
	Groups []Group `json:"groups"`
}

// FindItem returns the item with the given key, or nil.
func (l *List) FindItem(key string) *Item {
	for gi := range l.Groups {
		for ii := range l.Groups[gi].Items {
			if l.Groups[gi].Items[ii].Key == key {
				return &l.Groups[gi].Items[ii]
			}
		}
	}
	return nil
}

// Build derives the shopping list. Items sharing a normalized key merge into
// one entry whose label is the first form encountered; scan order is plan
// ingredients, then staples, then extras. Category resolution per item is
// extra-forced category, then user override, then keyword classification of
// the label. The quantity is the user override verbatim when set, otherwise
// the occurrence count.
func Build(in Input) *List {
	counts := make(map[string]int)
	labels := make(map[string]string)
	forced := make(map[string]string)

	add := func(raw string) string {
		key := normalize.Key(raw)
		if key == "" {
			return ""
		}
		counts[key]++
		if _, seen := labels[key]; !seen {
			// The label keeps the raw spelling, only trimmed. Inner
			// whitespace is the author's, not ours to collapse.
			labels[key] = strings.TrimSpace(raw)
		}
		return key
	}

	if in.Plan != nil {
		for _, meal := range in.Plan.Days {
			for _, ing := range meal.Ingredients {
				add(ing)
			}
		}
	}
	for _, s := range in.Staples {
		add(s)
	}
	for _, e := range in.Extras {
		key := add(e.Name)
		if key != "" && e.Cat != "" {
			forced[key] = e.Cat
		}
	}

	grouped := make(map[string][]Item)
	for key, count := range counts {
		label := labels[key]
		cat := resolveCategory(key, label, forced, in.Overrides.Category)

		qty := strconv.Itoa(count)
		if override, ok := in.Overrides.Quantity[key]; ok && override != "" {
			qty = override
		}

		grouped[cat] = append(grouped[cat], Item{
			Key:     key,
			Label:   label,
			Qty:     qty,
			Count:   count,
			Checked: in.Checked.Has(key),
		})
	}

	c := collate.New(language.English)
	list := &List{}
	for _, cat := range CategoriesOrder {
		items := grouped[cat]
		if len(items) == 0 {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Label, items[j].Label) < 0
		})
		list.Groups = append(list.Groups, Group{Category: cat, Items: items})
	}
	return list
}

// resolveCategory applies the precedence chain, skipping any link that names
// an unknown category.
func resolveCategory(key, label string, forced, overrides map[string]string) string {
	if cat, ok := forced[key]; ok && ValidCategory(cat) {
		return cat
	}
	if cat, ok := overrides[key]; ok && ValidCategory(cat) {
		return cat
	}
	return CategoryOf(label)
}
