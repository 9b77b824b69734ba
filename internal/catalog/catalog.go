package catalog

import "strings"

// Unit is the closed set of purchase units an item can be sold in.
type Unit string

const (
	UnitUnidade Unit = "unidade"
	UnitKg      Unit = "kg"
	UnitLitro   Unit = "litro"
	UnitPacote  Unit = "pacote"
	UnitCaixa   Unit = "caixa"
	UnitDuzia   Unit = "dúzia"
	UnitPe      Unit = "pé"
	UnitFrasco  Unit = "frasco"
	UnitRolo    Unit = "rolo"
)

// Units lists every valid unit, in display order.
func Units() []Unit {
	return []Unit{
		UnitUnidade, UnitKg, UnitLitro, UnitPacote, UnitCaixa,
		UnitDuzia, UnitPe, UnitFrasco, UnitRolo,
	}
}

// ParseUnit matches a unit name case-insensitively.
func ParseUnit(s string) (Unit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, u := range Units() {
		if s == string(u) {
			return u, true
		}
	}
	return "", false
}

// Item is a predefined purchasable template.
type Item struct {
	Name string
	Unit Unit
	Icon string
}

// Category is an ordered group of items.
type Category struct {
	Name  string
	Items []Item
}

// OtherCategory is the fallback bucket for list entries whose name does not
// match any catalog item. It always sorts after every real category.
const OtherCategory = "🛒 Outros"

var (
	byName     map[string]Item   // lowercase name -> item
	categoryOf map[string]string // lowercase name -> category name
)

func init() {
	byName = make(map[string]Item)
	categoryOf = make(map[string]string)
	for _, c := range categories {
		for _, it := range c.Items {
			k := strings.ToLower(it.Name)
			byName[k] = it
			categoryOf[k] = c.Name
		}
	}
}

// Categories returns the predefined categories in declaration order.
func Categories() []Category { return categories }

// CategoryNames returns the category names in declaration order.
func CategoryNames() []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

// Find looks an item up by name, case-insensitively.
func Find(name string) (Item, bool) {
	it, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return it, ok
}

// CategoryOf maps an item name to its category name, case-insensitively.
func CategoryOf(name string) (string, bool) {
	c, ok := categoryOf[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
