package menu

// ResolveKeys returns the candidate keys an order line may carry for this menu item,
// most specific first. Lines created before an identifier change still carry the old
// identifier, so they are matched by name as a fallback.
func ResolveKeys(item Item) []string {
	return []string{idKey(item.id), nameKey(item.name)}
}

// LineKeys returns the keys an order line with the given id and name answers to.
// A line matches a menu item when the two key lists intersect in priority order.
func LineKeys(id, name string) []string {
	return []string{idKey(id), nameKey(name)}
}

func idKey(id string) string { return "id:" + id }
func nameKey(name string) string { return "name:" + name }

// Catalog indexes menu items by every key ResolveKeys produces.
type Catalog struct {
	items []Item
	byKey map[string]int
}

// NewCatalog indexes items; when two items share a name the first one wins the name key.
func NewCatalog(items []Item) Catalog {
	c := Catalog{items: items, byKey: make(map[string]int, len(items)*2)}
	for idx, item := range items {
		for _, key := range ResolveKeys(item) {
			if _, taken := c.byKey[key]; !taken {
				c.byKey[key] = idx
			}
		}
	}
	return c
}

func (c Catalog) Items() []Item {
	return c.items
}

// Match finds the menu item an order line refers to: by identifier first, then by name.
func (c Catalog) Match(lineID, lineName string) (Item, bool) {
	for _, key := range LineKeys(lineID, lineName) {
		if idx, ok := c.byKey[key]; ok {
			return c.items[idx], true
		}
	}
	return Item{}, false
}

// Get finds a menu item by identifier only.
func (c Catalog) Get(id string) (Item, bool) {
	idx, ok := c.byKey[idKey(id)]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}
