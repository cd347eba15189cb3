package order

import "pos/internal/core/domain/model/menu"

// DraftLine is a menu item staged on the new-order form.
type DraftLine struct {
	Item     menu.Item
	Quantity int
}

// Draft is the new-order form before it is submitted.
type Draft struct {
	lines []DraftLine
}

func NewDraft() *Draft {
	return &Draft{}
}

// Add stages one unit of item. An item already on the form gets its quantity bumped,
// otherwise it is appended with quantity 1.
func (d *Draft) Add(item menu.Item) {
	for i := range d.lines {
		if d.lines[i].Item.ID() == item.ID() {
			d.lines[i].Quantity++
			return
		}
	}
	d.lines = append(d.lines, DraftLine{Item: item, Quantity: 1})
}

// Lines returns the staged lines in the order they were first added.
func (d *Draft) Lines() []DraftLine {
	lines := make([]DraftLine, len(d.lines))
	copy(lines, d.lines)
	return lines
}

func (d *Draft) IsEmpty() bool {
	return d == nil || len(d.lines) == 0
}
