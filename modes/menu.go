package modes

import (
	"github.com/gdamore/tcell/v2"
)

// MenuItem is one main menu entry
type MenuItem uint8

const (
	MenuSingle MenuItem = iota
	MenuMulti
	MenuExit
	menuItemCount
)

var menuLabels = [menuItemCount]string{
	MenuSingle: "Single Player",
	MenuMulti:  "Multiplayer",
	MenuExit:   "Exit",
}

func (m MenuItem) String() string {
	if m >= menuItemCount {
		return ""
	}
	return menuLabels[m]
}

// MenuItems returns all entries in display order
func MenuItems() []MenuItem {
	return []MenuItem{MenuSingle, MenuMulti, MenuExit}
}

// Menu tracks the highlighted main menu entry
type Menu struct {
	Selected MenuItem
}

func NewMenu() *Menu {
	return &Menu{}
}

// HandleKey moves the selection; returns the chosen item and true on confirm
func (m *Menu) HandleKey(ev *tcell.EventKey) (MenuItem, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return MenuExit, true
	case tcell.KeyUp:
		m.move(-1)
	case tcell.KeyDown, tcell.KeyTab:
		m.move(1)
	case tcell.KeyEnter:
		return m.Selected, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			m.move(-1)
		case 's', 'j':
			m.move(1)
		case ' ':
			return m.Selected, true
		case '1':
			return MenuSingle, true
		case '2':
			return MenuMulti, true
		case 'q':
			return MenuExit, true
		}
	}
	return m.Selected, false
}

func (m *Menu) move(delta int) {
	n := int(menuItemCount)
	m.Selected = MenuItem((int(m.Selected) + delta + n) % n)
}
