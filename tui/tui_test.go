package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/huepick/huepick/key"
	"github.com/huepick/huepick/picker"
	"github.com/huepick/huepick/prefs"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.TUISwatchWidth, 8)
	viper.Set(key.TUISwatchHeight, 2)
	viper.Set(key.TUIShowHelp, true)
	viper.Set(key.IconsVariant, "plain")
}

type readOnlyStore struct {
	prefs.Store
}

func (readOnlyStore) Set(string, string) error {
	return errors.New("read-only")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(b *pickerBubble, msgs ...tea.Msg) {
	for _, msg := range msgs {
		_, _ = b.Update(msg)
	}
}

func leftClick(r rect) tea.MouseMsg {
	return tea.MouseMsg{X: r.x, Y: r.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func mounted(store prefs.Store) *pickerBubble {
	page := lo.Must(picker.New(store))
	b := newBubble(page)
	send(b, b.Init()())
	return b
}

func storedColor(store prefs.Store) string {
	return lo.Must(store.Get(prefs.Key)).OrEmpty()
}

func TestMount(t *testing.T) {
	Convey("Given empty storage", t, func() {
		store := prefs.NewMemoryStore()
		page := lo.Must(picker.New(store))
		b := newBubble(page)

		Convey("The first frame should have nothing applied yet", func() {
			So(b.page.Applied(), ShouldBeEmpty)
			So(b.View(), ShouldContainSubstring, "This is the color you picked:")
			So(b.View(), ShouldNotContainSubstring, "picked: red")
		})

		Convey("After the mount message the page should show red", func() {
			send(b, b.Init()())
			So(b.View(), ShouldContainSubstring, "This is the color you picked: red")
			So(storedColor(store), ShouldEqual, "red")
		})
	})

	Convey("Given a store that refuses writes", t, func() {
		b := mounted(readOnlyStore{Store: prefs.NewMemoryStore()})

		Convey("Mounting should land on the error screen", func() {
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "save user_selected_colour: read-only")

			Convey("And esc should return to the page", func() {
				send(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, pageState)
				So(b.lastError, ShouldBeNil)
			})
		})
	})

	Convey("Given an error message unrelated to saving", t, func() {
		b := mounted(prefs.NewMemoryStore())
		send(b, errors.New("terminal went away"))

		Convey("The error screen should show it without blaming the store", func() {
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "terminal went away")
			So(b.View(), ShouldNotContainSubstring, "save")
		})
	})
}

func TestKeyboard(t *testing.T) {
	Convey("Given storage holding gray", t, func() {
		store := prefs.NewMemoryStore()
		lo.Must0(store.Set(prefs.Key, "gray"))
		b := mounted(store)

		Convey("The cursor should start on gray", func() {
			So(b.cursor, ShouldEqual, 3)
		})

		Convey("The menu should be hidden", func() {
			So(b.View(), ShouldNotContainSubstring, "Yellow")
		})

		Convey("Number keys should do nothing while the menu is closed", func() {
			send(b, runes("1"))
			So(storedColor(store), ShouldEqual, "gray")
		})

		Convey("Enter should open the menu", func() {
			send(b, tea.KeyMsg{Type: tea.KeyEnter})
			So(b.page.MenuOpen(), ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "Yellow")

			Convey("And up then enter should pick yellow and keep the menu open", func() {
				send(b, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
				So(storedColor(store), ShouldEqual, "yellow")
				So(b.View(), ShouldContainSubstring, "This is the color you picked: yellow")
				So(b.page.MenuOpen(), ShouldBeTrue)
			})

			Convey("And 5 should pick green directly", func() {
				send(b, runes("5"))
				So(storedColor(store), ShouldEqual, "green")
				So(b.cursor, ShouldEqual, 4)
			})

			Convey("And down should wrap around to red", func() {
				send(b, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
				So(storedColor(store), ShouldEqual, "red")
			})

			Convey("And esc should close it without changing the color", func() {
				send(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.page.MenuOpen(), ShouldBeFalse)
				So(storedColor(store), ShouldEqual, "gray")
			})
		})

		Convey("Toggling repeatedly should not touch storage", func() {
			for i := 0; i < 5; i++ {
				send(b, runes("t"))
			}
			So(b.page.MenuOpen(), ShouldBeTrue)
			So(storedColor(store), ShouldEqual, "gray")
			So(b.page.Applied(), ShouldEqual, "gray")
		})

		Convey("q should quit", func() {
			_, cmd := b.Update(runes("q"))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldResemble, tea.Quit())
		})

		Convey("? should expand the help", func() {
			send(b, runes("?"))
			So(b.helpC.ShowAll, ShouldBeTrue)
		})
	})
}

func TestMouse(t *testing.T) {
	Convey("Given storage holding gray", t, func() {
		store := prefs.NewMemoryStore()
		lo.Must0(store.Set(prefs.Key, "gray"))
		b := mounted(store)

		Convey("Clicking the button should open the menu", func() {
			send(b, leftClick(b.layout().button))
			So(b.page.MenuOpen(), ShouldBeTrue)
			So(b.layout().items, ShouldHaveLength, 5)

			Convey("And clicking Yellow should pick it and leave the menu open", func() {
				send(b, leftClick(b.layout().items[2]))
				So(storedColor(store), ShouldEqual, "yellow")
				So(b.View(), ShouldContainSubstring, "This is the color you picked: yellow")
				So(b.page.MenuOpen(), ShouldBeTrue)
			})

			Convey("And clicking the button again should close it", func() {
				send(b, leftClick(b.layout().button))
				So(b.page.MenuOpen(), ShouldBeFalse)
				So(storedColor(store), ShouldEqual, "gray")
			})
		})

		Convey("Clicks where the closed menu would be should be ignored", func() {
			r := b.layout().button
			send(b, tea.MouseMsg{X: r.x, Y: r.y + r.h, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			So(b.page.MenuOpen(), ShouldBeFalse)
			So(storedColor(store), ShouldEqual, "gray")
		})

		Convey("Right clicks should be ignored", func() {
			r := b.layout().button
			send(b, tea.MouseMsg{X: r.x, Y: r.y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
			So(b.page.MenuOpen(), ShouldBeFalse)
		})
	})
}

func TestLayout(t *testing.T) {
	Convey("Given an open menu", t, func() {
		b := mounted(prefs.NewMemoryStore())
		b.toggleMenu()
		l := b.layout()

		Convey("Items should stack directly under the button", func() {
			So(l.items[0].y, ShouldEqual, l.button.y+l.button.h)
			for i := 1; i < len(l.items); i++ {
				So(l.items[i].y, ShouldEqual, l.items[i-1].y+1)
			}
		})

		Convey("rect.contains should be half-open", func() {
			r := rect{x: 2, y: 1, w: 3, h: 2}
			So(r.contains(2, 1), ShouldBeTrue)
			So(r.contains(4, 2), ShouldBeTrue)
			So(r.contains(5, 1), ShouldBeFalse)
			So(r.contains(2, 3), ShouldBeFalse)
		})
	})
}
