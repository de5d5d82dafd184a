package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestChoices(t *testing.T) {
	Convey("Given the pickable colors", t, func() {
		Convey("They should be listed in menu order", func() {
			So(Names(), ShouldResemble, []string{"red", "blue", "yellow", "gray", "green"})
			So(Labels(), ShouldResemble, []string{"Red", "Blue", "Yellow", "Gray", "Green"})
		})

		Convey("Lookup should match names and labels case-insensitively", func() {
			c, ok := Lookup("YELLOW")
			So(ok, ShouldBeTrue)
			So(c.Name, ShouldEqual, "yellow")

			c, ok = Lookup("Gray")
			So(ok, ShouldBeTrue)
			So(c.Hex, ShouldEqual, "#808080")

			_, ok = Lookup("purple")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSwatch(t *testing.T) {
	Convey("Swatch", t, func() {
		Convey("Should resolve known names to hex", func() {
			So(Swatch("red"), ShouldEqual, lipgloss.Color("#ff0000"))
			So(Swatch("green"), ShouldEqual, lipgloss.Color("#008000"))
		})

		Convey("Should pass unknown values through as-is", func() {
			So(Swatch("#123456"), ShouldEqual, lipgloss.Color("#123456"))
			So(Swatch("chartreuse"), ShouldEqual, lipgloss.Color("chartreuse"))
			So(Swatch(""), ShouldEqual, lipgloss.Color(""))
		})
	})
}
