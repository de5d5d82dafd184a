package cmd

import (
	"testing"

	"github.com/huepick/huepick/picker"
	"github.com/huepick/huepick/prefs"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func TestResolveColor(t *testing.T) {
	Convey("resolveColor", t, func() {
		Convey("Should accept names and labels in any case", func() {
			c, err := resolveColor("Green")
			So(err, ShouldBeNil)
			So(c.Name, ShouldEqual, "green")

			c, err = resolveColor("BLUE")
			So(err, ShouldBeNil)
			So(c.Name, ShouldEqual, "blue")
		})

		Convey("Should reject colors outside the menu with a suggestion", func() {
			_, err := resolveColor("yelow")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "yellow")

			_, err = resolveColor("#ff0000")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCompletionColors(t *testing.T) {
	Convey("completionColors", t, func() {
		Convey("Should list every color for an empty prefix", func() {
			names, directive := completionColors(nil, nil, "")
			So(names, ShouldHaveLength, 5)
			So(directive, ShouldEqual, cobra.ShellCompDirectiveNoFileComp)
		})

		Convey("Should fuzzy match the prefix", func() {
			names, _ := completionColors(nil, nil, "gr")
			So(names, ShouldContain, "green")
			So(names, ShouldContain, "gray")
			So(names, ShouldNotContain, "blue")
		})

		Convey("Should stop after the first argument", func() {
			names, _ := completionColors(nil, []string{"red"}, "")
			So(names, ShouldBeEmpty)
		})
	})
}

func TestColorOutput(t *testing.T) {
	Convey("Given a mounted page", t, func() {
		store := prefs.NewMemoryStore()

		Convey("Menu colors should carry their hex", func() {
			lo.Must0(store.Set(prefs.Key, "gray"))
			page := lo.Must(picker.New(store))
			lo.Must0(page.Mount())

			out := newColorOutput(page, "memory")
			So(out.Color, ShouldEqual, "gray")
			So(out.Hex, ShouldEqual, "#808080")
			So(out.Known, ShouldBeTrue)
			So(out.Backend, ShouldEqual, "memory")
		})

		Convey("Other stored values should be reported as unknown", func() {
			lo.Must0(store.Set(prefs.Key, "Chartreuse"))
			page := lo.Must(picker.New(store))
			lo.Must0(page.Mount())

			out := newColorOutput(page, "file")
			So(out.Color, ShouldEqual, "Chartreuse")
			So(out.Hex, ShouldBeEmpty)
			So(out.Known, ShouldBeFalse)
		})

		Convey("A stored label should not count as a menu name", func() {
			lo.Must0(store.Set(prefs.Key, "Red"))
			page := lo.Must(picker.New(store))
			lo.Must0(page.Mount())

			So(newColorOutput(page, "file").Known, ShouldBeFalse)
		})
	})
}
