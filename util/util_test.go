package util

import (
	"testing"

	"github.com/huepick/huepick/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("logs"), ShouldEqual, "Logs")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestClampWrap(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(-1, 0, 4), ShouldEqual, 0)
		So(Clamp(2, 0, 4), ShouldEqual, 2)
		So(Clamp(9, 0, 4), ShouldEqual, 4)
	})

	Convey("Wrap", t, func() {
		So(Wrap(5, 5), ShouldEqual, 0)
		So(Wrap(-1, 5), ShouldEqual, 4)
		So(Wrap(3, 5), ShouldEqual, 3)
		So(Wrap(3, 0), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory tree", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/logs/old", 0o755))
		lo.Must0(fs.WriteFile("/logs/old/a.log", []byte("a"), 0o644))
		lo.Must0(fs.WriteFile("/logs/b.log", []byte("b"), 0o644))

		Convey("Delete should remove a single file", func() {
			So(Delete("/logs/b.log"), ShouldBeNil)
			So(lo.Must(fs.Exists("/logs/b.log")), ShouldBeFalse)
			So(lo.Must(fs.Exists("/logs/old/a.log")), ShouldBeTrue)
		})

		Convey("Delete should remove directories recursively", func() {
			So(Delete("/logs"), ShouldBeNil)
			So(lo.Must(fs.Exists("/logs")), ShouldBeFalse)
		})

		Convey("Delete should fail on missing paths", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
