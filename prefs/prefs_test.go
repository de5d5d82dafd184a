package prefs

import (
	"encoding/json"
	"testing"

	"github.com/huepick/huepick/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func storeContract(newStore func() Store) {
	store := newStore()

	Convey("An unwritten key should be absent", func() {
		value, err := store.Get(Key)
		So(err, ShouldBeNil)
		So(value.IsPresent(), ShouldBeFalse)
	})

	Convey("A written key should read back", func() {
		So(store.Set(Key, "blue"), ShouldBeNil)

		value, err := store.Get(Key)
		So(err, ShouldBeNil)
		So(value.MustGet(), ShouldEqual, "blue")

		Convey("And the last write should win", func() {
			So(store.Set(Key, "green"), ShouldBeNil)
			value, err := store.Get(Key)
			So(err, ShouldBeNil)
			So(value.MustGet(), ShouldEqual, "green")
		})
	})

	Convey("Empty values should be stored as present", func() {
		So(store.Set(Key, ""), ShouldBeNil)
		value, err := store.Get(Key)
		So(err, ShouldBeNil)
		So(value.IsPresent(), ShouldBeTrue)
		So(value.MustGet(), ShouldEqual, "")
	})
}

func TestMemoryStore(t *testing.T) {
	Convey("Given a memory store", t, func() {
		storeContract(func() Store { return NewMemoryStore() })
	})
}

func TestFileStore(t *testing.T) {
	Convey("Given a file store", t, func() {
		filesystem.SetMemMapFs()
		storeContract(func() Store { return NewFileStore("/config/huepick/preferences.json") })
	})

	Convey("Given two file stores on the same path", t, func() {
		filesystem.SetMemMapFs()
		path := "/config/huepick/preferences.json"

		first := NewFileStore(path)
		So(first.Set(Key, "green"), ShouldBeNil)

		Convey("The second should see the first one's write", func() {
			second := NewFileStore(path)
			value, err := second.Get(Key)
			So(err, ShouldBeNil)
			So(value.MustGet(), ShouldEqual, "green")
		})

		Convey("The backing file should exist", func() {
			exists, err := filesystem.API().Exists(first.Path())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}

func TestFileStoreFormat(t *testing.T) {
	const path = "/config/huepick/preferences.json"

	Convey("Given a hand-written preferences file", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().MkdirAll("/config/huepick", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile(path, []byte(`{"user_selected_colour":"blue"}`), 0o644), ShouldBeNil)

		Convey("The stored value should be read as-is", func() {
			value, err := NewFileStore(path).Get(Key)
			So(err, ShouldBeNil)
			So(value.MustGet(), ShouldEqual, "blue")
		})

		Convey("Values outside the menu should be read too", func() {
			So(filesystem.API().WriteFile(path, []byte(`{"user_selected_colour":"#ff00ff"}`), 0o644), ShouldBeNil)

			value, err := NewFileStore(path).Get(Key)
			So(err, ShouldBeNil)
			So(value.MustGet(), ShouldEqual, "#ff00ff")
		})
	})

	Convey("Given a store that wrote a color", t, func() {
		filesystem.SetMemMapFs()
		So(NewFileStore(path).Set(Key, "gray"), ShouldBeNil)

		Convey("The file should hold a flat JSON object", func() {
			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)

			var saved map[string]string
			So(json.Unmarshal(content, &saved), ShouldBeNil)
			So(saved, ShouldResemble, map[string]string{Key: "gray"})
		})
	})

	Convey("Given a file created by a read", t, func() {
		filesystem.SetMemMapFs()
		store := NewFileStore(path)

		value, err := store.Get(Key)
		So(err, ShouldBeNil)
		So(value.IsPresent(), ShouldBeFalse)

		Convey("A later write should still succeed", func() {
			So(store.Set(Key, "green"), ShouldBeNil)
			value, err := NewFileStore(path).Get(Key)
			So(err, ShouldBeNil)
			So(value.MustGet(), ShouldEqual, "green")
		})
	})
}

func TestFileStoreFailedWrite(t *testing.T) {
	const path = "/config/huepick/preferences.json"

	Convey("Given a file store holding blue", t, func() {
		base := afero.NewMemMapFs()
		filesystem.SetFs(base)
		Reset(filesystem.SetMemMapFs)

		store := NewFileStore(path)
		So(store.Set(Key, "blue"), ShouldBeNil)

		Convey("When a write fails", func() {
			filesystem.SetFs(afero.NewReadOnlyFs(base))
			So(store.Set(Key, "green"), ShouldNotBeNil)

			Convey("The store should not report the unsaved value", func() {
				value, _ := store.Get(Key)
				So(value.OrEmpty(), ShouldNotEqual, "green")
			})

			Convey("The store should read the saved value once writable again", func() {
				filesystem.SetFs(base)

				value, err := store.Get(Key)
				So(err, ShouldBeNil)
				So(value.MustGet(), ShouldEqual, "blue")
			})
		})
	})
}

func TestKeyringStore(t *testing.T) {
	Convey("Given a keyring store", t, func() {
		keyring.MockInit()
		storeContract(func() Store { return NewKeyringStore() })
	})
}

func TestOpen(t *testing.T) {
	Convey("Open", t, func() {
		Convey("Should return the requested backend", func() {
			store, err := Open(BackendMemory)
			So(err, ShouldBeNil)
			So(store, ShouldHaveSameTypeAs, &MemoryStore{})

			store, err = Open(BackendFile)
			So(err, ShouldBeNil)
			So(store, ShouldHaveSameTypeAs, &FileStore{})

			store, err = Open(BackendKeyring)
			So(err, ShouldBeNil)
			So(store, ShouldHaveSameTypeAs, &KeyringStore{})
		})

		Convey("Should suggest the closest backend on typos", func() {
			_, err := Open("fiel")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"file"`)
		})
	})
}
