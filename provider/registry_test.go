package provider

import (
	"errors"
	"testing"

	"github.com/picsan-cli/picsan/source"
	. "github.com/smartystreets/goconvey/convey"
)

func fakeProvider(id, name string) *Provider {
	return &Provider{
		ID:           id,
		Name:         name,
		CreateSource: func() (source.Source, error) { return nil, nil },
	}
}

func TestRegistry(t *testing.T) {
	Convey("Given a registry with two providers", t, func() {
		reg, err := NewRegistry(fakeProvider("a", "Source A"), fakeProvider("b", "Source B"))
		So(err, ShouldBeNil)

		Convey("List should preserve registration order", func() {
			list := reg.List()
			So(list, ShouldHaveLength, 2)
			So(list[0].ID, ShouldEqual, "a")
			So(list[1].ID, ShouldEqual, "b")
		})

		Convey("Get should round-trip every registered provider", func() {
			for _, p := range reg.List() {
				found, ok := reg.Get(p.ID)
				So(ok, ShouldBeTrue)
				So(found, ShouldEqual, p)
			}
		})

		Convey("Get with an unregistered code should report absence", func() {
			_, ok := reg.Get("kek")
			So(ok, ShouldBeFalse)
		})

		Convey("Source with an unregistered code should fail with ErrUnknownParser", func() {
			_, err := reg.Source("kek")
			So(errors.Is(err, ErrUnknownParser), ShouldBeTrue)
		})

		Convey("Registering a duplicate code should fail and leave the registry unchanged", func() {
			err := reg.Register(fakeProvider("a", "Imposter"))
			So(errors.Is(err, ErrDuplicateCode), ShouldBeTrue)

			So(reg.List(), ShouldHaveLength, 2)
			p, _ := reg.Get("a")
			So(p.Name, ShouldEqual, "Source A")
		})
	})

	Convey("Given the built-in providers", t, func() {
		reg := Default()

		Convey("Every builtin should resolve to a source matching its descriptor", func() {
			for _, p := range reg.List() {
				src, err := reg.Source(p.ID)
				So(err, ShouldBeNil)
				So(src.ID(), ShouldEqual, p.ID)
				So(src.Name(), ShouldEqual, p.Name)
			}
		})
	})
}
