package models

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizeTags(t *testing.T) {
	Convey("Tags are slugged, deduplicated and kept in order", t, func() {
		So(NormalizeTags([]string{"Old Money", "old-money", "  ", "Y2K", "Edgy Leather & Rock"}),
			ShouldResemble, []string{"old-money", "y2k", "edgy-leather-and-rock"})
	})

	Convey("An empty list stays empty", t, func() {
		So(NormalizeTags(nil), ShouldBeEmpty)
	})
}
