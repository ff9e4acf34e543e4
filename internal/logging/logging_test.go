package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a valid level", t, func() {
		log := New("debug")
		So(log.GetLevel(), ShouldEqual, logrus.DebugLevel)
	})

	Convey("Given an unknown level", t, func() {
		log := New("chatty")
		So(log.GetLevel(), ShouldEqual, logrus.InfoLevel)
	})
}
