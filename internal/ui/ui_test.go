package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAlert(t *testing.T) {
	Convey("Given an open alert", t, func() {
		alert := NewAlert()
		alert.Open("Select at least one episode")

		So(alert.Active(), ShouldBeTrue)
		So(alert.View(80), ShouldContainSubstring, "Select at least one episode")

		Convey("Other keys keep it open", func() {
			cmd := alert.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
			So(cmd, ShouldBeNil)
			So(alert.Active(), ShouldBeTrue)
		})

		Convey("Enter dismisses it", func() {
			cmd := alert.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldResemble, AlertDismissedMsg{})
			So(alert.Active(), ShouldBeFalse)
			So(alert.View(80), ShouldBeEmpty)
		})

		Convey("Esc dismisses it", func() {
			alert.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(alert.Active(), ShouldBeFalse)
		})
	})
}

func TestNotifier(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var n Notifier

		Convey("A notification shows until its own clear arrives", func() {
			So(n.Update(NotifyMsg("first")), ShouldNotBeNil)
			So(n.Update(NotifyMsg("second")), ShouldNotBeNil)

			n.Update(clearNotificationMsg{generation: 1})
			So(n.Notification(), ShouldEqual, "second")

			n.Update(clearNotificationMsg{generation: 2})
			So(n.Notification(), ShouldBeEmpty)
		})

		Convey("Notify wraps the message", func() {
			So(Notify("done")(), ShouldEqual, NotifyMsg("done"))
		})
	})
}
