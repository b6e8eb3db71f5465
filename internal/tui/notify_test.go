package tui

import (
	"testing"
)

func TestNoticeShowAndExpire(t *testing.T) {
	var n Notice

	n.Show("Cliente criado com sucesso", NoticeSuccess)
	if !n.Visible() {
		t.Fatal("notice should be visible after Show")
	}

	n.Expire(n.gen)
	if n.Visible() {
		t.Error("notice should hide when its own generation expires")
	}
}

func TestNewNoticePreemptsPrevious(t *testing.T) {
	var n Notice

	n.Show("primeira", NoticeSuccess)
	firstGen := n.gen

	n.Show("segunda", NoticeError)
	if n.Text != "segunda" || n.Kind != NoticeError {
		t.Fatalf("notice = %q/%v, want the pre-empting one", n.Text, n.Kind)
	}

	// The first notice's timer firing must not hide the second.
	n.Expire(firstGen)
	if !n.Visible() {
		t.Error("stale expiry hid the current notice")
	}

	n.Expire(n.gen)
	if n.Visible() {
		t.Error("current expiry should hide the notice")
	}
}

func TestNoticeViewHiddenIsEmpty(t *testing.T) {
	var n Notice
	if got := n.View(); got != "" {
		t.Errorf("hidden notice View = %q, want empty", got)
	}
}
