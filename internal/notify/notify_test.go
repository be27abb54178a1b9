package notify

import "testing"

func TestLoadPreferencesEnvOverrides(t *testing.T) {
	t.Setenv("SCRAWL_NOTIFY_TITLE", "My Board")
	t.Setenv("SCRAWL_NOTIFY_SAVE_TEXT", "Wrote %s")

	prefs := LoadPreferences()
	if prefs.Title != "My Board" {
		t.Errorf("expected overridden title, got %q", prefs.Title)
	}
	if prefs.Events[EventSave].Template != "Wrote %s" {
		t.Errorf("expected overridden save template, got %q", prefs.Events[EventSave].Template)
	}
	if prefs.Events[EventCopy].Template != "Copied %s to clipboard" {
		t.Errorf("copy template should keep default, got %q", prefs.Events[EventCopy].Template)
	}
}

func TestNotifierDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	for _, ev := range []Event{EventSave, EventCopy, EventPaste} {
		if n.enabledFor(ev) {
			t.Errorf("event %s should start disabled", ev)
		}
	}
	n.Enable(EventSave, true)
	if !n.enabledFor(EventSave) {
		t.Error("expected save to be enabled after Enable")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventSave, true)
	n.Save("/tmp/board.png")
	n.Copy("board")
	n.Paste("image", nil)
}
