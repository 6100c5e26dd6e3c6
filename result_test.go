package hxdrop

import (
	"errors"
	"net/http"
	"testing"
)

func TestResultOK(t *testing.T) {
	s := State{ID: "w1", MaxFiles: 2}
	r := OK(s)

	if r.GetState().ID != "w1" {
		t.Errorf("GetState().ID = %q, want %q", r.GetState().ID, "w1")
	}
	if r.GetErr() != nil {
		t.Errorf("GetErr() = %v, want nil", r.GetErr())
	}
	if r.ShouldSkip() {
		t.Error("ShouldSkip() = true, want false")
	}
	if r.GetStatus() != 0 {
		t.Errorf("GetStatus() = %d, want 0", r.GetStatus())
	}
}

func TestResultErr(t *testing.T) {
	testErr := errors.New("test error")
	r := Err(State{ID: "w1"}, testErr)

	if r.GetErr() != testErr {
		t.Errorf("GetErr() = %v, want %v", r.GetErr(), testErr)
	}
	if r.GetState().ID != "w1" {
		t.Errorf("GetState().ID = %q, want %q", r.GetState().ID, "w1")
	}
}

func TestResultSkip(t *testing.T) {
	r := Skip().Status(http.StatusNoContent)

	if !r.ShouldSkip() {
		t.Error("ShouldSkip() = false, want true")
	}
	if r.GetStatus() != http.StatusNoContent {
		t.Errorf("GetStatus() = %d, want %d", r.GetStatus(), http.StatusNoContent)
	}
}

func TestResultFlash(t *testing.T) {
	r := OK(State{}).
		Flash(FlashInfo, "Removed a.png").
		Flash(FlashWarning, "Selection full")

	flashes := r.GetFlashes()
	if len(flashes) != 2 {
		t.Fatalf("len(GetFlashes()) = %d, want 2", len(flashes))
	}
	if flashes[0].Level != FlashInfo || flashes[0].Message != "Removed a.png" {
		t.Errorf("flashes[0] = %+v", flashes[0])
	}
	if flashes[1].Level != FlashWarning {
		t.Errorf("flashes[1].Level = %q, want %q", flashes[1].Level, FlashWarning)
	}
}

func TestResultFlashDoesNotShareBacking(t *testing.T) {
	base := OK(State{}).Flash(FlashInfo, "one")
	a := base.Flash(FlashInfo, "a")
	b := base.Flash(FlashInfo, "b")

	if a.GetFlashes()[1].Message != "a" {
		t.Errorf("a lost its flash: %+v", a.GetFlashes())
	}
	if b.GetFlashes()[1].Message != "b" {
		t.Errorf("b lost its flash: %+v", b.GetFlashes())
	}
}

func TestResultTrigger(t *testing.T) {
	r := OK(State{}).Trigger(EventFilesSelected)
	if r.GetTrigger() != EventFilesSelected {
		t.Errorf("GetTrigger() = %q, want %q", r.GetTrigger(), EventFilesSelected)
	}
	if r.GetTriggerData() != nil {
		t.Errorf("GetTriggerData() = %v, want nil", r.GetTriggerData())
	}

	data := map[string]any{"id": "w1"}
	r = r.Trigger(EventFilesSelected, data)
	if r.GetTriggerData()["id"] != "w1" {
		t.Errorf("GetTriggerData() = %v", r.GetTriggerData())
	}
}

func TestResultHeader(t *testing.T) {
	r := OK(State{}).
		Header("X-Custom", "value1").
		Header("X-Another", "value2")

	headers := r.GetHeaders()
	if headers["X-Custom"] != "value1" {
		t.Errorf("X-Custom = %q, want %q", headers["X-Custom"], "value1")
	}
	if headers["X-Another"] != "value2" {
		t.Errorf("X-Another = %q, want %q", headers["X-Another"], "value2")
	}
}
