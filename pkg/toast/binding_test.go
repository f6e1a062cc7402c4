package toast

import "testing"

func TestBoolBinding(t *testing.T) {
	flag := false
	b := BoolBinding(&flag)

	if _, ok := b.Get(); ok {
		t.Error("false should read as absent")
	}

	flag = true
	if _, ok := b.Get(); !ok {
		t.Error("true should read as present")
	}

	b.Set(Unit{}, false)
	if flag {
		t.Error("absent should write false")
	}

	b.Set(Unit{}, true)
	if !flag {
		t.Error("present should write true")
	}
}

func TestPointerBinding(t *testing.T) {
	var item *string
	b := PointerBinding(&item)

	if _, ok := b.Get(); ok {
		t.Error("nil should read as absent")
	}

	b.Set("hello", true)
	if item == nil || *item != "hello" {
		t.Fatalf("item = %v, want hello", item)
	}
	if got, ok := b.Get(); !ok || got != "hello" {
		t.Errorf("Get() = %q, %v, want hello, true", got, ok)
	}

	b.Set("ignored", false)
	if item != nil {
		t.Errorf("item = %v, want nil", *item)
	}
}

func TestSlot(t *testing.T) {
	var s Slot[int]

	if s.Present() {
		t.Error("zero slot should be empty")
	}

	s.Show(3)
	if got, ok := s.Item(); !ok || got != 3 {
		t.Errorf("Item() = %d, %v, want 3, true", got, ok)
	}

	s.Clear()
	if got, ok := s.Item(); ok || got != 0 {
		t.Errorf("Item() after Clear = %d, %v, want 0, false", got, ok)
	}

	s.Set(9, false)
	if got, _ := s.Get(); got != 0 {
		t.Errorf("absent Set kept item %d", got)
	}
}

func TestBindingFunc(t *testing.T) {
	var stored string
	var has bool
	b := BindingFunc(
		func() (string, bool) { return stored, has },
		func(v string, ok bool) { stored, has = v, ok },
	)

	b.Set("x", true)
	if got, ok := b.Get(); !ok || got != "x" {
		t.Errorf("Get() = %q, %v, want x, true", got, ok)
	}
}
