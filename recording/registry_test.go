package recording

import (
	"testing"

	"github.com/fedorabots/emblem"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	name          string
	width, height float64
	title         string
	calls         []string
	failOn        string
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) record(call string) error {
	b.calls = append(b.calls, call)
	if call == b.failOn {
		return errMock
	}
	return nil
}

func (b *mockBackend) Begin(width, height float64) error {
	b.width, b.height = width, height
	return b.record("Begin")
}

func (b *mockBackend) SetTitle(title string) { b.title = title }

func (b *mockBackend) DefineGradient(g emblem.Gradient) error {
	return b.record("Define " + g.GradientID())
}

func (b *mockBackend) FillShape(s emblem.Shape) error {
	return b.record("Fill " + s.Fill.Paint())
}

func (b *mockBackend) End() error { return b.record("End") }

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if _, err := NewBackend("unknown"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	mustPanic("nil factory", func() { Register("nil", nil) })

	factory := func() Backend { return newMockBackend("dup") }
	Register("dup", factory)
	mustPanic("duplicate", func() { Register("dup", factory) })
}

func TestUnregisterAndBackends(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("charlie", func() Backend { return newMockBackend("c") })
	Register("alpha", func() Backend { return newMockBackend("a") })
	Register("bravo", func() Backend { return newMockBackend("b") })

	names := Backends()
	expected := []string{"alpha", "bravo", "charlie"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d backends, got %d", len(expected), len(names))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("names[%d] = %q, want %q", i, name, expected[i])
		}
	}

	Unregister("bravo")
	if IsRegistered("bravo") {
		t.Error("backend should not be registered after Unregister")
	}
	Unregister("nonexistent")
}

func TestConcurrentRegistration(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	done := make(chan bool)
	go func() {
		for i := 0; i < 100; i++ {
			name := "concurrent" + string(rune('A'+i%26)) + string(rune('0'+i/26))
			Register(name, func() Backend { return newMockBackend(name) })
		}
		done <- true
	}()
	go func() {
		for i := 0; i < 100; i++ {
			_ = Backends()
			_ = IsRegistered("nonexistent")
		}
		done <- true
	}()
	<-done
	<-done
}
