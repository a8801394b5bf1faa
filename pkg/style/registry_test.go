package style

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistryInjectOnce(t *testing.T) {
	r := NewRegistry()

	if r.Has("Card") {
		t.Fatal("new registry should be empty")
	}
	if !r.Inject("Card", "a") {
		t.Fatal("first Inject should store")
	}
	if r.Inject("Card", "b") {
		t.Error("second Inject should be skipped")
	}
	if css, _ := r.Get("Card"); css != "a" {
		t.Errorf("Get() = %q, want first CSS", css)
	}
}

func TestRegistryOrderAndForget(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"A", "B", "C"} {
		r.Inject(n, n)
	}

	if got := r.Names(); len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Errorf("Names() = %q", got)
	}
	if !r.Forget("B") || r.Forget("B") {
		t.Error("Forget should succeed once")
	}
	if got := r.Names(); len(got) != 2 || got[1] != "C" {
		t.Errorf("Names() after Forget = %q", got)
	}
	if !r.Inject("B", "new") {
		t.Error("Inject after Forget should store")
	}

	r.Reset()
	if r.Len() != 0 || r.Has("A") {
		t.Error("Reset should empty the registry")
	}
}

func TestRegistryEnsure(t *testing.T) {
	r := NewRegistry()
	if r.Ensure("Empty", Sheet{}) {
		t.Error("empty sheet should not be injected")
	}
	if !r.Ensure("Card", Sheet{Rule("div", Decl("color", "red"))}) {
		t.Fatal("Ensure should inject")
	}
	if r.Ensure("Card", Sheet{Rule("p", Decl("color", "blue"))}) {
		t.Error("Ensure should not recompile a present style")
	}
	if css, _ := r.Get("Card"); css != "\ndiv[data-component=Card] {\n  color: red;\n}\n" {
		t.Errorf("Get() = %q", css)
	}
}

func TestRegistryConcurrentInject(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	var mu sync.Mutex
	stored := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Inject("Card", "css") {
				mu.Lock()
				stored++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if stored != 1 {
		t.Errorf("stored %d times, want 1", stored)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	r := NewRegistry(WithMetrics(m))

	r.Inject("A", "a")
	r.Inject("A", "a")
	r.Inject("B", "b")
	r.Forget("A")

	if got := testutil.ToFloat64(m.injectedTotal); got != 2 {
		t.Errorf("injected = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.skippedTotal); got != 1 {
		t.Errorf("skipped = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.registeredNow); got != 1 {
		t.Errorf("registered = %v, want 1", got)
	}
}

func TestElementID(t *testing.T) {
	if got := ElementID("Card"); got != "Card-style" {
		t.Errorf("ElementID() = %q", got)
	}
}
