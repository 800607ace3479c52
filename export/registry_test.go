package export

import (
	"strings"
	"testing"
)

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", "", func() Backend {
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

	_, err := NewBackend("nope")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error %q lacks import hint", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	t.Run("nil factory", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for nil factory")
			}
		}()
		Register("nil", "", nil)
	})

	t.Run("duplicate", func(t *testing.T) {
		Register("dup", "", func() Backend { return newMockBackend("dup") })
		defer func() {
			if recover() == nil {
				t.Error("expected panic for duplicate registration")
			}
		}()
		Register("dup", "", func() Backend { return newMockBackend("dup") })
	})
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"svg", "pdf", "raster"} {
		Register(name, "."+name, func() Backend { return newMockBackend(name) })
	}

	got := strings.Join(Backends(), ",")
	if got != "pdf,raster,svg" {
		t.Errorf("Backends() = %s, want pdf,raster,svg", got)
	}
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("gone", ".gone", func() Backend { return newMockBackend("gone") })
	if !IsRegistered("gone") {
		t.Fatal("backend not registered")
	}
	Unregister("gone")
	if IsRegistered("gone") {
		t.Error("backend still registered after Unregister")
	}
	if _, ok := BackendForPath("x.gone"); ok {
		t.Error("extension still registered after Unregister")
	}
	Unregister("never-registered")
}

func TestBackendForPath(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("raster", ".PNG", func() Backend { return newMockBackend("raster") })
	Register("named", "", func() Backend { return newMockBackend("named") })

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"out.png", "raster", true},
		{"dir/OUT.Png", "raster", true},
		{"out.svg", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, ok := BackendForPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("BackendForPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}

	if ext, ok := Extension("raster"); !ok || ext != ".png" {
		t.Errorf("Extension(raster) = %q, %v", ext, ok)
	}
	if ext, ok := Extension("named"); !ok || ext != "" {
		t.Errorf("Extension(named) = %q, %v", ext, ok)
	}
}

func TestRegisterExtensionPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("svg", ".svg", func() Backend { return newMockBackend("svg") })

	tests := []struct {
		name, backend, ext string
	}{
		{"taken extension", "svg2", ".SVG"},
		{"missing dot", "bad", "svg"},
		{"dot only", "bad", "."},
		{"empty name", "", ".x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q, %q) did not panic", tt.backend, tt.ext)
				}
			}()
			Register(tt.backend, tt.ext, func() Backend { return newMockBackend(tt.backend) })
		})
	}
	if IsRegistered("svg2") || IsRegistered("bad") {
		t.Error("a rejected registration left a backend behind")
	}
}
