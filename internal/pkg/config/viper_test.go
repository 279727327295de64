package config

import (
	"reflect"
	"testing"
	"time"
)

func testConfig(t *testing.T) *Viper {
	t.Helper()

	raw := []byte(`
app:
  name: storemvp
  env: development
  debug: true
  port: 8080
  ratio: 0.25
  timeout_seconds: 30
  ttl_minutes: 5
  cors: "http://a.test, http://b.test"
  labels: "env:dev,team:store"
`)

	cfg, err := NewViperFromBytes("yaml", raw)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestViperScalars(t *testing.T) {
	// Arrange
	cfg := testConfig(t)

	// Assert
	if got := cfg.GetString("app.name"); got != "storemvp" {
		t.Fatalf("unexpected string: %q", got)
	}
	if !cfg.GetBool("app.debug") {
		t.Fatal("expected bool true")
	}
	if got := cfg.GetInt("app.port"); got != 8080 {
		t.Fatalf("unexpected int: %d", got)
	}
	if got := cfg.GetFloat64("app.ratio"); got != 0.25 {
		t.Fatalf("unexpected float: %v", got)
	}
}

func TestViperDurations(t *testing.T) {
	// Arrange
	cfg := testConfig(t)

	// Assert
	if got := cfg.GetSecond("app.timeout_seconds"); got != 30*time.Second {
		t.Fatalf("unexpected seconds: %v", got)
	}
	if got := cfg.GetMinute("app.ttl_minutes"); got != 5*time.Minute {
		t.Fatalf("unexpected minutes: %v", got)
	}
}

func TestViperGetArray(t *testing.T) {
	// Arrange
	cfg := testConfig(t)

	// Act
	got := cfg.GetArray("app.cors")

	// Assert
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected array: %v", got)
	}
}

func TestViperGetArrayMissingKey(t *testing.T) {
	// Arrange
	cfg := testConfig(t)

	// Act
	got := cfg.GetArray("does.not.exist")

	// Assert
	if got != nil {
		t.Fatalf("expected nil for missing key, got %v", got)
	}
}

func TestViperGetMap(t *testing.T) {
	// Arrange
	cfg := testConfig(t)

	// Act
	got := cfg.GetMap("app.labels")

	// Assert
	want := map[string]string{"env": "dev", "team": "store"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected map: %v", got)
	}
}

func TestViperMissingScalarZeroValues(t *testing.T) {
	// Arrange
	cfg := testConfig(t)

	// Assert
	if got := cfg.GetString("missing"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := cfg.GetInt("missing"); got != 0 {
		t.Fatalf("expected zero, got %d", got)
	}
	if cfg.GetBool("missing") {
		t.Fatal("expected false")
	}
}

func TestNewViperFromBytesRequiresType(t *testing.T) {
	// Act
	_, err := NewViperFromBytes("  ", []byte("a: 1"))

	// Assert
	if err == nil {
		t.Fatal("expected error for missing config type")
	}
}
