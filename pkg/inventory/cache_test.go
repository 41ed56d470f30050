package inventory

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCache_RoundTrip(t *testing.T) {
	c := NewCache(t.TempDir())

	ports := []Port{
		{Index: 1, Name: "FastEthernet0/1", Alias: "printer-3f"},
		{Index: 2, Name: "FastEthernet0/2"},
		{Index: 10101, Name: "GigabitEthernet0/1", Alias: "uplink-core"},
	}
	if err := c.Store("sw-access-01", ports); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := c.Load("sw-access-01")
	if !ok {
		t.Fatal("Load: cache miss after store")
	}
	if !reflect.DeepEqual(got, ports) {
		t.Errorf("Load = %+v, want %+v", got, ports)
	}
}

func TestCache_DeviceNameCaseInsensitive(t *testing.T) {
	c := NewCache(t.TempDir())

	if err := c.Store("SW-Access-01", []Port{{Index: 1, Name: "Fa0/1"}}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if _, ok := c.Load("sw-access-01"); !ok {
		t.Error("cache should be keyed on upper-cased device name")
	}
}

func TestCache_MissOnAbsent(t *testing.T) {
	c := NewCache(t.TempDir())

	if _, ok := c.Load("never-stored"); ok {
		t.Error("expected miss for device never stored")
	}
}

func TestCache_MissOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	path := filepath.Join(dir, "SW1-interfaces.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Load("sw1"); ok {
		t.Error("expected miss for corrupt cache file")
	}
}

func TestCache_StoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := NewCache(dir)

	if err := c.Store("sw1", []Port{{Index: 1, Name: "Fa0/1"}}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "SW1-interfaces.yaml")); err != nil {
		t.Errorf("cache file not created: %v", err)
	}
}
