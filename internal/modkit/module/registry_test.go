package module

import "testing"

type notifyPorts struct{ Threshold int }

func TestRegistry_RoundTrip(t *testing.T) {
	t.Cleanup(Reset)

	Register("alert", notifyPorts{Threshold: 40})

	got, ok := PortsAs[notifyPorts]("alert")
	if !ok {
		t.Fatal("ports not found")
	}
	if got.Threshold != 40 {
		t.Fatalf("threshold = %d, want 40", got.Threshold)
	}
}

func TestRegistry_MissingName(t *testing.T) {
	t.Cleanup(Reset)

	if _, ok := PortsAs[notifyPorts]("nope"); ok {
		t.Fatal("want ok=false for missing name")
	}
}

func TestRegistry_WrongType(t *testing.T) {
	t.Cleanup(Reset)

	Register("alert", "not a port set")
	if _, ok := PortsAs[notifyPorts]("alert"); ok {
		t.Fatal("want ok=false for wrong type")
	}
}
