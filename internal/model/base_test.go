package model

import (
	"reflect"
	"testing"
)

func TestStringArray_ScanQuotedElements(t *testing.T) {
	var a StringArray
	if err := a.Scan(`{"laudo a,b.pdf","foto \"final\".jpg",simples.pdf}`); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := StringArray{"laudo a,b.pdf", `foto "final".jpg`, "simples.pdf"}
	if !reflect.DeepEqual(a, want) {
		t.Errorf("scanned = %#v, want %#v", a, want)
	}
}

func TestStringArray_ScanEmpty(t *testing.T) {
	var a StringArray
	if err := a.Scan("{}"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if a == nil || len(a) != 0 {
		t.Errorf("scanned = %#v, want empty non-nil array", a)
	}

	if err := a.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if a != nil {
		t.Errorf("scanned nil source = %#v, want nil", a)
	}
}

func TestStringArray_RoundTrip(t *testing.T) {
	in := StringArray{"laudo a,b.pdf", `foto "final".jpg`, `rel\atorio.pdf`}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out StringArray
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip = %#v, want %#v", out, in)
	}
}
