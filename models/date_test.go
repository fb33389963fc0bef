package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2022, time.February, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2022-02-15"` {
		t.Fatalf("expected \"2022-02-15\" got %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.String() != "2022-02-15" {
		t.Fatalf("round trip mismatch: %s", back)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15/02/2022"`), &d); err == nil {
		t.Fatal("expected parse error for non-ISO date")
	}
	if err := json.Unmarshal([]byte(`""`), &d); err == nil {
		t.Fatal("expected parse error for empty string")
	}
}

func TestDateUnmarshalNullIsNoop(t *testing.T) {
	d := NewDate(2022, time.February, 15)
	if err := d.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("null must be accepted: %v", err)
	}
	if d.String() != "2022-02-15" {
		t.Fatalf("null must not clobber the value, got %s", d)
	}
}

func TestDateScanVariants(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)); err != nil || d.String() != "2023-07-01" {
		t.Fatalf("scan time.Time: %v %s", err, d)
	}
	if err := d.Scan("2024-01-31"); err != nil || d.String() != "2024-01-31" {
		t.Fatalf("scan string: %v %s", err, d)
	}
	if err := d.Scan([]byte("2020-12-24")); err != nil || d.String() != "2020-12-24" {
		t.Fatalf("scan bytes: %v %s", err, d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error scanning int")
	}
}

func TestDateValueUsesISOLayout(t *testing.T) {
	v, err := NewDate(2022, time.February, 15).Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2022-02-15" {
		t.Fatalf("expected 2022-02-15 got %v", v)
	}
}
