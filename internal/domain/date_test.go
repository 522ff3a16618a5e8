package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "2026-03-15", "2026-03-15", false},
		{"leap day", "2024-02-29", "2024-02-29", false},
		{"invalid leap day", "2023-02-29", "", true},
		{"wrong format", "15-03-2026", "", true},
		{"with time", "2026-03-15T10:00:00Z", "", true},
		{"empty", "", "", true},
		{"garbage", "not-a-date", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2026, time.March, 15)
	b := NewDate(2026, time.March, 16)

	if !a.Before(b) {
		t.Error("expected a.Before(b)")
	}
	if !b.After(a) {
		t.Error("expected b.After(a)")
	}
	if a.Equal(b) {
		t.Error("expected a != b")
	}
	if !a.Equal(NewDate(2026, time.March, 15)) {
		t.Error("expected equal dates to compare equal")
	}
}

func TestDateOf_TruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2026, time.March, 15, 23, 59, 58, 0, time.UTC))
	if d.String() != "2026-03-15" {
		t.Errorf("got %q, want 2026-03-15", d.String())
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.January, 2)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-01-02"` {
		t.Errorf("got %s, want %q", data, "2026-01-02")
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(d) {
		t.Errorf("round trip mismatch: got %v, want %v", got, d)
	}
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("zero date should marshal to null, got %s", data)
	}

	var got Date
	if err := json.Unmarshal([]byte("null"), &got); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !got.IsZero() {
		t.Error("null should unmarshal to the zero date")
	}
}

func TestDateJSONInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026/01/02"`), &d); err == nil {
		t.Error("expected error for slash-separated date")
	}
	if err := json.Unmarshal([]byte(`12345`), &d); err == nil {
		t.Error("expected error for numeric value")
	}
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{"string", "2026-03-15", "2026-03-15", false},
		{"bytes", []byte("2026-03-15"), "2026-03-15", false},
		{"timestamp string", "2026-03-15 00:00:00+00:00", "2026-03-15", false},
		{"time.Time", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC), "2026-03-15", false},
		{"nil", nil, "", false},
		{"empty string", "", "", false},
		{"unsupported type", 42, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("got %q, want %q", d.String(), tt.want)
			}
		})
	}
}

func TestDateValue(t *testing.T) {
	d := NewDate(2026, time.March, 15)
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "2026-03-15" {
		t.Errorf("got %v, want 2026-03-15", v)
	}

	var zero Date
	v, err = zero.Value()
	if err != nil {
		t.Fatalf("Value on zero: %v", err)
	}
	if v != nil {
		t.Errorf("zero date should store as NULL, got %v", v)
	}
}
