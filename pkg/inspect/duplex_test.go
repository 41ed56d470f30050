package inspect

import "testing"

func TestParseDuplex(t *testing.T) {
	tests := []struct {
		name string
		code int64
		want Duplex
	}{
		{"halfDuplex", 2, DuplexHalf},
		{"fullDuplex", 3, DuplexFull},
		{"unknown", 1, DuplexUnknown},
		{"zero", 0, DuplexUnknown},
		{"out of range", 99, DuplexUnknown},
		{"negative", -1, DuplexUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuplex(tt.code); got != tt.want {
				t.Errorf("ParseDuplex(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDuplexString(t *testing.T) {
	tests := []struct {
		d    Duplex
		want string
	}{
		{DuplexHalf, "half"},
		{DuplexFull, "full"},
		{DuplexUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Duplex(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestOperStatusString(t *testing.T) {
	tests := []struct {
		s    OperStatus
		want string
	}{
		{OperUp, "up"},
		{OperDown, "down"},
		{OperLowLayerDown, "lowerLayerDown"},
		{OperStatus(42), "other"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("OperStatus(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestOperStatusMarshalJSON(t *testing.T) {
	b, err := OperUp.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"up"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"up"`)
	}
}
