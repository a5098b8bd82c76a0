package model

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"high", SeverityHigh, true},
		{"High", SeverityHigh, true},
		{"HIGH", SeverityHigh, true},
		{"medium", SeverityMedium, true},
		{"MeDiUm", SeverityMedium, true},
		{"low", SeverityLow, true},
		{"LOW", SeverityLow, true},
		{"critical", 0, false},
		{"moderate", 0, false},
		{"", 0, false},
		{"high ", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseSeverity(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseSeverity(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSeverityEncoding(t *testing.T) {
	// The on-disk contract: High=0, Medium=1, Low=2.
	if int(SeverityHigh) != 0 || int(SeverityMedium) != 1 || int(SeverityLow) != 2 {
		t.Fatalf("severity encoding changed: high=%d medium=%d low=%d",
			SeverityHigh, SeverityMedium, SeverityLow)
	}
}
