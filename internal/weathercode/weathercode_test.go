package weathercode

import "testing"

func TestLookupCoversEveryDocumentedCode(t *testing.T) {
	codes := Codes()
	if len(codes) != 28 {
		t.Fatalf("Expected 28 documented codes, got %d", len(codes))
	}
	for _, code := range codes {
		cond := Lookup(code)
		if cond == Unknown {
			t.Errorf("Documented code %d fell through to the fallback", code)
		}
		if cond.Icon == "" || cond.Description == "" {
			t.Errorf("Code %d has an incomplete condition: %+v", code, cond)
		}
	}
}

func TestCodesAreMutuallyExclusive(t *testing.T) {
	seen := make(map[int]bool)
	for _, code := range Codes() {
		if seen[code] {
			t.Errorf("Code %d appears in more than one bucket", code)
		}
		seen[code] = true
	}
}

func TestLookupFallback(t *testing.T) {
	for _, code := range []int{-1, 4, 42, 50, 90, 100, 9999} {
		if got := Lookup(code); got != Unknown {
			t.Errorf("Expected fallback for code %d, got %+v", code, got)
		}
		if IconFor(code) != Unknown.Icon {
			t.Errorf("Expected fallback icon for code %d", code)
		}
		if DescriptionFor(code) != "Condición desconocida" {
			t.Errorf("Expected fallback description for code %d, got %s", code, DescriptionFor(code))
		}
	}
}

func TestLookupKnownBuckets(t *testing.T) {
	tests := []struct {
		code            int
		wantIcon        string
		wantDescription string
	}{
		{0, "☀️", "Cielo despejado"},
		{1, "⛅", "Nublado"},
		{3, "⛅", "Nublado"},
		{48, "🌫️", "Niebla"},
		{55, "🌦️", "Llovizna"},
		{65, "🌧️", "Lluvia"},
		{75, "❄️", "Nieve"},
		{77, "❄️", "Granos de nieve"},
		{82, "🌦️", "Chubascos"},
		{86, "🌨️", "Chubascos de nieve"},
		{95, "⛈️", "Tormenta"},
		{99, "⛈️", "Tormenta con granizo"},
	}
	for _, tt := range tests {
		if got := IconFor(tt.code); got != tt.wantIcon {
			t.Errorf("IconFor(%d) = %s, want %s", tt.code, got, tt.wantIcon)
		}
		if got := DescriptionFor(tt.code); got != tt.wantDescription {
			t.Errorf("DescriptionFor(%d) = %s, want %s", tt.code, got, tt.wantDescription)
		}
	}
}
