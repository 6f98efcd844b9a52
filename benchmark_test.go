package code39_test

import (
	"strings"
	"testing"

	"github.com/ericlevine/code39"
)

var benchTexts = []struct {
	name string
	text string
}{
	{"Empty", ""},
	{"StudentID", "FUAZ/23/AGR/0567"},
	{"Lowercase", "dr. aminu m. bello"},
	{"Long", strings.Repeat("CODE-39 ", 32)},
}

func BenchmarkEncode(b *testing.B) {
	for _, tc := range benchTexts {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				code39.Encode(tc.text)
			}
		})
	}
}

func BenchmarkLayout(b *testing.B) {
	for _, tc := range benchTexts {
		b.Run(tc.name, func(b *testing.B) {
			seq := code39.Encode(tc.text)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := code39.Layout(seq, 1.5, 40); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
