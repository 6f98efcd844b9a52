package code39

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

// expand returns the modules Encode should produce for an already framed and
// uppercased string.
func expand(framed string) Sequence {
	var seq Sequence
	for i, r := range []rune(framed) {
		if i > 0 {
			seq = append(seq, Module{Space, Narrow})
		}
		m := Lookup(r).Modules()
		seq = append(seq, m[:]...)
	}
	return seq
}

func equalSequences(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEncodeSingleCharacter(t *testing.T) {
	seq := Encode("A")
	if len(seq) != 29 {
		t.Fatalf("len = %d, want 29", len(seq))
	}
	want := "BnSwBnSnBwSnBwSnBn" + "Sn" + // *
		"BwSnBnSnBnSwBnSnBw" + "Sn" + // A
		"BnSwBnSnBwSnBwSnBn" // *
	if got := seq.String(); got != want {
		t.Errorf("Encode(\"A\") =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeEveryCharacterLength(t *testing.T) {
	for _, r := range Alphabet {
		seq := Encode(string(r))
		if len(seq) != 29 {
			t.Errorf("len(Encode(%q)) = %d, want 29", r, len(seq))
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	seq := Encode("")
	if len(seq) != 19 {
		t.Fatalf("len = %d, want 19", len(seq))
	}
	if !equalSequences(seq, expand("**")) {
		t.Errorf("Encode(\"\") = %s, want two sentinels", seq)
	}
	if seq[9] != (Module{Space, Narrow}) {
		t.Errorf("gap = %v, want narrow space", seq[9])
	}
}

func TestEncodeFramedBySentinels(t *testing.T) {
	star := Lookup(Sentinel).Modules()
	for _, in := range []string{"", "A", "HELLO WORLD", "@@@", "**", "fuaz/23/agr/0567"} {
		seq := Encode(in)
		head := seq[:PatternLen]
		tail := seq[len(seq)-PatternLen:]
		for i := 0; i < PatternLen; i++ {
			if head[i] != star[i] || tail[i] != star[i] {
				t.Errorf("Encode(%q): sentinel mismatch at element %d", in, i)
				break
			}
		}
	}
}

func TestEncodeMatchesExpansion(t *testing.T) {
	tests := []string{"HELLO", "12345", "TEST-123", "A B.C", "A/B"}
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			if got, want := Encode(tc), expand("*"+tc+"*"); !equalSequences(got, want) {
				t.Errorf("Encode(%q) = %s, want %s", tc, got, want)
			}
		})
	}
}

func TestEncodeCaseInsensitive(t *testing.T) {
	for _, in := range []string{"abc", "Hello World", "fuaz/23/agr/0567", "xyz-9"} {
		if !equalSequences(Encode(in), Encode(strings.ToUpper(in))) {
			t.Errorf("Encode(%q) differs from its uppercase form", in)
		}
	}
}

func TestEncodeUnicodeUppercase(t *testing.T) {
	// Full case mapping turns one rune into two.
	if got, want := Encode("ß"), Encode("SS"); !equalSequences(got, want) {
		t.Errorf("Encode(\"ß\") = %s, want %s", got, want)
	}
}

func TestEncodeUnsupportedBecomesSpace(t *testing.T) {
	seq := Encode("@")
	if len(seq) != 29 {
		t.Fatalf("len = %d, want 29", len(seq))
	}
	space := Lookup(' ').Modules()
	for i := 0; i < PatternLen; i++ {
		if got := seq[PatternLen+1+i]; got != space[i] {
			t.Errorf("element %d = %v, want %v", i, got, space[i])
		}
	}
	for _, in := range []string{"A@B", "A$B", "A+B", "A%B"} {
		if !equalSequences(Encode(in), Encode("A B")) {
			t.Errorf("Encode(%q) should equal Encode(\"A B\")", in)
		}
	}
}

func TestEncodeAstralRuneIsOneCharacter(t *testing.T) {
	seq := Encode("\U0001F600")
	if len(seq) != 29 {
		t.Fatalf("len = %d, want 29", len(seq))
	}
	if !equalSequences(seq, Encode(" ")) {
		t.Errorf("Encode(emoji) = %s, want one space pattern", seq)
	}
	_, err := NewEncoder(Strict).Encode("A\U0001F600B")
	var uce *UnsupportedCharacterError
	if !errors.As(err, &uce) || uce.Index != 1 || uce.Char != '\U0001F600' {
		t.Errorf("strict error = %v, want emoji at index 1", err)
	}
}

func TestEncodeBarCount(t *testing.T) {
	for _, in := range []string{"", "A", "CODE39", "@é"} {
		seq := Encode(in)
		n := len([]rune(strings.ToUpper(in))) + 2
		if got, want := seq.Bars(), 5*n; got != want {
			t.Errorf("Encode(%q).Bars() = %d, want %d", in, got, want)
		}
	}
}

func TestEncoded(t *testing.T) {
	for _, in := range []string{"", "A", "hello", "ß", "FUAZ/STF/00123"} {
		if got, want := Encoded(in), len(Encode(in)); got != want {
			t.Errorf("Encoded(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestEncoderStrict(t *testing.T) {
	enc := NewEncoder(Strict)
	if enc.Mode() != Strict {
		t.Fatalf("mode = %v, want strict", enc.Mode())
	}

	seq, err := enc.Encode("abc-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalSequences(seq, Encode("ABC-123")) {
		t.Error("strict output differs from lenient output for valid input")
	}

	tests := []struct {
		in    string
		char  rune
		index int
	}{
		{"AB@C", '@', 2},
		{"A*B", '*', 1},
		{"é", 'É', 0},
		{"#", '#', 0},
		{"10%", '%', 2},
		{"$5", '$', 0},
	}
	for _, tc := range tests {
		_, err := enc.Encode(tc.in)
		if !errors.Is(err, ErrUnsupportedCharacter) {
			t.Errorf("Encode(%q) error = %v, want ErrUnsupportedCharacter", tc.in, err)
			continue
		}
		var uce *UnsupportedCharacterError
		if !errors.As(err, &uce) {
			t.Fatalf("error %T is not *UnsupportedCharacterError", err)
		}
		if uce.Char != tc.char || uce.Index != tc.index {
			t.Errorf("Encode(%q) rejected %q at %d, want %q at %d", tc.in, uce.Char, uce.Index, tc.char, tc.index)
		}
	}
}

func TestEncoderLenientNeverFails(t *testing.T) {
	enc := NewEncoder(Lenient)
	for _, in := range []string{"", "@", "***", "\xff\xfe", strings.Repeat("x", 1000)} {
		seq, err := enc.Encode(in)
		if err != nil {
			t.Errorf("Encode(%q) error = %v", in, err)
		}
		if !equalSequences(seq, Encode(in)) {
			t.Errorf("Encoder.Encode(%q) differs from Encode", in)
		}
	}
}

func TestEncodeConcurrent(t *testing.T) {
	want := Encode("CONCURRENT-39").String()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Encode("concurrent-39").String(); got != want {
					t.Errorf("concurrent encode mismatch: %s", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestModeString(t *testing.T) {
	if Lenient.String() != "lenient" || Strict.String() != "strict" || Mode(9).String() != "unknown" {
		t.Error("unexpected mode names")
	}
}
