package names

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Jane Doe", []string{"Jane Doe"}},
		{"semicolons", "Jane Doe; John Smith", []string{"Jane Doe", "John Smith"}},
		{"ampersand", "Jane Doe & John Smith", []string{"Jane Doe", "John Smith"}},
		{"literal and", "Jane Doe and John Smith", []string{"Jane Doe", "John Smith"}},
		{"uppercase and", "Jane Doe AND John Smith", []string{"Jane Doe", "John Smith"}},
		{"and inside a name", "Alexander Graham Bell", []string{"Alexander Graham Bell"}},
		{"mixed separators", "A One; B Two & C Three and D Four", []string{"A One", "B Two", "C Three", "D Four"}},
		{"empty entries dropped", "Jane Doe;; ; John Smith", []string{"Jane Doe", "John Smith"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Parsing then re-joining with ";" is idempotent up to whitespace.
func TestParseRejoinIdempotent(t *testing.T) {
	inputs := []string{
		"Jane Doe; John Smith; Ann Lee",
		"Doe, Jane and Smith, John",
		"Cher",
	}
	for _, in := range inputs {
		once := strings.Join(Parse(in), "; ")
		twice := strings.Join(Parse(once), "; ")
		if once != twice {
			t.Errorf("rejoin not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		in   string
		want Name
	}{
		{"Jane Doe", Name{First: "Jane", Last: "Doe"}},
		{"Doe, Jane", Name{First: "Jane", Last: "Doe"}},
		{"Jane Q. Doe", Name{First: "Jane Q.", Last: "Doe"}},
		{"Cher", Name{Last: "Cher"}},
		{"  Doe ,  Jane ", Name{First: "Jane", Last: "Doe"}},
		{"", Name{}},
	}
	for _, tt := range tests {
		if got := Decompose(tt.in); got != tt.want {
			t.Errorf("Decompose(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Jane", "J."},
		{"Jane Q", "J. Q."},
		{"jane quinn", "J. Q."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Initials(tt.in); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinAPA(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"none", nil, ""},
		{"one", []string{"Jane Doe"}, "Doe, J."},
		{"two", []string{"Jane Doe", "John Smith"}, "Doe, J. & Smith, J."},
		{"three", []string{"Jane Doe", "John Smith", "Ann Lee"}, "Doe, J., Smith, J. & Lee, A."},
		{"single token degrades", []string{"Cher"}, "Cher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinAPA(tt.authors); got != tt.want {
				t.Errorf("JoinAPA(%v) = %q, want %q", tt.authors, got, tt.want)
			}
		})
	}
}

func TestJoinMLA(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"one", []string{"Jane Doe"}, "Doe, Jane"},
		{"two", []string{"Jane Doe", "John Smith"}, "Doe, Jane, and John Smith"},
		{"three et al", []string{"Jane Doe", "John Smith", "Ann Lee"}, "Doe, Jane, et al."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinMLA(tt.authors); got != tt.want {
				t.Errorf("JoinMLA(%v) = %q, want %q", tt.authors, got, tt.want)
			}
		})
	}
}

func TestJoinChicago(t *testing.T) {
	if got := JoinChicago([]string{"Jane Doe", "John Smith"}); got != "Doe, Jane and John Smith" {
		t.Errorf("two authors = %q, want %q", got, "Doe, Jane and John Smith")
	}
	if got := JoinChicago([]string{"Jane Doe", "John Smith", "Ann Lee"}); got != "Doe, Jane, et al." {
		t.Errorf("three authors = %q, want %q", got, "Doe, Jane, et al.")
	}
}

func TestJoinIEEE(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"one", []string{"Jane Doe"}, "J. Doe"},
		{"two", []string{"Jane Doe", "John Q Smith"}, "J. Doe, J. Q. Smith"},
		{"single token degrades", []string{"Cher"}, "Cher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinIEEE(tt.authors); got != tt.want {
				t.Errorf("JoinIEEE(%v) = %q, want %q", tt.authors, got, tt.want)
			}
		})
	}
}
