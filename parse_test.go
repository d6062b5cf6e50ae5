package lispcalc

import (
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Expr
	}{
		{"int", "3", Number(3)},
		{"float", "3.5", Number(3.5)},
		{"neg", "-3", Number(-3)},
		{"exp", "1e2", Number(100)},
		{"radix", "#o10", Number(8)},
		{"add", "+", OpAdd},
		{"sub", "-", OpSub},
		{"leq", "<=", OpLeq},
		{"geq", ">=", OpGeq},
		{"symbol", "abc", Symbol("abc")},
		{"empty", "()", List{}},
		{"empty-space", "(   )", List{}},
		{"outer-space", "  ()\t\n", List{}},
		{"sum", "(+ 1 2)", List{OpAdd, Number(1), Number(2)}},
		{"sum-float", "(+ 1.0 2.0)", List{OpAdd, Number(1), Number(2)}},
		{"inner-space", "( + 1  2 )", List{OpAdd, Number(1), Number(2)}},
		{"newlines", "(+\n1\n2)", List{OpAdd, Number(1), Number(2)}},
		{"nbsp", "(+\u00a01 2)", List{OpAdd, Number(1), Number(2)}},
		{"greek", "(+ π 1)", List{OpAdd, Symbol("π"), Number(1)}},
		{"nested", "(+ 1 2 (+ 1 1 1))", List{OpAdd, Number(1), Number(2), List{OpAdd, Number(1), Number(1), Number(1)}}},
		{"deep", "((((1))))", List{List{List{List{Number(1)}}}}},
		{"leq-list", "(<= 1 2)", List{OpLeq, Number(1), Number(2)}},
		{"geq-list", "(>= 1 2)", List{OpGeq, Number(1), Number(2)}},
		{"neg-operand", "(- -1 +2)", List{OpSub, Number(-1), Number(2)}},
		{"symbols", "(x y)", List{Symbol("x"), Symbol("y")}},
		{"empty-inside", "(() ())", List{List{}, List{}}},
		{"mod", "(% 7 2)", List{OpMod, Number(7), Number(2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if !Equal(a, c.want) {
				t.Errorf("%q parsed wrong:\nwant %s\ngot  %s", c.src, spew.Sdump(c.want), spew.Sdump(a))
			}
		})
	}
}

func TestParseDigitsAreNumbers(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		src := strconv.Itoa(i)
		a, err := Parse(src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", src, err)
		}
		n, ok := a.(Number)
		if !ok {
			t.Fatalf("%q parsed as %s", src, spew.Sdump(a))
		}
		if float64(n) != float64(i) {
			t.Errorf("%q parsed as %g", src, float64(n))
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		kind interface{}
	}{
		{"empty", "", 1, (*SyntaxError)(nil)},
		{"blank", "   ", 4, (*SyntaxError)(nil)},
		{"close", ")", 1, (*SyntaxError)(nil)},
		{"extra-close", "(+ 1 2))", 8, (*SyntaxError)(nil)},
		{"unclosed", "(+ 1 2", 1, (*SyntaxError)(nil)},
		{"unclosed-inner", "(+ 1 (- 2", 6, (*SyntaxError)(nil)},
		{"no-space", "(+ 1(+ 2 3))", 5, (*SyntaxError)(nil)},
		{"no-space-sym", "(+ 1x)", 5, (*SyntaxError)(nil)},
		{"trailing", "1 2", 3, (*SyntaxError)(nil)},
		{"trailing-list", "() ()", 4, (*SyntaxError)(nil)},
		{"bad-char", "(+ 1 $)", 6, (*SyntaxError)(nil)},
		{"underscore", "_", 1, (*SyntaxError)(nil)},
		{"dot", "(+ . 1)", 4, (*SyntaxError)(nil)},
		{"radix-empty", "(+ #o)", 4, (*SyntaxError)(nil)},
		{"too-big", "(+ 1e400)", 4, (*ValueError)(nil)},
		{"too-small", "(+ 1e-400)", 4, (*ValueError)(nil)},
		{"bad-base", "(+ #x10 1)", 4, (*ValueError)(nil)},
		{"utf8", "(+ \xff)", 4, (*SyntaxError)(nil)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, a)
			}
			if a != nil {
				t.Errorf("%q gave non-nil result %v with error", c.src, a)
			}
			ie, ok := err.(InputError)
			if !ok {
				t.Fatalf("%q gave %#v, which is not an InputError", c.src, err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q gave error at %d, want %d: %v", c.src, ie.Pos(), c.col, err)
			}
			switch c.kind.(type) {
			case *SyntaxError:
				if _, ok := err.(*SyntaxError); !ok {
					t.Errorf("%q gave %#v, want *SyntaxError", c.src, err)
				}
			case *ValueError:
				if _, ok := err.(*ValueError); !ok {
					t.Errorf("%q gave %#v, want *ValueError", c.src, err)
				}
			}
			if !strings.HasPrefix(err.Error(), strconv.Itoa(c.col)+": ") {
				t.Errorf("%q error message %q lacks position", c.src, err.Error())
			}
		})
	}
}

func TestParsePrefix(t *testing.T) {
	cases := []struct {
		src  string
		want Expr
		rest string
	}{
		{"1", Number(1), ""},
		{"  1 2", Number(1), " 2"},
		{"(+ 1 2) tail", List{OpAdd, Number(1), Number(2)}, " tail"},
		{"()()", List{}, "()"},
		{"<=>", OpLeq, ">"},
		{"abc123", Symbol("abc"), "123"},
		{"-1)", Number(-1), ")"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			a, rest, err := ParsePrefix(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if !Equal(a, c.want) {
				t.Errorf("%q parsed wrong:\nwant %s\ngot  %s", c.src, spew.Sdump(c.want), spew.Sdump(a))
			}
			if rest != c.rest {
				t.Errorf("%q left %q, want %q", c.src, rest, c.rest)
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	src := "((((1))))"
	if _, err := Parse(src, MaxDepth(4)); err != nil {
		t.Errorf("%q with depth 4 failed: %v", src, err)
	}
	_, err := Parse(src, MaxDepth(3))
	se, _ := err.(*SyntaxError)
	if se == nil {
		t.Fatalf("%q with depth 3 gave %#v, want *SyntaxError", src, err)
	}
	if se.Col != 4 {
		t.Errorf("depth error at %d, want 4", se.Col)
	}
	deep := strings.Repeat("(", DefaultMaxDepth+1) + strings.Repeat(")", DefaultMaxDepth+1)
	if _, err := Parse(deep); err == nil {
		t.Error("nesting past the default depth parsed")
	}
	ok := strings.Repeat("(", DefaultMaxDepth) + strings.Repeat(")", DefaultMaxDepth)
	if _, err := Parse(ok); err != nil {
		t.Errorf("nesting to the default depth failed: %v", err)
	}
}

func TestParseOptions(t *testing.T) {
	if _, err := Parse("#b1", DisableRadixLiterals()); err == nil {
		t.Error("radix literal parsed with radix literals disabled")
	}
	preset := ParsingPreset(MaxDepth(1), DisableRadixLiterals())
	if _, err := Parse("(1)", preset); err != nil {
		t.Errorf("preset rejected depth 1: %v", err)
	}
	if _, err := Parse("((1))", preset); err == nil {
		t.Error("preset allowed depth 2")
	}
	if _, err := Parse("#d1", preset); err == nil {
		t.Error("preset allowed radix literal")
	}
	if _, err := Parse("((1))", preset, MaxDepth(2)); err != nil {
		t.Errorf("option after preset didn't apply: %v", err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("preset after option didn't panic")
			}
		}()
		Parse("1", MaxDepth(2), preset)
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("MaxDepth(0) didn't panic")
			}
		}()
		MaxDepth(0)
	}()
}

func TestParseString(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"1", "1"},
		{"1.50", "1.5"},
		{"()", "()"},
		{"(  +   1 2.5  )", "(+ 1 2.5)"},
		{"(<= x (% 7 2))", "(<= x (% 7 2))"},
		{"#b11", "3"},
		{"1e21", "1e+21"},
	}
	for _, c := range cases {
		a, err := Parse(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if s := a.String(); s != c.want {
			t.Errorf("%q formatted as %q, want %q", c.src, s, c.want)
		}
		// The canonical form must parse to the same tree.
		b, err := Parse(a.String())
		if err != nil || !Equal(a, b) {
			t.Errorf("%q canonical form %q reparsed as %v, %v", c.src, a.String(), b, err)
		}
	}
}
