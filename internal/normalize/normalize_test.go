package normalize

import "testing"

// ---------------------------------------------------------------------------
// TestDOM - Canonical form
// ---------------------------------------------------------------------------

func TestDOM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
		{"paragraph", "<p>Hello</p>", "<p>\n Hello\n</p>\n"},
		{"nested", "<ul><li>a</li></ul>", "<ul>\n <li>\n  a\n </li>\n</ul>\n"},
		{"void element", "a<br/>b", "a\n<br>\nb\n"},
		{"sorted attributes", `<a title="t" href="u">x</a>`, "<a href=\"u\" title=\"t\">\n x\n</a>\n"},
		{"comment", "<!-- note -->", "<!--note-->\n"},
		{"entities are decoded then escaped", "<p>&#38; &amp;</p>", "<p>\n &amp; &amp;\n</p>\n"},
		{"pre is verbatim", "<pre><code>a\n  b\n</code></pre>", "<pre>\n <code>a\\n  b\\n</code>\n</pre>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DOM(tt.input)
			if err != nil {
				t.Fatalf("DOM(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DOM(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEqual - DOM equivalence
// ---------------------------------------------------------------------------

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "<h1>Hello</h1>", "<h1>Hello</h1>", true},
		{"indentation differs", "<p>a</p>\n<p>b</p>", "<p>\n  a\n</p><p>b</p>\n\n", true},
		{"attribute order", `<img src="x" alt="y">`, `<img alt="y" src="x" />`, true},
		{"quote style", `<a href='u'>x</a>`, `<a href="u">x</a>`, true},
		{"inner whitespace runs", "<p>a   b\nc</p>", "<p>a b c</p>", true},
		{"tag case", "<EM>x</EM>", "<em>x</em>", true},
		{"different text", "<p>a</p>", "<p>b</p>", false},
		{"different tag", "<em>a</em>", "<strong>a</strong>", false},
		{"different attribute value", `<h1 id="a">x</h1>`, `<h1 id="b">x</h1>`, false},
		{"pre whitespace matters", "<pre>a  b</pre>", "<pre>a b</pre>", false},
		{"unclosed paragraph", "<p>a", "<p>a</p>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Equal(tt.a, tt.b); got != tt.want {
				na, _ := DOM(tt.a)
				nb, _ := DOM(tt.b)
				t.Errorf("Equal() = %v, want %v\na: %q\nb: %q", got, tt.want, na, nb)
			}
		})
	}
}
