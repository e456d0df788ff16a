package markup

import (
	"strings"
	"testing"
)

// wrap surrounds a fragment with the preview wrapper.
func wrap(s string) string {
	return wrapperOpen + s + wrapperClose
}

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: wrap(""),
		},
		{
			name:     "only blank lines",
			input:    "\n  \n\t\n",
			expected: wrap(""),
		},
		{
			name:     "bold and italic paragraph",
			input:    "**bold** and *italic*",
			expected: wrap("<p><strong>bold</strong> and <em>italic</em></p>"),
		},
		{
			name:     "paragraph is trimmed",
			input:    "   hello   ",
			expected: wrap("<p>hello</p>"),
		},
		{
			name:     "unterminated list closes once",
			input:    "intro\n- item",
			expected: wrap("<p>intro</p>" + listOpen + "<li>item</li>" + listClose),
		},
		{
			name:     "switching list types closes the previous list",
			input:    "- a\n1. b",
			expected: wrap(listOpen + "<li>a</li>" + listClose + orderedListOpen + "<li>b</li>" + orderedListClose),
		},
		{
			name:     "blank line inside list keeps one container",
			input:    "- a\n\n- b",
			expected: wrap(listOpen + "<li>a</li><li>b</li>" + listClose),
		},
		{
			name:     "paragraph closes the list",
			input:    "- a\ntext",
			expected: wrap(listOpen + "<li>a</li>" + listClose + "<p>text</p>"),
		},
		{
			name:     "ordered items strip their number",
			input:    "1. one\n22. two",
			expected: wrap(orderedListOpen + "<li>one</li><li>two</li>" + orderedListClose),
		},
		{
			name:  "table with header separator",
			input: "| a | b |\n|---|---|\n| 1 | 2 |",
			expected: wrap(tableOpen +
				"<tr>" + tableCellOpen + "a</td>" + tableCellOpen + "b</td></tr>" +
				"<tr>" + tableCellOpen + "1</td>" + tableCellOpen + "2</td></tr>" +
				tableClose),
		},
		{
			name:     "uneven table rows are emitted as-is",
			input:    "| a |\n| 1 | 2 | 3 |",
			expected: wrap(tableOpen + "<tr>" + tableCellOpen + "a</td></tr><tr>" + tableCellOpen + "1</td>" + tableCellOpen + "2</td>" + tableCellOpen + "3</td></tr>" + tableClose),
		},
		{
			name:     "blockquote lines share one blockquote",
			input:    "> first\n> second",
			expected: wrap(blockquoteOpen + "<p>first</p><p>second</p>" + blockquoteClose),
		},
		{
			name:     "horizontal rules",
			input:    "---\n**\n___",
			expected: wrap(horizontalRule + horizontalRule + horizontalRule),
		},
		{
			name:     "headers",
			input:    "# One\n## Two\n### Three",
			expected: wrap(h1Open + h1Star + "One" + h1Star + "</h1>" + h2Open + "Two</h2>" + h3Open + "Three</h3>"),
		},
		{
			name:     "indented header is a paragraph",
			input:    "  # not a header",
			expected: wrap("<p># not a header</p>"),
		},
		{
			name:     "info box",
			input:    "[INFO] Read the manual",
			expected: wrap(infoBox + "Read the manual</div>"),
		},
		{
			name:  "step box with icon",
			input: "[#1] A | B",
			expected: wrap(`<div class="step-box step-box-1"><div class="icon"><i class="fa-solid fa-info-circle"></i></div>` +
				`<div class="text-content"><div class="title">#1: A</div><div class="description">B</div></div></div>`),
		},
		{
			name:  "step box without icon",
			input: "[#12] Title | Desc",
			expected: wrap(`<div class="step-box step-box-12"><div class="icon"></div>` +
				`<div class="text-content"><div class="title">#12: Title</div><div class="description">Desc</div></div></div>`),
		},
		{
			name:     "step title is non-greedy",
			input:    "[#2] a | b | c",
			expected: wrap(`<div class="step-box step-box-2"><div class="icon"><i class="fa-solid fa-lightbulb"></i></div><div class="text-content"><div class="title">#2: a</div><div class="description">b | c</div></div></div>`),
		},
		{
			name:     "unterminated bold passes through",
			input:    "a ** b",
			expected: wrap("<p>a ** b</p>"),
		},
		{
			name:     "CR characters are trimmed from lines",
			input:    "- a\r\n- b\r",
			expected: wrap(listOpen + "<li>a</li><li>b</li>" + listClose),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q)\n got: %s\nwant: %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTransform_BalancedContainers(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"- a",
		"1. a",
		"| a |",
		"> a",
		"- a\n1. b\n| c |\n> d",
		"> a\n\n> b\n- c\n\n\n2. d\n|x|y|\n|---|\ntext",
		"| a |\n- b\n| c |\n> d\n- e",
		"[#1] A | B\n- x\n# H\n| t |",
		strings.Repeat("- a\n| b |\n", 50),
	}

	pairs := [][2]string{
		{listOpen, listClose},
		{orderedListOpen, orderedListClose},
		{"<table ", "</table>"},
		{"<blockquote ", "</blockquote>"},
	}

	for _, input := range inputs {
		got := Transform(input)
		for _, p := range pairs {
			opens := strings.Count(got, p[0])
			closes := strings.Count(got, p[1])
			if opens != closes {
				t.Errorf("Transform(%q): %d x %q but %d x %q", input, opens, p[0], closes, p[1])
			}
		}
	}
}

func TestTransform_SingleWrapper(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "text", "- a\n- b", "[#3] x | y", "***", "| |"}
	for _, input := range inputs {
		got := Transform(input)
		if !strings.HasPrefix(got, wrapperOpen) || !strings.HasSuffix(got, wrapperClose) {
			t.Errorf("Transform(%q) = %q, want wrapped output", input, got)
		}
		if n := strings.Count(got, wrapperOpen); n != 1 {
			t.Errorf("Transform(%q) has %d wrappers, want 1", input, n)
		}
	}
}

func TestTransform_SeparatorRowsHidden(t *testing.T) {
	t.Parallel()

	got := Transform("|---|---|\n| --- |\n|:---:|")
	if strings.Contains(got, "<tr>") {
		t.Errorf("separator rows rendered: %s", got)
	}
	if !strings.Contains(got, tableOpen) || !strings.Contains(got, tableClose) {
		t.Errorf("expected an (empty) table container: %s", got)
	}
}

func TestTransform_StepPrecedence(t *testing.T) {
	t.Parallel()

	got := Transform("[#1] A | B")
	if strings.Contains(got, "<p>") {
		t.Errorf("step box rendered as paragraph: %s", got)
	}
	if !strings.Contains(got, `step-box-1`) || !strings.Contains(got, StepIcon("1")) {
		t.Errorf("expected step 1 box with icon: %s", got)
	}
}

func FuzzTransform(f *testing.F) {
	seeds := []string{"", "- a", "| a |\n|---|", "**b** *i*", "[#1] a | b", "> q\n\n> r", "![x](y) [a](b) `c`"}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		got := Transform(input)
		if !strings.HasPrefix(got, wrapperOpen) || !strings.HasSuffix(got, wrapperClose) {
			t.Fatalf("unwrapped output for %q", input)
		}
	})
}
