package tree

import (
	"bytes"
	"strings"
	"testing"
)

type letterIcons struct{}

func (letterIcons) FileIcon(name string) string   { return "F" }
func (letterIcons) FolderIcon(name string) string { return "D" }

func TestLinesRendersHierarchy(t *testing.T) {
	testCases := []struct {
		name     string
		paths    []string
		options  RenderOptions
		expected []string
	}{
		{
			name:  "nested_without_icons",
			paths: []string{"a/b.txt", "a/c.txt", "d.txt"},
			expected: []string{
				".",
				"├── a",
				"│   ├── b.txt",
				"│   └── c.txt",
				"└── d.txt",
			},
		},
		{
			name:     "single_file",
			paths:    []string{"README.md"},
			expected: []string{".", "└── README.md"},
		},
		{
			name:  "directories_before_files",
			paths: []string{"z.txt", "b/x.go", "a.txt", "c/y.go"},
			expected: []string{
				".",
				"├── b",
				"│   └── x.go",
				"├── c",
				"│   └── y.go",
				"├── a.txt",
				"└── z.txt",
			},
		},
		{
			name:  "nested_directory_continues_padding",
			paths: []string{"top.txt", "z/inner/deep.txt", "z/last.txt"},
			expected: []string{
				".",
				"├── z",
				"│   ├── inner",
				"│   │   └── deep.txt",
				"│   └── last.txt",
				"└── top.txt",
			},
		},
		{
			name:  "only_directory_at_root",
			paths: []string{"a/b/c.txt"},
			expected: []string{
				".",
				"└── a",
				"    └── b",
				"        └── c.txt",
			},
		},
		{
			name:  "byte_order_places_uppercase_first",
			paths: []string{"b.txt", "B.txt", "a.txt"},
			expected: []string{
				".",
				"├── B.txt",
				"├── a.txt",
				"└── b.txt",
			},
		},
		{
			name:    "icons_prefix_names",
			paths:   []string{"src/main.go", "notes.txt"},
			options: RenderOptions{Icons: letterIcons{}, ShowIcons: true},
			expected: []string{
				".",
				"├── D src",
				"│   └── F main.go",
				"└── F notes.txt",
			},
		},
		{
			name:     "icons_hidden_when_disabled",
			paths:    []string{"src/main.go"},
			options:  RenderOptions{Icons: letterIcons{}, ShowIcons: false},
			expected: []string{".", "└── src", "    └── main.go"},
		},
		{
			name:     "empty_input",
			paths:    nil,
			expected: []string{"."},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := Lines(Build(testCase.paths), testCase.options)
			if strings.Join(actual, "\n") != strings.Join(testCase.expected, "\n") {
				t.Fatalf("unexpected lines:\n%s\nexpected:\n%s", strings.Join(actual, "\n"), strings.Join(testCase.expected, "\n"))
			}
		})
	}
}

func TestLinesDoesNotExpandEmptyDirectory(t *testing.T) {
	root := NewDirectory()
	root.Children["empty"] = NewDirectory()
	root.Children["file.txt"] = &File{}

	actual := Lines(root, RenderOptions{})
	expected := []string{".", "├── empty", "└── file.txt"}
	if strings.Join(actual, "\n") != strings.Join(expected, "\n") {
		t.Fatalf("unexpected lines: %q", actual)
	}
}

func TestLinesUsesOneLastConnectorPerDirectory(t *testing.T) {
	root := Build([]string{"a/1", "a/2", "a/3", "b/4", "c", "d"})
	lines := Lines(root, RenderOptions{})

	lastConnectors := 0
	for _, line := range lines[1:] {
		if strings.Contains(line, lastConnector) {
			lastConnectors++
		}
	}
	// root, a and b each close with exactly one last entry
	if lastConnectors != 3 {
		t.Fatalf("expected 3 last connectors, got %d in %q", lastConnectors, lines)
	}
	if lines[len(lines)-1] != "└── d" {
		t.Fatalf("expected final line to close the root, got %q", lines[len(lines)-1])
	}
}

func TestRenderWritesOneLinePerRow(t *testing.T) {
	buffer := &bytes.Buffer{}
	if err := Render(buffer, Build([]string{"a/b.txt"}), RenderOptions{}); err != nil {
		t.Fatalf("render error: %v", err)
	}
	expected := ".\n└── a\n    └── b.txt\n"
	if buffer.String() != expected {
		t.Fatalf("unexpected output %q", buffer.String())
	}
}

func TestEntryIcon(t *testing.T) {
	options := RenderOptions{Icons: letterIcons{}, ShowIcons: true}
	if icon := EntryIcon(Entry{Name: "dir", Node: NewDirectory()}, options); icon != "D" {
		t.Fatalf("expected folder icon, got %q", icon)
	}
	if icon := EntryIcon(Entry{Name: "file", Node: &File{}}, options); icon != "F" {
		t.Fatalf("expected file icon, got %q", icon)
	}
	if icon := EntryIcon(Entry{Name: "file", Node: &File{}}, RenderOptions{ShowIcons: true}); icon != "" {
		t.Fatalf("expected no icon without lookup, got %q", icon)
	}
}
