// Package output encodes a rendered repository tree as raw text, JSON, or XML.
package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/Diplo2by/riptree/internal/tree"
	"github.com/Diplo2by/riptree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	tokenLineFormat         = "Tokens: %d (%s)"
	errorUnsupportedFormat  = "unsupported output format %q"
	errorEncodeReportFormat = "encode %s report: %w"
)

// Document carries everything a format needs to render one run.
type Document struct {
	Root    *tree.Directory
	Options tree.RenderOptions
	Summary tree.Summary
	Tokens  int
	Model   string
}

// IsSupportedFormat reports whether format is one of raw, json, or xml.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// Render encodes the document in the requested format.
func Render(format string, document Document) (string, error) {
	switch format {
	case types.FormatRaw:
		return RenderRaw(document), nil
	case types.FormatJSON:
		return RenderJSON(document)
	case types.FormatXML:
		return RenderXML(document)
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// RenderRaw returns the tree lines, a blank line, the summary line, and the token line when counted.
func RenderRaw(document Document) string {
	var buffer bytes.Buffer
	for _, line := range tree.Lines(document.Root, document.Options) {
		buffer.WriteString(line + "\n")
	}
	buffer.WriteString("\n")
	buffer.WriteString(document.Summary.String() + "\n")
	if document.Model != "" {
		buffer.WriteString(fmt.Sprintf(tokenLineFormat, document.Tokens, document.Model) + "\n")
	}
	return buffer.String()
}

// RenderJSON returns the indented JSON report.
func RenderJSON(document Document) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(BuildReport(document), indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", fmt.Errorf(errorEncodeReportFormat, types.FormatJSON, jsonEncodeError)
	}
	return string(encoded) + "\n", nil
}

// RenderXML returns the indented XML report with the standard header.
func RenderXML(document Document) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(BuildReport(document), indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", fmt.Errorf(errorEncodeReportFormat, types.FormatXML, xmlMarshalError)
	}
	return xmlHeader + string(encoded) + "\n", nil
}

// BuildReport converts the hierarchy into structured nodes in render order.
func BuildReport(document Document) *types.TreeReport {
	return &types.TreeReport{
		Root: buildOutputNode(tree.RootLine, document.Root, document.Options),
		Summary: types.OutputSummary{
			Directories: document.Summary.Directories,
			Files:       document.Summary.Files,
			Tokens:      document.Tokens,
			Model:       document.Model,
		},
	}
}

func buildOutputNode(name string, directory *tree.Directory, options tree.RenderOptions) *types.TreeOutputNode {
	node := &types.TreeOutputNode{Name: name, Type: types.NodeTypeDirectory}
	for _, entry := range directory.SortedEntries() {
		if childDirectory, isDirectory := entry.Node.(*tree.Directory); isDirectory {
			child := buildOutputNode(entry.Name, childDirectory, options)
			child.Icon = tree.EntryIcon(entry, options)
			node.Children = append(node.Children, child)
			continue
		}
		node.Children = append(node.Children, &types.TreeOutputNode{
			Name: entry.Name,
			Type: types.NodeTypeFile,
			Icon: tree.EntryIcon(entry, options),
		})
	}
	return node
}

// NormalizeFormat lowercases and trims a format name.
func NormalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
