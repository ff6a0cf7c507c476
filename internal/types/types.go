// Package types defines the cross-package data structures used by the riptree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// TreeOutputNode is one entry of the rendered hierarchy in structured formats.
type TreeOutputNode struct {
	XMLName  xml.Name          `json:"-" xml:"node"`
	Name     string            `json:"name" xml:"name"`
	Type     string            `json:"type" xml:"type"`
	Icon     string            `json:"icon,omitempty" xml:"icon,omitempty"`
	Children []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
}

// OutputSummary captures the totals printed under the tree.
type OutputSummary struct {
	Directories int    `json:"directories" xml:"directories"`
	Files       int    `json:"files" xml:"files"`
	Tokens      int    `json:"tokens,omitempty" xml:"tokens,omitempty"`
	Model       string `json:"model,omitempty" xml:"model,omitempty"`
}

// TreeReport is the document produced by the json and xml formats.
type TreeReport struct {
	XMLName xml.Name        `json:"-" xml:"tree"`
	Root    *TreeOutputNode `json:"root" xml:"root>node"`
	Summary OutputSummary   `json:"summary" xml:"summary"`
}
