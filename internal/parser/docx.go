package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// bodyParagraphs walks word/document.xml and returns the text of each
// paragraph that is a direct child of w:body, empty ones included. Table
// cells and text boxes are not body paragraphs and are skipped.
func bodyParagraphs(documentXML string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		inPara     bool
		textBox    int
	)

	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == "p" && parent() == "body":
				inPara = true
				current.Reset()
			case !inPara:
			case name == "txbxContent":
				textBox++
			case textBox > 0:
			case parent() == "r" && name == "tab":
				current.WriteByte('\t')
			case parent() == "r" && name == "cr":
				current.WriteByte('\n')
			case parent() == "r" && name == "br" && isLineBreak(t):
				current.WriteByte('\n')
			}
			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			name := t.Name.Local
			if !inPara {
				continue
			}
			switch {
			case name == "txbxContent":
				textBox--
			case name == "p" && parent() == "body":
				paragraphs = append(paragraphs, current.String())
				inPara = false
			}

		case xml.CharData:
			if inPara && textBox == 0 && parent() == "t" {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

// isLineBreak reports whether a w:br wraps text. Page and column breaks
// carry no text.
func isLineBreak(br xml.StartElement) bool {
	for _, a := range br.Attr {
		if a.Name.Local == "type" {
			return a.Value == "" || a.Value == "textWrapping"
		}
	}
	return true
}
