package pipeline

import (
	"html"
	"strings"
)

// DefaultTitle is the document title used when none is given.
const DefaultTitle = "Document"

// Document wraps an HTML body fragment in a complete HTML5 document. head
// is inserted verbatim into <head>; it carries <link> or <style> elements.
func Document(title, head, body string) string {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.Grow(len(body) + len(head) + 160)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n")
	if head != "" {
		b.WriteString(head)
		b.WriteString("\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>")
	return b.String()
}

// StylesheetLink returns a <link> element for an external stylesheet, or ""
// when href is empty.
func StylesheetLink(href string) string {
	if href == "" {
		return ""
	}
	return `<link rel="stylesheet" href="` + html.EscapeString(href) + `">`
}
