package markup

import "strings"

// container is the block-level wrapper currently open while scanning.
// At most one container is open at a time.
type container int

const (
	containerNone container = iota
	containerList
	containerOrderedList
	containerTable
	containerBlockquote
)

// open returns the opening tag of the container.
func (c container) open() string {
	switch c {
	case containerList:
		return listOpen
	case containerOrderedList:
		return orderedListOpen
	case containerTable:
		return tableOpen
	case containerBlockquote:
		return blockquoteOpen
	default:
		return ""
	}
}

// close returns the closing tag of the container.
func (c container) close() string {
	switch c {
	case containerList:
		return listClose
	case containerOrderedList:
		return orderedListClose
	case containerTable:
		return tableClose
	case containerBlockquote:
		return blockquoteClose
	default:
		return ""
	}
}

// renderer holds the scan state for one Transform call.
type renderer struct {
	out  strings.Builder
	open container
}

// Transform converts markup text to an HTML fragment wrapped in a single
// preview container. It never fails.
func Transform(text string) string {
	text = ApplyInline(text)

	r := &renderer{}
	r.out.Grow(len(text) * 2)
	r.out.WriteString(wrapperOpen)

	for _, line := range strings.Split(text, "\n") {
		r.line(line)
	}

	r.transition(containerNone)
	r.out.WriteString(wrapperClose)
	return r.out.String()
}

// line classifies and emits one line.
func (r *renderer) line(line string) {
	block := Classify(line)

	// Blank lines inside an open container are tolerated so that a run of
	// rows or items separated by empty lines stays one container.
	if block.Kind == Blank {
		return
	}

	r.transition(block.Kind.containerKind())
	r.emit(block)
}

// transition closes the open container when the next line needs a different
// one, then opens the next container if any.
func (r *renderer) transition(next container) {
	if r.open == next {
		return
	}
	r.out.WriteString(r.open.close())
	r.out.WriteString(next.open())
	r.open = next
}

// emit writes the HTML of a classified, non-blank line.
func (r *renderer) emit(b Block) {
	switch b.Kind {
	case ListItem, OrderedListItem:
		r.out.WriteString("<li>" + b.Text + "</li>")

	case TableRow:
		if b.Separator {
			return
		}
		r.out.WriteString("<tr>")
		for _, cell := range b.Cells {
			r.out.WriteString(tableCellOpen + cell + "</td>")
		}
		r.out.WriteString("</tr>")

	case BlockquoteLine:
		r.out.WriteString("<p>" + b.Text + "</p>")

	case HorizontalRule:
		r.out.WriteString(horizontalRule)

	case Header1:
		r.out.WriteString(h1Open + h1Star + b.Text + h1Star + "</h1>")

	case Header2:
		r.out.WriteString(h2Open + b.Text + "</h2>")

	case Header3:
		r.out.WriteString(h3Open + b.Text + "</h3>")

	case InfoBox:
		r.out.WriteString(infoBox + b.Text + "</div>")

	case StepBox:
		r.writeStep(b)

	case Paragraph:
		r.out.WriteString("<p>" + b.Text + "</p>")
	}
}

// writeStep renders a numbered step card.
func (r *renderer) writeStep(b Block) {
	r.out.WriteString(`<div class="step-box step-box-` + b.Step + `"><div class="icon">`)
	if icon := StepIcon(b.Step); icon != "" {
		r.out.WriteString(`<i class="` + icon + `"></i>`)
	}
	r.out.WriteString(`</div><div class="text-content"><div class="title">#` + b.Step + `: ` + b.Title + `</div>`)
	r.out.WriteString(`<div class="description">` + b.Description + `</div></div></div>`)
}
