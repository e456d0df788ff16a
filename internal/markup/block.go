package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the block element a line was classified as.
type Kind int

// Block kinds, in classification precedence order (Blank aside).
const (
	Blank Kind = iota
	ListItem
	OrderedListItem
	TableRow
	BlockquoteLine
	HorizontalRule
	Header1
	Header2
	Header3
	InfoBox
	StepBox
	Paragraph
)

var kindNames = [...]string{
	Blank:           "blank",
	ListItem:        "list-item",
	OrderedListItem: "ordered-list-item",
	TableRow:        "table-row",
	BlockquoteLine:  "blockquote",
	HorizontalRule:  "horizontal-rule",
	Header1:         "h1",
	Header2:         "h2",
	Header3:         "h3",
	InfoBox:         "info-box",
	StepBox:         "step-box",
	Paragraph:       "paragraph",
}

// String returns a short, stable name for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Line prefixes recognised by the classifier.
const (
	listPrefix       = "- "
	blockquotePrefix = "> "
	h1Prefix         = "# "
	h2Prefix         = "## "
	h3Prefix         = "### "
	infoPrefix       = "[INFO] "
	separatorMarker  = "---"
)

var (
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s`)
	stepPattern        = regexp.MustCompile(`^\[#(\d+)\] (.*?) \| (.*)`)
)

// Block is the classification of a single line.
type Block struct {
	Kind Kind

	// Text is the content to emit for list items, blockquotes, headers,
	// info boxes and paragraphs.
	Text string

	// Step, Title and Description are set for StepBox. Step keeps the digits
	// exactly as written.
	Step        string
	Title       string
	Description string

	// Cells holds trimmed table cells. Separator marks a header separator
	// row, which renders nothing.
	Cells     []string
	Separator bool
}

// containerKind returns the container a line of the given kind belongs to.
func (k Kind) containerKind() container {
	switch k {
	case ListItem:
		return containerList
	case OrderedListItem:
		return containerOrderedList
	case TableRow:
		return containerTable
	case BlockquoteLine:
		return containerBlockquote
	default:
		return containerNone
	}
}

// Classify determines the block element for one line. The first matching
// rule wins: list item, ordered item, table row, blockquote, horizontal rule,
// H1, H2, H3, info box, step box, paragraph. Header, info and step prefixes
// are matched on the raw line, so indentation demotes them to paragraphs.
func Classify(line string) Block {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, listPrefix):
		return Block{Kind: ListItem, Text: trimmed[len(listPrefix):]}

	case orderedItemPattern.MatchString(trimmed):
		return Block{Kind: OrderedListItem, Text: orderedItemPattern.ReplaceAllString(trimmed, "")}

	case isTableRow(trimmed):
		return classifyTableRow(trimmed)

	case strings.HasPrefix(trimmed, blockquotePrefix):
		return Block{Kind: BlockquoteLine, Text: trimmed[len(blockquotePrefix):]}

	case trimmed == "---" || trimmed == "**" || trimmed == "___":
		return Block{Kind: HorizontalRule}

	case strings.HasPrefix(line, h1Prefix):
		return Block{Kind: Header1, Text: line[len(h1Prefix):]}

	case strings.HasPrefix(line, h2Prefix):
		return Block{Kind: Header2, Text: line[len(h2Prefix):]}

	case strings.HasPrefix(line, h3Prefix):
		return Block{Kind: Header3, Text: line[len(h3Prefix):]}

	case strings.HasPrefix(line, infoPrefix):
		return Block{Kind: InfoBox, Text: line[len(infoPrefix):]}
	}

	if m := stepPattern.FindStringSubmatch(line); m != nil {
		return Block{Kind: StepBox, Step: m[1], Title: m[2], Description: m[3]}
	}

	if trimmed == "" {
		return Block{Kind: Blank}
	}
	return Block{Kind: Paragraph, Text: trimmed}
}

// isTableRow reports whether a trimmed line is framed by pipes.
func isTableRow(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// classifyTableRow strips the outer pipes and splits the cells.
func classifyTableRow(trimmed string) Block {
	if strings.Contains(trimmed, separatorMarker) {
		return Block{Kind: TableRow, Separator: true}
	}

	inner := ""
	if len(trimmed) >= 2 {
		inner = trimmed[1 : len(trimmed)-1]
	}

	cells := strings.Split(inner, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return Block{Kind: TableRow, Cells: cells}
}
