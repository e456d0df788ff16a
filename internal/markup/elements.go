package markup

// HTML fragments emitted by the transformer. Colors reference theme custom
// properties; internal/theme resolves them for export.
const (
	wrapperOpen  = `<div class="preview-content">`
	wrapperClose = `</div>`

	listOpen         = `<ul>`
	listClose        = `</ul>`
	orderedListOpen  = `<ol>`
	orderedListClose = `</ol>`
	tableOpen        = `<table style="width: 100%; border-collapse: collapse; margin: 1rem 0;"><tbody>`
	tableClose       = `</tbody></table>`
	blockquoteOpen   = `<blockquote style="border-left: 4px solid var(--highlight-color); padding-left: 1rem; margin: 1rem 0; font-style: italic; color: var(--text-muted);">`
	blockquoteClose  = `</blockquote>`

	tableCellOpen = `<td style="border: 1px solid var(--border-color); padding: 0.5rem;">`

	h1Open  = `<h1 style="color: var(--highlight-color); display: flex; align-items: center; gap: 0.5rem;">`
	h1Star  = `<i class="fa-solid fa-star" style="color: #ff0000;"></i>`
	h2Open  = `<h2 style="color: var(--highlight-color);">`
	h3Open  = `<h3 style="color: var(--text-color); font-size: 1.1rem; font-weight: 700; margin: 0.75rem 0 0.5rem 0; border-left: 3px solid var(--highlight-color); padding-left: 0.75rem;">`
	infoBox = `<div class="info-box" style="background-color: var(--card-bg); padding: 1rem; border: 1px solid var(--border-color); margin: 0.5rem 0; border-left: 4px solid var(--highlight-color); display: flex; align-items: center;">` +
		`<i class="fa-solid fa-info-circle" style="color: var(--highlight-color); margin-right: 0.5rem; font-size: 1.5rem;"></i>`
	horizontalRule = `<hr style="border: 0; height: 3px; background: linear-gradient(90deg, var(--highlight-color), var(--text-muted), var(--highlight-color)); margin: 2rem 0; border-radius: 0px;">`
)

// stepIcons maps step numbers to their icon classes. Other numbers render
// without an icon.
var stepIcons = map[string]string{
	"1": "fa-solid fa-info-circle",
	"2": "fa-solid fa-lightbulb",
	"3": "fa-solid fa-triangle-exclamation",
	"4": "fa-solid fa-circle-exclamation",
}

// StepIcon returns the icon class for a step number, or "" when the number
// has no icon.
func StepIcon(step string) string {
	return stepIcons[step]
}
