package export

import (
	"io"

	"github.com/fumiama/go-docx"
)

// Half-point font sizes, matching the sizes the old frontend used.
const (
	heading1Size = "36"
	heading2Size = "28"
	bodySize     = "24"
)

// WriteDOCX renders the generated text as a Word document. Heading levels get
// distinct sizes with a separator rule underneath; bullets become bulleted
// lines; everything else is a body paragraph.
func WriteDOCX(w io.Writer, content string) error {
	doc := docx.New().WithDefaultTheme()

	for _, block := range ParseBlocks(content) {
		para := doc.AddParagraph()
		switch block.Kind {
		case BlockHeading1:
			para.Justification("center")
			para.AddText(block.Text).Size(heading1Size).Bold()
		case BlockHeading2:
			para.AddText(block.Text).Size(heading2Size).Bold()
		case BlockSeparator:
			para.AddText(block.Text).Size(bodySize)
		case BlockBullet:
			para.AddText("• " + block.Text).Size(bodySize)
		default:
			para.AddText(block.Text).Size(bodySize)
		}
	}

	_, err := doc.WriteTo(w)
	return err
}
