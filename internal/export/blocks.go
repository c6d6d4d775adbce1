package export

import (
	"regexp"
	"strings"
)

// BlockKind classifies one formatted paragraph of the output document.
type BlockKind int

const (
	BlockHeading1 BlockKind = iota
	BlockHeading2
	BlockSeparator
	BlockBullet
	BlockBody
)

type Block struct {
	Kind BlockKind
	Text string
}

const separatorRule = "__________________________________________________________________"

// boilerplate marks throwaway lines the model tends to append; they never
// belong in the exported document.
var boilerplate = []string{
	"Begin the cover letter below",
	"Here is your tailored resume",
}

var (
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// ParseBlocks converts the generated text (a constrained markdown subset:
// #/## headings, -/* bullets) into the paragraph sequence to render.
// Headings are followed by a separator rule; blank lines produce nothing.
func ParseBlocks(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" || isBoilerplate(trimmed) {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "## "):
			blocks = append(blocks,
				Block{Kind: BlockHeading2, Text: stripMarkdown(trimmed)},
				Block{Kind: BlockSeparator, Text: separatorRule})
		case strings.HasPrefix(trimmed, "# "):
			blocks = append(blocks,
				Block{Kind: BlockHeading1, Text: stripMarkdown(trimmed)},
				Block{Kind: BlockSeparator, Text: separatorRule})
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: stripMarkdown(trimmed[2:])})
		default:
			blocks = append(blocks, Block{Kind: BlockBody, Text: stripMarkdown(trimmed)})
		}
	}
	return blocks
}

func isBoilerplate(line string) bool {
	for _, marker := range boilerplate {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// stripMarkdown drops heading markers and bold syntax; links keep their URL.
func stripMarkdown(line string) string {
	line = strings.TrimLeft(line, "#")
	line = boldPattern.ReplaceAllString(line, "$1")
	line = linkPattern.ReplaceAllString(line, "$2")
	return strings.TrimSpace(line)
}
