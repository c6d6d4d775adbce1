package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocksHeadingsGetSeparators(t *testing.T) {
	blocks := ParseBlocks("# Jane Doe\n## Experience\nBuilt things.")

	require.Len(t, blocks, 5)
	assert.Equal(t, BlockHeading1, blocks[0].Kind)
	assert.Equal(t, "Jane Doe", blocks[0].Text)
	assert.Equal(t, BlockSeparator, blocks[1].Kind)
	assert.Equal(t, BlockHeading2, blocks[2].Kind)
	assert.Equal(t, "Experience", blocks[2].Text)
	assert.Equal(t, BlockSeparator, blocks[3].Kind)
	assert.Equal(t, BlockBody, blocks[4].Kind)
	assert.Equal(t, "Built things.", blocks[4].Text)
}

func TestParseBlocksBullets(t *testing.T) {
	blocks := ParseBlocks("- first\n* second")

	require.Len(t, blocks, 2)
	assert.Equal(t, BlockBullet, blocks[0].Kind)
	assert.Equal(t, "first", blocks[0].Text)
	assert.Equal(t, BlockBullet, blocks[1].Kind)
	assert.Equal(t, "second", blocks[1].Text)
}

func TestParseBlocksSkipsBlankAndRules(t *testing.T) {
	blocks := ParseBlocks("\n\n---\n   \nbody\n---\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, "body", blocks[0].Text)
}

func TestParseBlocksDropsBoilerplate(t *testing.T) {
	blocks := ParseBlocks("Here is your tailored resume:\n# Jane Doe\nSure! Begin the cover letter below.")

	require.Len(t, blocks, 2)
	assert.Equal(t, BlockHeading1, blocks[0].Kind)
	assert.Equal(t, "Jane Doe", blocks[0].Text)
}

func TestParseBlocksEmptyInput(t *testing.T) {
	assert.Empty(t, ParseBlocks(""))
	assert.Empty(t, ParseBlocks("\n\n\n"))
}

func TestStripMarkdownBoldAndLinks(t *testing.T) {
	blocks := ParseBlocks("**Skills:** Go, SQL\n[LinkedIn](https://linkedin.com/in/jane)")

	require.Len(t, blocks, 2)
	assert.Equal(t, "Skills: Go, SQL", blocks[0].Text)
	assert.Equal(t, "https://linkedin.com/in/jane", blocks[1].Text)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(100, 297))
	assert.Equal(t, 1, PageCount(297, 297))
	assert.Equal(t, 2, PageCount(297.1, 297))
	assert.Equal(t, 4, PageCount(1000, 297))
	// Degenerate inputs still produce a page
	assert.Equal(t, 1, PageCount(0, 297))
	assert.Equal(t, 1, PageCount(100, 0))
}

func TestWriteDOCXProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDOCX(&buf, "# Jane Doe\n## Summary\n- Go engineer")
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
