package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateHash(t *testing.T) {
	assert.Equal(t, "0x1234", TruncateHash("0x1234"))
	assert.Equal(t,
		"0xd4e567…8fa3",
		TruncateHash("0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"))
}

func TestTableRenderWidths(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "URL", Width: 10},
		{Title: "Status", Width: 6},
	})
	tbl.AddRow(Row{"https://very-long-endpoint.example", "ok"})
	out := tbl.Render()

	assert.Contains(t, out, "URL")
	assert.Contains(t, out, "Status")
	// Long cells are truncated to the column width.
	assert.NotContains(t, out, "very-long-endpoint")
}

func TestTableRenderMissingCells(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "A", Width: 4},
		{Title: "B", Width: 4},
	})
	tbl.AddRow(Row{"x"})
	out := tbl.Render()
	assert.Equal(t, 3, strings.Count(out, "\n"), "header + divider + one row")
}

func TestKeyValueBlock(t *testing.T) {
	out := KeyValueBlock("Title", [][2]string{{"Peers", "12"}})
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Peers")
	assert.Contains(t, out, "12")
}
