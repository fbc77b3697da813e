package printer

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/jask/listboard/internal/board"
	"github.com/jask/listboard/internal/database/repository"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func sampleState(t *testing.T) (board.State, board.Catalog) {
	t.Helper()
	n := 0
	ids := board.IDFunc(func() string {
		n++
		return []string{"list-aaa", "e1", "list-bbb"}[n-1]
	})
	cat := board.NewCatalog(board.Template{ID: "t1", Content: "Headline"}, board.Template{ID: "t2", Content: "Copy"})
	s := board.NewState(ids)
	s, _, err := board.NewEngine(ids).ComputeNextState(s, cat, board.DragOutcome{
		Source:      board.Location{ContainerID: board.CatalogContainerID, Index: 0},
		Destination: &board.Location{ContainerID: "list-aaa", Index: 0},
	})
	require.NoError(t, err)
	s, _ = board.AddList(s, ids)
	return s, cat
}

func TestBoard(t *testing.T) {
	s, _ := sampleState(t)
	var buf bytes.Buffer
	(&Pretty{Out: &buf}).Board(s)
	out := buf.String()

	require.Contains(t, out, "List 1 - 1 entry")
	require.Contains(t, out, "0  Headline")
	require.Contains(t, out, "List 2 - 0 entries")
	require.Contains(t, out, "none")
	require.NotContains(t, out, "e1")
	require.Less(t, strings.Index(out, "List 1"), strings.Index(out, "List 2"))
}

func TestBoardWithIDs(t *testing.T) {
	s, cat := sampleState(t)
	var buf bytes.Buffer
	p := &Pretty{Out: &buf, ShowID: true}
	p.Catalog(cat)
	p.Board(s)
	out := buf.String()

	require.Contains(t, out, "Catalog")
	require.Contains(t, out, "t2")
	require.Contains(t, out, "List 1 (list-aaa)")
	require.Contains(t, out, "e1")
}

func TestJournal(t *testing.T) {
	var buf bytes.Buffer
	p := &Pretty{Out: &buf}
	p.Journal(nil)
	require.Contains(t, buf.String(), "none")

	buf.Reset()
	catalogID, list := board.CatalogContainerID, "0123456789abcdef"
	zero := 0
	content := "Headline"
	p.Journal([]repository.Record{
		{Kind: repository.KindCopy, Content: &content, SourceContainer: &catalogID, SourceIndex: &zero, DestContainer: &list, DestIndex: &zero, Revision: 2},
		{Kind: repository.KindNoOp, SourceContainer: &list, SourceIndex: &zero, Revision: 2},
		{Kind: repository.KindAddList, ListID: &list, Revision: 1},
	})
	out := buf.String()
	require.Contains(t, out, "REV")
	require.Contains(t, out, "catalog[0]")
	require.Contains(t, out, "01234567[0]")
	require.Contains(t, out, "outside")
	require.Contains(t, out, "add_list")
}
