// Package printer renders boards and journal records as plain text tables.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/jask/listboard/internal/board"
	"github.com/jask/listboard/internal/database/repository"
)

// Pretty prints to Out. ShowID adds entry and template ids as a first column.
type Pretty struct {
	Out    io.Writer
	ShowID bool
}

var (
	title = color.New(color.Bold, color.Underline)
	faint = color.New(color.Faint)
	ids   = color.New(color.FgHiYellow, color.Faint)
)

// Catalog prints the templates in catalog order.
func (p *Pretty) Catalog(cat board.Catalog) {
	_, _ = title.Fprintln(p.Out, "Catalog")
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, t := range cat.Templates() {
		if p.ShowID {
			tbl.AddRow(i, ids.Sprint(t.ID), t.Content)
		} else {
			tbl.AddRow(i, t.Content)
		}
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(p.Out, tbl)
	_, _ = fmt.Fprintln(p.Out)
}

// Board prints every list in display order.
func (p *Pretty) Board(s board.State) {
	for i, id := range s.ListIDs() {
		entries, _ := s.Entries(id)
		p.titleWithCount(listLabel(i, id, p.ShowID), len(entries))
		if len(entries) == 0 {
			_, _ = color.New(color.Faint, color.Italic).Fprint(p.Out, "  none\n\n")
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for j, e := range entries {
			if p.ShowID {
				tbl.AddRow(j, ids.Sprint(e.ID), e.Content)
			} else {
				tbl.AddRow(j, e.Content)
			}
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(p.Out, tbl)
		_, _ = fmt.Fprintln(p.Out)
	}
}

// Journal prints records in the order given.
func (p *Pretty) Journal(recs []repository.Record) {
	_, _ = title.Fprintln(p.Out, "History")
	if len(recs) == 0 {
		_, _ = faint.Fprintln(p.Out, "  none")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("REV", "KIND", "ENTRY", "FROM", "TO")
	for _, r := range recs {
		tbl.AddRow(r.Revision, r.Kind, deref(r.Content), place(r.SourceContainer, r.SourceIndex), to(r))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(p.Out, tbl)
}

func (p *Pretty) titleWithCount(name string, count int) {
	_, _ = title.Fprint(p.Out, name)
	_, _ = faint.Fprintf(p.Out, " - %d", count)
	switch count {
	case 1:
		_, _ = faint.Fprintln(p.Out, " entry")
	default:
		_, _ = faint.Fprintln(p.Out, " entries")
	}
}

func listLabel(i int, id string, withID bool) string {
	label := fmt.Sprintf("List %d", i+1)
	if withID {
		label += " (" + id + ")"
	}
	return label
}

func to(r repository.Record) string {
	if r.Kind == repository.KindAddList {
		return deref(r.ListID)
	}
	if r.DestContainer == nil {
		return "outside"
	}
	return place(r.DestContainer, r.DestIndex)
}

func place(container *string, index *int) string {
	if container == nil {
		return ""
	}
	c := *container
	if len(c) > 8 && c != board.CatalogContainerID {
		c = c[:8]
	}
	if index == nil {
		return c
	}
	return fmt.Sprintf("%s[%d]", strings.ToLower(c), *index)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
