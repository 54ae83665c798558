package crumbtug

import (
	"fmt"
	"os"

	"github.com/filetug/crumbtug/pkg/files"
	"github.com/filetug/crumbtug/pkg/fsutils"
	"github.com/rivo/tview"
)

const parentItem = ".."

func newDirList() *tview.List {
	list := tview.NewList().ShowSecondaryText(false)
	list.SetHighlightFullLine(true)
	return list
}

// entryText is the list item text of a directory entry.
func entryText(e os.DirEntry) string {
	if e.IsDir() {
		return tview.Escape(e.Name()) + "/"
	}
	info, err := e.Info()
	if err != nil || info == nil {
		return tview.Escape(e.Name())
	}
	return fmt.Sprintf("%s  [gray]%s[-]", tview.Escape(e.Name()), fsutils.GetSizeShortText(info.Size()))
}

// showDir fills the list with the children of dir. Selecting a directory opens it.
func (b *Browser) showDir(dir *files.DirContext) {
	b.list.Clear()
	if !dir.IsRoot() {
		parent := dir.ParentPath()
		b.list.AddItem(parentItem, "", 0, func() {
			b.NavigateTo(parent)
		})
	}
	for _, child := range dir.Children() {
		var selected func()
		if child.IsDir() {
			childPath := dir.ChildPath(child.Name())
			selected = func() {
				b.NavigateTo(childPath)
			}
		}
		b.list.AddItem(entryText(child), "", 0, selected)
	}
	b.status.setEntries(len(dir.Children()))
}
