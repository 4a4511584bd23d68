package file

import (
	"github.com/bietkhonhungvandi212/clock-db/internal/storage/page"
	utils "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

// Filer is the page-file contract the buffer manager depends on. Identity is
// pointer identity of the implementation; Name is only for index keys built
// on it and for error text.
type Filer interface {
	ReadPage(pageId utils.PageID) (*page.Page, error)
	WritePage(p *page.Page) error
	AllocatePage() (utils.PageID, *page.Page, error)
	DeletePage(pageId utils.PageID) error
	Name() string
}
