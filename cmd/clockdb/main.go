package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bietkhonhungvandi212/clock-db/internal/storage/buffer"
	"github.com/bietkhonhungvandi212/clock-db/internal/storage/file"
)

func main() {
	dir, err := os.MkdirTemp("", "clockdb")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fm, err := file.NewFileManager(filepath.Join(dir, "demo.dat"), 4)
	if err != nil {
		log.Fatal(err)
	}
	defer fm.Close()

	mgr := buffer.NewManager(8)

	pageId, p, err := mgr.AllocatePage(fm)
	if err != nil {
		log.Fatal(err)
	}
	copy(p.Data[:], []byte("hello from the buffer pool"))

	if err := mgr.UnpinPage(fm, pageId, true); err != nil {
		log.Fatal(err)
	}
	if err := mgr.FlushFile(fm); err != nil {
		log.Fatal(err)
	}

	// Back through the cache: first fetch reads from disk, second one hits.
	for i := 0; i < 2; i++ {
		p, err := mgr.FetchPage(fm, pageId)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("fetch %d: page %d: %q\n", i+1, pageId, string(p.Data[:26]))
	}
	if err := mgr.UnpinPage(fm, pageId, false); err != nil {
		log.Fatal(err)
	}
	if err := mgr.UnpinPage(fm, pageId, false); err != nil {
		log.Fatal(err)
	}

	fmt.Print(mgr.String())

	if err := mgr.Close(); err != nil {
		log.Fatal(err)
	}
}
