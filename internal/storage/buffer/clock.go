package buffer

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

/*
Clock (second-chance) victim selection.

The hand sweeps the descriptor table one frame per step. Invalid frames are
taken immediately. A set refBit buys the frame one more revolution. Pinned
frames are skipped. Anything else is evicted: written back if dirty, dropped
from the index, descriptor cleared.

A full sweep that selects nothing only fails when no frame is unpinned;
otherwise the refBits cleared along the way make the next sweep progress.
*/

// advanceHand rotates the clock hand to the next frame.
func (m *Manager) advanceHand() {
	m.hand = (m.hand + 1) % util.FrameID(len(m.descs))
}

// allocFrame returns a frame ready for reuse, evicting resident content when
// needed. Fails with ErrCapacityExceeded when every frame is pinned.
func (m *Manager) allocFrame() (util.FrameID, error) {
	for {
		for i := 0; i < len(m.descs); i++ {
			m.advanceHand()
			d := &m.descs[m.hand]

			if !d.valid {
				return m.hand, nil
			}

			// Recently used: give it a second chance
			if d.refBit {
				d.refBit = false
				continue
			}

			if d.pinCount > 0 {
				continue
			}

			// Unpinned and unreferenced: evict
			if d.dirty {
				if err := d.file.WritePage(&m.frames[m.hand]); err != nil {
					return 0, fmt.Errorf("write back page %d of %s: %w", d.pageId, d.file.Name(), err)
				}
				d.dirty = false
			}
			m.index.Remove(d.file, d.pageId)
			d.Clear()
			return m.hand, nil
		}

		// Nothing selected in a full sweep. That is final only when no
		// frame can ever become free.
		allPinned := true
		for i := range m.descs {
			if m.descs[i].pinCount == 0 {
				allPinned = false
				break
			}
		}
		if allPinned {
			return 0, ErrCapacityExceeded
		}
	}
}
