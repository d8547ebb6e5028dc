// This file is part of cardslot.
//
// cardslot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cardslot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cardslot.  If not, see <https://www.gnu.org/licenses/>.

package slot

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cardslot/archivefs"
	"github.com/jetsetilly/cardslot/logger"
)

// HashfileExtrainfo looks up additional information about a software image.
// Returns false if there is no information for the image.
type HashfileExtrainfo func(image io.ReadSeeker) (string, bool)

// SoftwareHook gives a slot the opportunity to choose a default card based on
// the software that is being loaded. For example, a cartridge slot might
// choose a card according to the file type of the cartridge image.
type SoftwareHook struct {
	image    io.ReadSeeker
	fileType string

	getExtrainfo HashfileExtrainfo

	// the extrainfo function is called once at most. the result is cached
	calledExtrainfo bool
	hasExtrainfo    bool
	extrainfo       string
}

// NewSoftwareHook is the preferred method of initialisation for the
// SoftwareHook type. The path may point to a file inside a zip archive. If the
// path is empty or can not be opened the hook will have no image.
//
// The extrainfo argument can be nil.
func NewSoftwareHook(path string, extrainfo HashfileExtrainfo) *SoftwareHook {
	h := &SoftwareHook{
		getExtrainfo: extrainfo,
	}

	if path != "" {
		r, _, name, err := archivefs.Open(path)
		if err != nil {
			logger.Logf(logger.Allow, "slot", "software hook: %v", err)
		} else {
			h.image = r
			h.fileType = strings.TrimPrefix(filepath.Ext(name), ".")
		}
	}

	return h
}

// ImageFile returns the software image. Returns nil if there is no image.
func (h *SoftwareHook) ImageFile() io.ReadSeeker {
	return h.image
}

// FileType returns the file extension of the software image, without the
// leading period. Returns the empty string if there is no image.
func (h *SoftwareHook) FileType() string {
	return h.fileType
}

// IsFiletype returns true if the file type of the software image matches the
// candidate. The comparison is not case sensitive.
func (h *SoftwareHook) IsFiletype(candidate string) bool {
	return strings.EqualFold(h.fileType, strings.TrimPrefix(candidate, "."))
}

// HashfileExtrainfo returns additional information about the software image.
// The HashfileExtrainfo function given to NewSoftwareHook() is called on the
// first call only.
func (h *SoftwareHook) HashfileExtrainfo() (string, bool) {
	if !h.calledExtrainfo {
		if h.getExtrainfo != nil && h.image != nil {
			if _, err := h.image.Seek(0, io.SeekStart); err == nil {
				h.extrainfo, h.hasExtrainfo = h.getExtrainfo(h.image)
			}
		}
		h.calledExtrainfo = true
	}
	return h.extrainfo, h.hasExtrainfo
}

// Close the software image if it needs closing.
func (h *SoftwareHook) Close() error {
	if c, ok := h.image.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
