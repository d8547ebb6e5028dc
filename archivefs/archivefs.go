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

// Package archivefs opens files that may be inside a zip archive. A path
// such as:
//
//	software/games.zip/pitfall.bin
//
// refers to the file pitfall.bin inside the archive games.zip. Paths that do
// not pass through an archive are opened normally.
package archivefs

import (
	"fmt"
	"io"
)

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive supported by archivefs.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and the
// name of the file that was opened (the last element of the path). The name
// is useful because it is the name of the file inside the archive and not the
// name of the archive.
func Open(filename string) (io.ReadSeeker, int, string, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, "", err
	}
	defer afs.Close()

	if afs.IsDir() {
		return nil, 0, "", fmt.Errorf("archivefs: open: %s is a directory", filename)
	}

	r, sz, err := afs.Open()
	if err != nil {
		return nil, 0, "", err
	}
	return r, sz, afs.Base(), nil
}
