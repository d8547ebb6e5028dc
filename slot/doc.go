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

// Package slot defines the registry of card options available to an expansion
// slot.
//
// A slot is a point in an emulated machine into which one of several
// interchangeable cards can be plugged. Each card that can be plugged into the
// slot is an Option. Options are held by a Registry, one Registry per slot.
//
// The Registry is populated once, while the machine description is being
// assembled. After that it should be treated as read-only. The Registry does
// not create cards itself. Each Option refers to a DeviceType, which is the
// recipe for creating the card, and the Registry simply hands that reference
// to whoever is instantiating the machine.
//
//	r := slot.NewRegistry("left")
//	r.SetDefaultClock(1193182)
//
//	opt, err := r.Add("stick", stickType)
//	if err != nil {
//		return err
//	}
//	opt.SetDefaultBIOS("rev2")
//
// The Option returned by Add() is the entry stored in the Registry and can be
// used to configure the entry further. The handle is attached to the Registry
// only until the entry is replaced or removed. After that, changes made
// through the old handle have no effect on the Registry.
//
// Options added with AddInternal() are not selectable. They exist so that a
// machine can install a card by default without the card being offered as a
// choice to the user. A Registry marked as fixed offers no choice at all.
//
// There are two kinds of error. Mistakes in the assembly of a Registry (adding
// an option without a name, adding a duplicate option, replacing or removing
// an option that does not exist) are returned as curated errors from the
// mutating functions. The error patterns are exported (DuplicateOption etc.)
// and can be tested for with curated.Is() and curated.Has(). A failed call
// never changes the Registry.
//
// The second kind of error is found by the Validate() function, which is run
// after assembly has completed. These are reported to a validity.Reporter and
// are not returned. An example is a default option that refers to an option
// that was never added. Because the default option can be set before the
// option it names is added, this is not checked by SetDefaultOption().
package slot
