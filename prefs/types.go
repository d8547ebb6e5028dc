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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are embedded in every pref type. store() is the only way a pref type
// should update its value.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the value is
// updated. The callback is called even if the value is unchanged. If the
// callback returns an error the value is not updated.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the value
// is updated. The callback is called even if the value is unchanged.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func store[T any](h *hooks, v *atomic.Value, nv T) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

func load[T any](v *atomic.Value) T {
	var zero T
	if ov := v.Load(); ov != nil {
		return ov.(T)
	}
	return zero
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	pref
	hooks
	value atomic.Value
}

func (p *Bool) String() string {
	return strconv.FormatBool(load[bool](&p.value))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return store(&p.hooks, &p.value, v)
	case string:
		return store(&p.hooks, &p.value, strings.EqualFold(v, "true"))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return load[bool](&p.value)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	pref
	hooks
	maxLen int
	value  atomic.Value
}

func (p *String) String() string {
	return load[string](&p.value)
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

// SetMaxLen sets the maximum length of the string. A value less than or equal
// to zero means no limit. The existing string is cropped if necessary and the
// cropped part is lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if ov := p.value.Load(); ov != nil {
		p.value.Store(p.crop(ov.(string)))
	}
}

// Set new value to String type. Values that are not strings are formatted
// with fmt.Sprint().
func (p *String) Set(v Value) error {
	return store(&p.hooks, &p.value, p.crop(fmt.Sprint(v)))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	pref
	hooks
	value atomic.Value
}

func (p *Int) String() string {
	return strconv.Itoa(load[int](&p.value))
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return store(&p.hooks, &p.value, v)
	case int32:
		return store(&p.hooks, &p.value, int(v))
	case int64:
		return store(&p.hooks, &p.value, int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("set: cannot convert %q to prefs.Int: %w", v, err)
		}
		return store(&p.hooks, &p.value, n)
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return load[int](&p.value)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
