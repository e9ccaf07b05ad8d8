// This file is part of Tessellate.
//
// Tessellate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tessellate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tessellate.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// the command line stack holds preferences given with the -prefs flag. the
// format of the flag's value is:
//
//	key::value; key::value
//
// each push adds a new group to the top of the stack. values are only ever
// taken from the group on top of the stack and are forgotten once taken.
var commandLineStack []map[string]string

// the separators used in a prefs string.
const (
	entrySeparator    = ";"
	keyValueSeparator = "::"
)

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack() and not yet removed.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. Entries
// without a key/value separator are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]string)

	for _, entry := range strings.Split(prefs, entrySeparator) {
		key, value, ok := strings.Cut(entry, keyValueSeparator)
		if !ok {
			continue
		}
		group[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack forgets the group on top of the stack. The entries in the
// group that were never taken are returned as a prefs string, sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(top))
	for key := range top {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, key := range keys {
		unused = append(unused, fmt.Sprintf("%s%s%s", key, keyValueSeparator, top[key]))
	}

	return strings.Join(unused, entrySeparator+" ")
}

// GetCommandLinePref takes the value for the key from the group on top of the
// stack. The value is no longer available after it has been returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	top := commandLineStack[len(commandLineStack)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}

// ApplyCommandLinePref sets the value of the Pref using the value for the key
// on the top of the command line stack. Returns false if there is no value for
// the key.
func ApplyCommandLinePref(key string, p Pref) (bool, error) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return false, nil
	}
	if err := p.Set(v); err != nil {
		return true, fmt.Errorf("prefs: %s: %w", key, err)
	}
	return true, nil
}
