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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

// the separator used between modes by the Path() function.
const modeSeparator = "/"

// Modes parses command line arguments that are divided into modes. Each mode
// has its own set of flags and optionally a list of sub-modes.
//
// Help messages are written to Output. If Output is nil then help messages are
// discarded.
type Modes struct {
	Output io.Writer

	// the flags for the next call to Parse(). replaced on every call to
	// NewMode()
	flags *flag.FlagSet

	// the arguments given to NewArgs(). next is the index of the first
	// argument that has not been consumed by a sub-mode
	args []string
	next int

	// the sub-modes for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// every mode selected by Parse() since the call to NewArgs()
	path []string

	// text added to the end of the help message
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. The empty string is returned
// if no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode that has been selected, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode forgets the flags and sub-modes of the previous mode. Arguments
// consumed by previous calls to Parse() are not seen again.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
}

// AdditionalHelp sets text to be printed after the flags and sub-modes in the
// help message of the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified
	// in the preceding call to NewMode() then Mode() should be checked.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse the arguments for the current mode. Typical usage:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// If sub-modes have been added then a sub-mode is always selected. The first
// remaining argument selects the sub-mode if it names one (case insensitive)
// and otherwise the default sub-mode is selected and the arguments are left
// for the flags of the sub-mode.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.next:])
	if err == flag.ErrHelp {
		if md.Output != nil {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
		}
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// a flag that is not recognised may belong to the default sub-mode
	if err != nil {
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	md.path = append(md.path, md.selectSubMode(md.flags.Arg(0)))
	return ParseContinue, nil
}

// selectSubMode returns the sub-mode named by arg. If arg does not name a
// sub-mode then the default sub-mode is returned and no argument is consumed.
func (md *Modes) selectSubMode(arg string) string {
	arg = strings.ToUpper(arg)
	for _, m := range md.subModes {
		if m == arg {
			md.next++
			return m
		}
	}
	return md.subModes[0]
}

// RemainingArgs returns the arguments that are not flags of the current mode
// or the name of a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns a remaining argument by index. The empty string is returned
// if the index is out of range.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds to the list of sub-modes for the next call to Parse(). The
// first sub-mode added is the default.
//
// Sub-mode names are converted to upper case.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddFloat64 adds a floating point flag to the current mode.
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for each flag that has been set on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
