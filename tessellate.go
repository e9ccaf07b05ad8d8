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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/modalflag"
	"github.com/glsandbox/tessellate/scene"
	"github.com/glsandbox/tessellate/shaders"
	"github.com/glsandbox/tessellate/tessellation"
	"github.com/glsandbox/tessellate/version"
)

// argumentError is the pattern for errors caused by the command line.
const argumentError = "arguments: %v"

// exit status values returned by launch().
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func init() {
	// the window, the graphics context and every graphics call must stay on
	// the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Stdout, os.Stderr, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. The return value is
// the exit status of the program.
func launch(stdout io.Writer, stderr io.Writer, args []string) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SHADERS", "EVAL", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, stdout)

	case "SHADERS":
		err = listShaders(md, stdout)

	case "EVAL":
		err = evaluate(md, stdout)

	case "VERSION":
		err = showVersion(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		return exitStatus(err)
	}

	return exitOK
}

// exitStatus returns the exit status for an error returned by a mode.
func exitStatus(err error) int {
	if err == nil {
		return exitOK
	}
	if curated.Has(err, argumentError) {
		return exitParseError
	}
	return exitModeError
}

// parseMode parses the flags of a mode. The mode should continue only if the
// boolean return value is true.
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(argumentError, err)
	}

	if len(md.RemainingArgs()) > 0 {
		return false, curated.Errorf(argumentError, fmt.Sprintf("unexpected argument: %s", md.GetArg(0)))
	}

	return true, nil
}

// listShaders prints the GLSL of every stage of every program required by a
// variant.
func listShaders(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	variant := md.AddString("variant", "A", "sphere variant: A, B, C")
	corrected := md.AddBool("corrected", false, "draw spheres at the patch centre and radius")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	v, err := scene.ParseVariant(*variant)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	for _, prg := range shaders.ForVariant(v, *corrected) {
		for _, src := range prg.Sources {
			fmt.Fprintf(output, "// %s program: %s stage\n", prg.Name, src.Stage)
			fmt.Fprintln(output, src.Text)
		}
	}

	return nil
}

// evaluate prints the position of every vertex generated for a single patch
// by the tessellation stages of a variant.
func evaluate(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	variant := md.AddString("variant", "A", "sphere variant: A, B, C")
	corrected := md.AddBool("corrected", false, "do not normalise the point on the sphere")
	x := md.AddFloat64("x", 0.1, "x coordinate of sphere centre")
	y := md.AddFloat64("y", 0.0, "y coordinate of sphere centre")
	z := md.AddFloat64("z", -1.0, "z coordinate of sphere centre")
	r := md.AddFloat64("r", 0.1, "radius of sphere")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	v, err := scene.ParseVariant(*variant)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	patch := tessellation.Patch{
		X:      float32(*x),
		Y:      float32(*y),
		Z:      float32(*z),
		Radius: float32(*r),
	}
	err = patch.Validate()
	if err != nil {
		return err
	}

	mode := tessellation.Normalised
	if *corrected {
		mode = tessellation.Corrected
	}

	levels := v.Levels()
	coords := levels.Coords()
	vertices := tessellation.Vertices(patch, levels, mode)

	fmt.Fprintf(output, "variant %s: %s: %d vertices\n", v, mode, len(vertices))
	for i := range coords {
		fmt.Fprintf(output, "%.4f %.4f -> %.6f %.6f %.6f\n",
			coords[i].U, coords[i].V,
			vertices[i].X(), vertices[i].Y(), vertices[i].Z())
	}

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if *revision {
		fmt.Fprintln(output, version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)

	return nil
}
