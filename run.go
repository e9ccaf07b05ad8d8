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
	"os/signal"
	"time"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/glsl"
	"github.com/glsandbox/tessellate/glsl/native"
	"github.com/glsandbox/tessellate/gui"
	"github.com/glsandbox/tessellate/gui/glfwwindow"
	"github.com/glsandbox/tessellate/gui/sdlwindow"
	"github.com/glsandbox/tessellate/logger"
	"github.com/glsandbox/tessellate/modalflag"
	"github.com/glsandbox/tessellate/paths"
	"github.com/glsandbox/tessellate/performance"
	"github.com/glsandbox/tessellate/performance/limiter"
	"github.com/glsandbox/tessellate/prefs"
	"github.com/glsandbox/tessellate/scene"
	"github.com/glsandbox/tessellate/statsview"
	"github.com/glsandbox/tessellate/version"
)

// preference keys that can be used with the -prefs flag.
const (
	prefCorrected = "tessellate.corrected"
	prefWireframe = "tessellate.wireframe"
	prefFPSCap    = "tessellate.fpscap"
)

type preferences struct {
	corrected prefs.Bool
	wireframe prefs.Bool
	fpsCap    prefs.Int
}

// newPreferences sets the preferences to the values given on the command line
// and then applies any values on the top of the command line stack.
func newPreferences(corrected bool, wireframe bool, fpsCap int) (*preferences, error) {
	p := &preferences{}

	p.fpsCap.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("fps cap cannot be negative")
		}
		return nil
	})

	err := p.corrected.Set(corrected)
	if err != nil {
		return nil, err
	}
	err = p.wireframe.Set(wireframe)
	if err != nil {
		return nil, err
	}
	err = p.fpsCap.Set(fpsCap)
	if err != nil {
		return nil, err
	}

	for key, pref := range map[string]prefs.Pref{
		prefCorrected: &p.corrected,
		prefWireframe: &p.wireframe,
		prefFPSCap:    &p.fpsCap,
	} {
		ok, err := prefs.ApplyCommandLinePref(key, pref)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Logf(logger.Allow, "tessellate", "%s set to %s", key, pref)
		}
	}

	return p, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	variant := md.AddString("variant", "A", "sphere variant: A, B, C")
	window := md.AddString("window", "sdl", "window provider: sdl, glfw")
	corrected := md.AddBool("corrected", false, "draw spheres at the patch centre and radius")
	wireframe := md.AddBool("wireframe", false, "draw polygons as outlines")
	fpsCap := md.AddInt("fpscap", 0, "limit frames per second (0 for no limit)")
	duration := md.AddString("duration", "", "run for a fixed duration (eg. 10s)")
	profile := md.AddString("profile", "none", "run with profiler: cpu, mem, trace, all (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	prefsArg := md.AddString("prefs", "", "preferences: key::value; key::value")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	logger.Log(logger.Allow, "tessellate", version.String())

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			logger.Log(logger.Allow, "tessellate", "statsview not available in this build")
		}
	}

	prefs.PushCommandLineStack(*prefsArg)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "tessellate", "unused preferences: %s", unused)
		}
	}()

	pref, err := newPreferences(*corrected, *wireframe, *fpsCap)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	v, err := scene.ParseVariant(*variant)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	prov, err := gui.ParseProvider(*window)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	var dur time.Duration
	if *duration != "" {
		dur, err = time.ParseDuration(*duration)
		if err != nil {
			return curated.Errorf(argumentError, err)
		}
	}

	win, err := openWindow(prov, gui.DefaultConfig())
	if err != nil {
		return err
	}
	defer func() {
		err := win.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "tessellate", err)
		}
	}()

	w, h := win.FramebufferSize()
	logger.Logf(logger.Allow, "tessellate", "framebuffer: %dx%d", w, h)

	b, err := native.New()
	if err != nil {
		return err
	}

	rnd, err := glsl.NewRenderer(b, v, glsl.Options{
		Corrected: pref.corrected.Get().(bool),
		Wireframe: pref.wireframe.Get().(bool),
	})
	if err != nil {
		return err
	}
	defer rnd.Destroy()

	lim := limiter.NewFPSLimiter(pref.fpsCap.Get().(int))
	defer lim.Stop()

	// ctrl-c ends the render loop in the same way as closing the window
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	lp := newLoop(win, rnd, lim, output, time.Now)
	lp.intChan = intChan
	lp.duration = dur

	return performance.RunProfiler(prof, paths.UniqueFilename("tessellate", v.String()), lp.run)
}

// openWindow creates a window with the requested provider.
func openWindow(prov gui.Provider, cfg gui.Config) (gui.Window, error) {
	switch prov {
	case gui.ProviderGLFW:
		return glfwwindow.NewWindow(cfg)
	default:
		return sdlwindow.NewWindow(cfg)
	}
}
