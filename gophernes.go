// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"

	"gophernes/cartridgeloader"
	"gophernes/gui/sdlplay"
	"gophernes/hardware"
	"gophernes/logger"
	"gophernes/modalflag"
	"gophernes/performance"
	"gophernes/statsview"

	"github.com/bradleyjkemp/memviz"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

// cartridge returns the loader for the single cartridge file named on the
// command line.
func cartridge(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("%s mode requires a cartridge file", md.Mode())
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md.Mode())
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 3.0, "window scale")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to NTSC refresh rate")
	echoLog := md.AddBool("log", false, "echo log entries to stderr as they happen")
	stateDump := md.AddString("memviz", "", "write a dot graph of the console state to the named file")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	console := hardware.NewConsole()
	err = console.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	scr, err := sdlplay.NewSdlPlay(console, float32(*scale))
	if err != nil {
		return err
	}
	defer scr.Destroy()
	scr.SetFPSCap(*fpsCap)

	if *stateDump != "" {
		buf := &bytes.Buffer{}
		memviz.Map(buf, console)
		err = ioutil.WriteFile(*stateDump, buf.Bytes(), 0644)
		if err != nil {
			return err
		}
	}

	for !scr.HasQuit() {
		_, err = console.RunFrame()
		if err != nil {
			return err
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "length of time to run for")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %t)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, cartload, *duration)
}
