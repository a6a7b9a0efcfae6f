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

// Package performance measures the frame rate of the emulation running
// without a display.
package performance

import (
	"fmt"
	"io"
	"time"

	"gophernes/cartridgeloader"
	"gophernes/hardware"
	"gophernes/hardware/clocks"
)

// the amount of time to allow the emulation to settle down before
// measurement starts.
const leadTime = 2 * time.Second

// CalcFPS takes a number of frames and a duration (in seconds) and returns
// the frames-per-second and that value as a percentage of the NTSC frame
// rate.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / clocks.FramesPerSecond
	return fps, accuracy
}

// Check the performance of the emulation using the supplied cartridge. The
// console runs as fast as it can for the specified duration and the observed
// frame rate is written to output.
func Check(output io.Writer, cartload cartridgeloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	console := hardware.NewConsole()

	err = console.AttachCartridge(cartload)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// trigger that expires when the measurement period has elapsed. the
	// leadtime is signalled first so the start frame can be recorded
	timerChan := make(chan bool)
	go func() {
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})
	}()

	startFrame := console.PPU.Frame

	done := false
	for !done {
		_, err = console.RunFrame()
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}

		select {
		case v := <-timerChan:
			if v {
				done = true
			} else {
				// leadtime has concluded. measurement starts here
				startFrame = console.PPU.Frame
			}
		default:
		}
	}

	numFrames := console.PPU.Frame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2fs) %.1f%%\n",
		fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
