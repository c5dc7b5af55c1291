package main

/*------------------------------------------------------------------
 *
 * Name:	blindaim-harness
 *
 * Purpose:	Debug stand-in for the real host ABI shim: reads command
 *		lines from stdin (or a single `--cmd`/`-c` flag) and forwards
 *		them to the engine, printing the returned status string.
 *		Plays the role cmd/direwolf/main.go plays for the wider
 *		direwolf TNC relative to this engine.
 *
 *--------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gordonklaus/portaudio"
	flag "github.com/spf13/pflag"

	access "github.com/oasis1701/arma3access/src"
)

func main() {
	cmd := flag.StringP("cmd", "c", "", "run a single command and exit instead of reading stdin")
	listDevices := flag.Bool("list-devices", false, "enumerate portaudio host devices and exit")
	flag.Parse()

	if *listDevices {
		if err := printDevices(); err != nil {
			fmt.Fprintln(os.Stderr, "list-devices:", err)
			os.Exit(1)
		}

		return
	}

	engine := access.NewEngine(access.NullScreenReaderClient{})
	defer engine.ProcessDetach()

	if *cmd != "" {
		fmt.Println(engine.ExtensionString(*cmd))

		return
	}

	fmt.Println(engine.Version())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fmt.Println(engine.ExtensionString(line))
	}
}

// printDevices enumerates portaudio devices, the Go analog of
// audio_open's device-name logging in the teacher's audio.go.
func printDevices() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio initialize: %w", err)
	}
	defer portaudio.Terminate()

	devices, err := portaudio.Devices()
	if err != nil {
		return fmt.Errorf("enumerate devices: %w", err)
	}

	for i, d := range devices {
		fmt.Printf("%2d: %s (out channels: %d, default sample rate: %.0f)\n",
			i, d.Name, d.MaxOutputChannels, d.DefaultSampleRate)
	}

	return nil
}
