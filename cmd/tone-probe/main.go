package main

/*------------------------------------------------------------------
 *
 * Name:	tone-probe
 *
 * Purpose:	Quick manual-listening test program, analogous to
 *		cmd/gen_tone in the teacher repo: drives the real engine
 *		through a scripted command sequence on an actual audio
 *		device so a developer can listen to each voice.
 *
 *--------------------------------------------------------------------*/

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	access "github.com/oasis1701/arma3access/src"
)

func main() {
	voice := flag.StringP("voice", "v", "aim", "which voice to probe: aim, radar, or beacon")
	seconds := flag.IntP("seconds", "s", 3, "how long to play, in seconds")
	flag.Parse()

	engine := access.NewEngine(access.NullScreenReaderClient{})
	defer engine.ProcessDetach()

	switch *voice {
	case "aim":
		fmt.Println(engine.ExtensionString("aim_start"))
		fmt.Println(engine.ExtensionString("aim_update:0.3,650,0.2,0.1,0.05,0.05"))
	case "radar":
		fmt.Println(engine.ExtensionString("radar_start"))
		fmt.Println(engine.ExtensionString("radar_beep:-0.4,20,metal"))
		fmt.Println(engine.ExtensionString("radar_beep:0.4,60,grass"))
	case "beacon":
		fmt.Println(engine.ExtensionString("beacon_start"))
		fmt.Println(engine.ExtensionString("beacon_update:0.1"))
	default:
		fmt.Println("unknown voice:", *voice)

		return
	}

	time.Sleep(time.Duration(*seconds) * time.Second)
}
