// chatlens - WhatsApp chat export analysis
//
// chatlens parses exported chat-log text files into structured records and
// computes descriptive statistics over them, for one participant or the
// whole conversation.
package main

import (
	"os"

	"github.com/chatlens/chatlens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
