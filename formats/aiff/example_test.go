// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/storyaudio/formats/aiff"
)

func ExampleDecoder_Decode() {
	f, err := os.Open("narration.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channels\n", src.SampleRate(), src.Channels())
}
