// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/storyaudio/formats/wav"
)

func ExampleEncode() {
	pcm := []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0xc0, 0xff, 0x7f}

	data := wav.Encode(pcm, 24000)
	fmt.Println(len(data), string(data[0:4]), binary.LittleEndian.Uint32(data[4:8]))

	legacy := wav.Encode(pcm, 24000, wav.WithChunkSize(wav.ChunkSizeLegacy))
	fmt.Println(len(legacy), binary.LittleEndian.Uint32(legacy[4:8]))
	// Output:
	// 52 RIFF 44
	// 52 40
}

func ExamplePayload() {
	data := wav.Encode([]byte{0x01, 0x00, 0x02, 0x00}, 8000)

	payload, err := wav.Payload(data)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(payload)
	// Output: [1 0 2 0]
}
