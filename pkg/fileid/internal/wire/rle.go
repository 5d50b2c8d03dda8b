package wire

import "fmt"

const maxRun = 255

// EncodeRLE collapses every run of zero bytes into a [0x00, n] pair,
// splitting runs longer than 255 into several pairs.
func EncodeRLE(data []byte) []byte {
	encoded := make([]byte, 0, len(data))
	run := 0
	for _, b := range data {
		if b == 0x00 {
			run++
			if run == maxRun {
				encoded = append(encoded, 0x00, maxRun)
				run = 0
			}
			continue
		}
		if run > 0 {
			encoded = append(encoded, 0x00, byte(run))
			run = 0
		}
		encoded = append(encoded, b)
	}
	if run > 0 {
		encoded = append(encoded, 0x00, byte(run))
	}
	return encoded
}

// DecodeRLE expands [0x00, n] pairs back into n zero bytes. Any count is
// accepted, zero included.
func DecodeRLE(rle []byte) ([]byte, error) {
	decoded := make([]byte, 0, len(rle)*2)
	for i := 0; i < len(rle); i++ {
		if rle[i] != 0x00 {
			decoded = append(decoded, rle[i])
			continue
		}
		if i+1 >= len(rle) {
			return nil, fmt.Errorf("%w: zero byte at offset %d has no run length", ErrMalformed, i)
		}
		i++
		for range int(rle[i]) {
			decoded = append(decoded, 0x00)
		}
	}
	return decoded, nil
}
