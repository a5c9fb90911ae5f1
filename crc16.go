package sidechannel

import "github.com/sigurn/crc16"

// crcTable implements CRC-16-CCITT: polynomial 0x1021, initial register 0xFFFF, no input
// or output reflection, no final XOR — the CCITT_FALSE parameter set.
var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// CRC16 computes the frame trailer checksum over data. Feeding the full byte sequence
// including a correctly appended trailer back through CRC16 yields 0.
func CRC16(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}
