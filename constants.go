package ads1115

// Gain selects the programmable gain amplifier's full-scale input range.
// Values are the FSR field of the config register (bits 9-11). The datasheet
// defines three encodings for the ±0.256V range; only the canonical one is
// exported here.
type Gain uint16

const (
	GainTwoThirds Gain = 0x0000 // ±6.144V
	GainOne       Gain = 0x0200 // ±4.096V
	GainTwo       Gain = 0x0400 // ±2.048V
	GainFour      Gain = 0x0600 // ±1.024V
	GainEight     Gain = 0x0800 // ±0.512V
	GainSixteen   Gain = 0x0A00 // ±0.256V
)

// DataRate selects the conversion rate in samples per second. Values are the
// DR field of the config register (bits 5-7).
type DataRate uint16

const (
	DataRate8   DataRate = 0x0000
	DataRate16  DataRate = 0x0020
	DataRate32  DataRate = 0x0040
	DataRate64  DataRate = 0x0060
	DataRate128 DataRate = 0x0080
	DataRate250 DataRate = 0x00A0
	DataRate475 DataRate = 0x00C0
	DataRate860 DataRate = 0x00E0
)

// I2C addresses selectable by strapping the ADDR pin.
const (
	AddrGnd uint16 = 0x48
	AddrVdd uint16 = 0x49
	AddrSda uint16 = 0x4A
	AddrScl uint16 = 0x4B
)

// Register map.
const (
	regConversion uint8 = 0x00
	regConfig     uint8 = 0x01
	regLoThresh   uint8 = 0x02
	regHiThresh   uint8 = 0x03
)

// Operational status, bit 15 of the config register. The bit position is
// shared but the meaning depends on direction: written as 1 it commands a
// single conversion, read back as 1 it means no conversion is in progress.
const (
	osSingleStart uint16 = 0x8000
	osIdle        uint16 = 0x8000
)

// Input mux codes for single-ended measurement of AINx against GND
// (bits 12-14, code 4+x). Codes 0-3 select the differential pairs and are
// unused here.
var muxSingle = [4]uint16{0x4000, 0x5000, 0x6000, 0x7000}

// Mode bit 8: 1 = single conversion then power down, 0 = continuous.
const modeSingleShot uint16 = 0x0100

// Comparator fields (bits 0-4). The driver always disables the comparator;
// the zero-valued constants are spelled out so the composed word reads like
// the config register layout.
const (
	compModeTraditional uint16 = 0x0000
	compPolActiveLow    uint16 = 0x0000
	compLatNonLatching  uint16 = 0x0000
	compQueDisable      uint16 = 0x0003
)

// fullScale gives the positive full-scale range per gain setting in
// nanovolts, i.e. the voltage represented by a raw reading of 32768.
var fullScale = map[Gain]int64{
	GainTwoThirds: 6_144_000_000,
	GainOne:       4_096_000_000,
	GainTwo:       2_048_000_000,
	GainFour:      1_024_000_000,
	GainEight:     512_000_000,
	GainSixteen:   256_000_000,
}
