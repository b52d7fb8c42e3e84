// Package ads1115 drives the TI ADS1115 4-channel 16-bit delta-sigma ADC in
// single-shot mode over I2C.
package ads1115

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

var (
	// ErrInvalidChannel is returned for channels outside 0-3. No bus traffic
	// is generated for such a request.
	ErrInvalidChannel = errors.New("channel must be between 0 and 3")
	// ErrTimeout is returned when the device never reports conversion
	// completion within the poll budget.
	ErrTimeout = errors.New("timed out waiting for conversion")
)

// maxPolls bounds the completion wait so an unresponsive device cannot hang
// the caller indefinitely.
const maxPolls = 100

// Opts holds various configuration options for the converter
type Opts struct {
	// Addr is the 7-bit I2C address set by the ADDR pin strap, one of
	// AddrGnd, AddrVdd, AddrSda or AddrScl.
	Addr uint16
	// Gain sets the full-scale input range for all channels.
	Gain Gain
	// DataRate sets the conversion rate; slower rates average out more noise.
	DataRate DataRate
}

func DefaultOptions() *Opts {
	return &Opts{
		Addr:     AddrGnd,
		Gain:     GainOne,
		DataRate: DataRate128,
	}
}

func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.Addr < AddrGnd || opts.Addr > AddrScl {
		return nil, fmt.Errorf("ads1115: invalid address: %#x", opts.Addr)
	}
	if _, ok := fullScale[opts.Gain]; !ok {
		return nil, fmt.Errorf("ads1115: invalid gain: %#x", uint16(opts.Gain))
	}

	c := &i2c.Dev{Bus: b, Addr: opts.Addr}
	d := &Dev{
		t:    &smbusTransport{c: c},
		opts: *opts,
		name: c.String(),
	}

	switch opts.DataRate {
	case DataRate8:
		d.convTime = 125 * time.Millisecond
	case DataRate16:
		d.convTime = 63 * time.Millisecond
	case DataRate32:
		d.convTime = 32 * time.Millisecond
	case DataRate64:
		d.convTime = 16 * time.Millisecond
	case DataRate128:
		d.convTime = 8 * time.Millisecond
	case DataRate250:
		d.convTime = 4 * time.Millisecond
	case DataRate475:
		d.convTime = 2200 * time.Microsecond
	case DataRate860:
		d.convTime = 1200 * time.Microsecond
	default:
		return nil, fmt.Errorf("ads1115: invalid data rate: %#x", uint16(opts.DataRate))
	}

	return d, nil
}

type Dev struct {
	t        Transport
	opts     Opts
	convTime time.Duration
	name     string

	mu sync.Mutex
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADS1115{%s}", d.name)
}

// ReadChannel performs one single-ended conversion of AINx against ground
// and returns the raw two's-complement result. It blocks for the conversion
// time of the configured data rate.
//
// The exchange holds the device lock from config write to result read;
// interleaved register access by another caller would corrupt the poll.
func (d *Dev) ReadChannel(channel int) (int16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cfg, err := buildConfig(channel, d.opts.Gain, d.opts.DataRate)
	if err != nil {
		return 0, err
	}

	if err := d.t.WriteWord(regConfig, swapBytes(cfg)); err != nil {
		return 0, d.wrap(err)
	}

	// The device reuses bit 15 on read-back as a busy flag, cleared while a
	// conversion is running.
	for i := 0; i < maxPolls; i++ {
		status, err := d.t.ReadWord(regConfig)
		if err != nil {
			return 0, d.wrap(err)
		}
		if swapBytes(status)&osIdle != 0 {
			raw, err := d.t.ReadWord(regConversion)
			if err != nil {
				return 0, d.wrap(err)
			}
			return int16(swapBytes(raw)), nil
		}
		time.Sleep(d.convTime / 8)
	}

	return 0, d.wrap(ErrTimeout)
}

// ReadVoltage performs one conversion like ReadChannel and scales the result
// by the configured full-scale range.
func (d *Dev) ReadVoltage(channel int) (physic.ElectricPotential, error) {
	raw, err := d.ReadChannel(channel)
	if err != nil {
		return 0, err
	}
	fs := fullScale[d.opts.Gain]
	return physic.ElectricPotential(int64(raw) * fs / 32768), nil
}

// Halt implements conn.Resource. In single-shot mode the converter powers
// itself down after every conversion, so there is nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

// buildConfig composes the config register word for one single-ended
// single-shot conversion. The comparator is always disabled.
func buildConfig(channel int, gain Gain, rate DataRate) (uint16, error) {
	if channel < 0 || channel > 3 {
		return 0, ErrInvalidChannel
	}
	cfg := osSingleStart |
		muxSingle[channel] |
		uint16(gain) |
		modeSingleShot |
		uint16(rate) |
		compModeTraditional |
		compPolActiveLow |
		compLatNonLatching |
		compQueDisable
	return cfg, nil
}

// swapBytes converts a register word between wire order and host order. The
// device transfers the high byte first while SMBus word access assembles the
// low byte first; the swap is its own inverse so one function covers both
// directions.
func swapBytes(w uint16) uint16 {
	return w>>8 | w<<8
}

func (d *Dev) wrap(err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(d.name), err)
}

var _ conn.Resource = &Dev{}
