package ads1115

import "periph.io/x/conn/v3/i2c"

// Transport is the register-level bus access the driver runs on. Words are
// exchanged in the host's SMBus order (low byte first); callers are expected
// to byte-swap, since the device itself sends and expects the high byte
// first.
type Transport interface {
	WriteWord(reg uint8, val uint16) error
	ReadWord(reg uint8) (uint16, error)
}

// smbusTransport implements Transport over an addressed I2C device using
// SMBus word semantics: a write is [reg, lo, hi], a read is a write of [reg]
// followed by a two byte read assembled low byte first.
type smbusTransport struct {
	c *i2c.Dev
}

func (t *smbusTransport) WriteWord(reg uint8, val uint16) error {
	return t.c.Tx([]byte{reg, byte(val), byte(val >> 8)}, nil)
}

func (t *smbusTransport) ReadWord(reg uint8) (uint16, error) {
	var r [2]byte
	if err := t.c.Tx([]byte{reg}, r[:]); err != nil {
		return 0, err
	}
	return uint16(r[0]) | uint16(r[1])<<8, nil
}
