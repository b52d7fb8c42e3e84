package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/mikesmitty/ads1115"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	bus := flag.String("bus", "", "Name of the I2C bus")
	addr := flag.Uint("addr", uint(ads1115.AddrGnd), "I2C address (0x48-0x4B)")
	gainFlag := flag.String("gain", "1", "PGA gain (2/3, 1, 2, 4, 8 or 16)")
	interval := flag.Duration("interval", 50*time.Millisecond, "Delay between sample cycles")
	flag.Parse()

	_, err := host.Init()
	if err != nil {
		log.Fatal(err)
	}

	b, err := i2creg.Open(*bus)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	var gain ads1115.Gain
	switch strings.TrimSpace(*gainFlag) {
	case "2/3":
		gain = ads1115.GainTwoThirds
	case "1":
		gain = ads1115.GainOne
	case "2":
		gain = ads1115.GainTwo
	case "4":
		gain = ads1115.GainFour
	case "8":
		gain = ads1115.GainEight
	case "16":
		gain = ads1115.GainSixteen
	default:
		log.Fatal("Invalid gain")
	}

	opts := ads1115.DefaultOptions()
	opts.Addr = uint16(*addr)
	opts.Gain = gain

	dev, err := ads1115.New(b, opts)
	if err != nil {
		log.Fatal(err)
	}

	ticker := time.NewTicker(*interval)

	for {
		for ch := 0; ch < 4; ch++ {
			v, err := dev.ReadVoltage(ch)
			if err != nil {
				log.Print(err)
				continue
			}
			log.Printf("AIN%d: %s", ch, v)
		}

		<-ticker.C
	}
}
