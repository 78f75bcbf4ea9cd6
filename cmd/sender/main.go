package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/jdevelop/go-manchester-tx/driver/stub"
	"github.com/jdevelop/go-manchester-tx/internal/payload"
	"github.com/jdevelop/go-manchester-tx/internal/txflags"
	"github.com/jdevelop/go-manchester-tx/manchester"
)

var (
	flagValue  uint
	flagText   string
	flagHex    string
	flagRepeat int
)

func init() {
	txflags.SetupFlags()
	flag.UintVar(&flagValue, "value", 1234, "16 bit value to send, high byte first")
	flag.StringVar(&flagText, "text", "", "Send this text instead of -value")
	flag.StringVar(&flagHex, "hex", "", "Send these hex bytes instead of -value")
	flag.IntVar(&flagRepeat, "repeat", 15, "Number of transmissions")
}

// framePayload picks the payload from the flags, -hex over -text over -value.
// A nil payload with no error means -value is sent as a 16 bit frame.
func framePayload() ([]byte, string, error) {
	switch {
	case flagHex != "":
		p, err := payload.ParseHex(flagHex)
		return p, fmt.Sprintf("% X", p), err
	case flagText != "":
		return []byte(flagText), fmt.Sprintf("%q", flagText), nil
	case flagValue > 0xFFFF:
		return nil, "", fmt.Errorf("value %d does not fit 16 bits", flagValue)
	default:
		return nil, fmt.Sprintf("%d", flagValue), nil
	}
}

func run(ctx context.Context) error {
	data, label, err := framePayload()
	if err != nil {
		return err
	}

	dev, err := txflags.NewConfig().Open()
	if err != nil {
		return err
	}
	defer dev.Close()
	tx := dev.Transmitter

	for i := 0; i < flagRepeat; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Printf("SEND: %s ON GPIO %d\n", label, tx.Pin())
		if data == nil {
			err = tx.TransmitU16(uint16(flagValue))
		} else {
			err = tx.TransmitFrame(data)
		}
		if err != nil {
			return err
		}
	}

	stats := tx.Stats()
	glog.Infof("%d frames, %d symbols, %d late transitions", stats.Frames, stats.Symbols, stats.LateTransitions)

	if d, ok := dev.Driver.(*stub.Driver); ok {
		n := len(data)
		if data == nil {
			n = 2
		}
		printWaveform(d.Events(), manchester.FrameLen(n))
	}
	return nil
}

// printWaveform dumps the last recorded frame, one symbol per line.
func printWaveform(events []stub.Event, symbols int) {
	if len(events) < 2*symbols {
		return
	}
	events = events[len(events)-2*symbols:]
	decoded, err := stub.Symbols(events)
	if err != nil {
		glog.Errorf("recorded waveform: %v", err)
		return
	}
	for i, s := range decoded {
		first, second := events[2*i], events[2*i+1]
		fmt.Printf("%3d %s %-4s @%d %-4s @%d\n", i, s, first.Level, first.At, second.Level, second.At)
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		glog.Errorf("send failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	fmt.Println("Done")
}
