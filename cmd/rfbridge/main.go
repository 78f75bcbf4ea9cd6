package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"

	"github.com/jdevelop/go-manchester-tx/bridge"
	"github.com/jdevelop/go-manchester-tx/internal/txflags"
	"github.com/jdevelop/go-manchester-tx/manchester"
)

const appID = "go-manchester-tx"

var flagBroker string

func init() {
	txflags.SetupFlags()
	flag.StringVar(&flagBroker, "broker", "mqtt://localhost:1883/rf/", "MQTT broker URL, the path is the topic prefix")
}

// clientID derives a stable MQTT client ID from the machine ID.
func clientID() string {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		glog.Warningf("machine id: %v", err)
		host, _ := os.Hostname()
		return "rfbridge-" + host
	}
	return "rfbridge-" + id[:12]
}

func main() {
	flag.Parse()
	defer glog.Flush()

	dev, err := txflags.NewConfig().Open()
	if err != nil {
		glog.Exitf("open transmitter: %v", err)
	}
	defer dev.Close()

	b, err := bridge.New(flagBroker, clientID(), manchester.NewShared(dev.Transmitter))
	if err != nil {
		glog.Exitf("broker: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	glog.Infof("bridging %q to pin %d", b.Prefix(), dev.Transmitter.Pin())
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		glog.Errorf("bridge: %v", err)
	}
}
