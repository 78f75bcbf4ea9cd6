package main

import (
	"flag"
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/jdevelop/go-manchester-tx/internal/txflags"
)

func init() {
	txflags.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	dev, err := txflags.NewConfig().Open()
	if err != nil {
		glog.Exitf("open transmitter: %v", err)
	}
	defer dev.Close()

	sh := ishell.New()
	sh.Set(transmitterKey, dev.Transmitter)
	sh.SetPrompt(fmt.Sprintf("tx[%d] > ", dev.Transmitter.Pin()))
	for _, cmd := range commands {
		sh.AddCmd(cmd)
	}

	if args := flag.Args(); len(args) > 0 {
		if err := sh.Process(args...); err != nil {
			glog.Errorf("%v", err)
		}
		return
	}
	sh.Run()
}
