package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/jdevelop/go-manchester-tx/internal/payload"
	"github.com/jdevelop/go-manchester-tx/manchester"
)

const transmitterKey = "$tx"

var errUsage = errors.New("wrong number of arguments")

// action runs a command against the transmitter and returns the text to print.
type action func(tx *manchester.Transmitter, args []string) (string, error)

func sendText(tx *manchester.Transmitter, args []string) (string, error) {
	text := strings.Join(args, " ")
	if err := tx.TransmitFrame([]byte(text)); err != nil {
		return "", err
	}
	return fmt.Sprintf("sent %d bytes", len(text)), nil
}

func sendHex(tx *manchester.Transmitter, args []string) (string, error) {
	p, err := payload.ParseHex(strings.Join(args, ""))
	if err != nil {
		return "", err
	}
	if err := tx.TransmitFrame(p); err != nil {
		return "", err
	}
	return fmt.Sprintf("sent % X", p), nil
}

func sendU16(tx *manchester.Transmitter, args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage
	}
	v, err := payload.ParseU16(args[0])
	if err != nil {
		return "", err
	}
	if err := tx.TransmitU16(v); err != nil {
		return "", err
	}
	return fmt.Sprintf("sent %d", v), nil
}

func setPin(tx *manchester.Transmitter, args []string) (string, error) {
	if len(args) == 0 {
		return fmt.Sprintf("pin %d", tx.Pin()), nil
	}
	if len(args) != 1 {
		return "", errUsage
	}
	pin, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("invalid pin %q", args[0])
	}
	if err := tx.SetTransmitPin(pin); err != nil {
		return "", err
	}
	return fmt.Sprintf("pin %d", pin), nil
}

func showStats(tx *manchester.Transmitter, _ []string) (string, error) {
	s := tx.Stats()
	return fmt.Sprintf("frames %d, symbols %d, late transitions %d", s.Frames, s.Symbols, s.LateTransitions), nil
}

func bind(fn action) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		tx := c.Get(transmitterKey).(*manchester.Transmitter)
		out, err := fn(tx, c.Args)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(out)
	}
}

var commands = []*ishell.Cmd{
	{Name: "send", Aliases: []string{"s"}, Help: "TEXT", Func: bind(sendText)},
	{Name: "hex", Aliases: []string{"x"}, Help: "HEX BYTES", Func: bind(sendHex)},
	{Name: "u16", Aliases: []string{"u"}, Help: "VALUE (high byte first)", Func: bind(sendU16)},
	{Name: "pin", Aliases: []string{"p"}, Help: "[PIN]", Func: bind(setPin)},
	{Name: "stats", Help: "", Func: bind(showStats)},
}
