// Command demo wires a runtime.Runtime against a fake host adapter and
// drives one connect -> frame -> disconnect cycle, illustrating how a real
// plugin entry point would use this module.
package main

import (
	"fmt"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/corelog"
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/mathutil"
	"github.com/sqmodcore/host/runtime"
)

func main() {
	corelog.SetLogger(corelog.New(os.Stderr, logiface.LevelDebug))

	host := abi.NewFake()
	host.AddPlayer(0, "alice")

	rt := runtime.New(host, runtime.WithPlayerCapacity(8), runtime.WithVehicleCapacity(8))

	rt.Server.On(event.KindPlayerConnect, func(ev *event.Event) {
		fmt.Println("player connected:", ev.Detail)
	})
	rt.Server.On(event.KindPlayerDisconnect, func(ev *event.Event) {
		fmt.Println("player disconnected:", ev.Detail)
	})

	rec, err := rt.Lifecycle.PlayerConnect(0, "alice")
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect failed:", err)
		os.Exit(1)
	}
	rec.TrackPosition = -1
	rec.Events.On(event.KindPositionChange, func(ev *event.Event) {
		fmt.Println("position changed:", ev.Detail)
	})

	rt.OnServerFrame(16)
	if err := host.SetPlayerPosition(0, mathutil.Vector3{X: 10, Y: 0, Z: 5}); err != nil {
		fmt.Fprintln(os.Stderr, "move failed:", err)
		os.Exit(1)
	}
	rt.OnServerFrame(16)

	if err := rt.Lifecycle.PlayerDisconnect(0, abi.DisconnectQuit); err != nil {
		fmt.Fprintln(os.Stderr, "disconnect failed:", err)
		os.Exit(1)
	}
}
