package engine

import (
	"testing"
	"time"
)

func TestChannelTicker_NilWhileStopped(t *testing.T) {
	var tk ChannelTicker
	if tk.C() != nil {
		t.Fatal("zero ChannelTicker should have a nil channel")
	}

	tk.Start(5 * time.Millisecond)
	if tk.C() == nil {
		t.Fatal("started ChannelTicker should have a channel")
	}
	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("no tick within 1s")
	}

	tk.Stop()
	if tk.C() != nil {
		t.Fatal("stopped ChannelTicker should have a nil channel")
	}

	tk.Start(5 * time.Millisecond)
	defer tk.Stop()
	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("no tick after restart")
	}
}
