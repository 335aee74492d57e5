// Package test holds helpers shared by tests.
package test

import (
	"fmt"
	"net"
	"sync"
	"time"
)

var (
	used = map[int]struct{}{}
	lock sync.Mutex
)

// RandomPort returns a free local port that was not handed out before.
func RandomPort() int {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		panic(err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()

	lock.Lock()
	if _, ok := used[port]; ok {
		lock.Unlock()
		return RandomPort()
	}
	used[port] = struct{}{}
	lock.Unlock()

	return port
}

// Addr returns a localhost address on a random port.
func Addr() string {
	return fmt.Sprintf("localhost:%d", RandomPort())
}

// WaitForAddr waits until addr accepts TCP connections.
func WaitForAddr(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.DialTimeout("tcp", addr, time.Second)
		if err == nil {
			return conn.Close()
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s not reachable after %s: %w", addr, timeout, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
