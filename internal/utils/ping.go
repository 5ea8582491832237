package utils

import (
	"fmt"
	"net"
	"time"
)

const pingTimeout = 1500 * time.Millisecond

// PingHost checks if a TCP service is reachable at host:port.
func PingHost(host, port string) error {
	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, pingTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}
