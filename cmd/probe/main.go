// Command probe checks that a running site answers its routes. It exits
// non-zero on failure so it can serve as a container health check.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/bilgisen/welcome/internal/config"
	"github.com/bilgisen/welcome/internal/probe"
)

func main() {
	url := flag.String("url", "", "base URL of the site (default derived from HOST and PORT)")
	timeout := flag.Duration("timeout", 5*time.Second, "per-request timeout")
	flag.Parse()

	if *url == "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "probe: %v\n", err)
			os.Exit(1)
		}
		*url = localURL(cfg)
	}

	// Leave room for the client's retries.
	deadline := 3 * *timeout
	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	err := probe.New(*url, *timeout).Check(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

// localURL maps a wildcard bind host onto loopback.
func localURL(cfg *config.Config) string {
	host := cfg.Host
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(cfg.Port))
}
