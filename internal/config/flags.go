package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the gateway command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-upstream-api backend REST API base URL
//	-upstream-api-key backend REST API key
//	-sheets-base spreadsheet export origin
//	-upstream-timeout outbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("krooster-proxy", flag.ContinueOnError)

	var serverAddress NetAddress
	var apiBase, apiKey, sheetsBase string
	var jsonConfigPath string
	var upstreamTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiBase, "upstream-api", "", "Backend REST API base URL")
	fs.StringVar(&apiKey, "upstream-api-key", "", "Backend REST API key")
	fs.StringVar(&sheetsBase, "sheets-base", "", "Spreadsheet export origin")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Upstream: Upstream{
			APIBase:        apiBase,
			APIKey:         apiKey,
			SheetsBase:     sheetsBase,
			RequestTimeout: upstreamTimeout,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// address falls through to lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds all interfaces; otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
