package ext

import (
	"net/netip"
	"strings"

	"github.com/DavisLCVB/doptions"
)

// ParseIPv4 parses a dotted IPv4 address such as "192.168.1.1".
func ParseIPv4(s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil || !a.Is4() {
		return netip.Addr{}, formatError("IPv4 address", s, "four octets 0-255")
	}
	return a, nil
}

// DefaultDatabasePort is used when a DatabaseConfig has no port.
const DefaultDatabasePort = 5432

// DatabaseConfig locates a database and the user connecting to it.
type DatabaseConfig struct {
	Host     string
	Port     uint16
	Database string
	User     string
}

// ParseDatabaseConfig parses "host[:port]/database@user".
func ParseDatabaseConfig(s string) (DatabaseConfig, error) {
	const want = "host[:port]/database@user"
	rest, user, ok := strings.Cut(s, "@")
	if !ok || user == "" {
		return DatabaseConfig{}, formatError("database config", s, want)
	}
	hostPort, db, ok := strings.Cut(rest, "/")
	if !ok || db == "" {
		return DatabaseConfig{}, formatError("database config", s, want)
	}
	c := DatabaseConfig{Host: hostPort, Port: DefaultDatabasePort, Database: db, User: user}
	if host, port, ok := strings.Cut(hostPort, ":"); ok {
		p, err := doptions.Convert[uint16](builtin, port)
		if err != nil {
			return DatabaseConfig{}, err
		}
		c.Host, c.Port = host, p
	}
	if c.Host == "" {
		return DatabaseConfig{}, formatError("database config", s, want)
	}
	return c, nil
}
