package ext_test

import (
	"log/slog"
	"net/netip"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavisLCVB/doptions"
	"github.com/DavisLCVB/doptions/ext"
)

func TestPoint(t *testing.T) {
	p, err := ext.ParsePoint("(3.14,2.71)")
	require.NoError(t, err)
	assert.Equal(t, ext.Point{X: 3.14, Y: 2.71}, p)

	p, err = ext.ParsePoint("( -1 , 0.5 )")
	require.NoError(t, err)
	assert.Equal(t, ext.Point{X: -1, Y: 0.5}, p)

	for _, s := range []string{"", "3,4", "(3;4)", "(3,4"} {
		_, err = ext.ParsePoint(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
	_, err = ext.ParsePoint("(a,1)")
	var ce *doptions.ConversionError
	assert.ErrorAs(t, err, &ce)
}

func TestPolygon(t *testing.T) {
	p, err := ext.ParsePolygon("[(0,0),(4,0),(4,3),(0,3)]")
	require.NoError(t, err)
	assert.Len(t, p, 4)
	assert.Equal(t, ext.Point{X: 4, Y: 3}, p[2])

	p, err = ext.ParsePolygon("[]")
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = ext.ParsePolygon("[(0,0),(1,1)]")
	assert.EqualError(t, err, `invalid format: polygon "[(0,0),(1,1)]", expected at least 3 vertices`)
	_, err = ext.ParsePolygon("[(0,0),(1,1),(2,2]")
	assert.ErrorIs(t, err, ext.ErrFormat)
	_, err = ext.ParsePolygon("(0,0),(1,1),(2,2)")
	assert.ErrorIs(t, err, ext.ErrFormat)
}

func TestLists(t *testing.T) {
	il, err := ext.ParseIntList("[ 1 , 2 , 3 ]")
	require.NoError(t, err)
	assert.Equal(t, ext.IntList{1, 2, 3}, il)

	il, err = ext.ParseIntList("[]")
	require.NoError(t, err)
	assert.Equal(t, ext.IntList{}, il)

	for _, s := range []string{"1,2,3", "[1,2,3", "1,2,3]"} {
		_, err = ext.ParseIntList(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
	_, err = ext.ParseIntList("[1,x]")
	assert.EqualError(t, err, `cannot convert "x" to int: invalid syntax`)

	sl, err := ext.ParseStringList("[ alpha , beta ,, gamma ]")
	require.NoError(t, err)
	assert.Equal(t, ext.StringList{"alpha", "beta", "gamma"}, sl)

	set, err := ext.ParseIntSet("{5,1,3,3,2,1}")
	require.NoError(t, err)
	assert.Equal(t, ext.IntSet{1, 2, 3, 5}, set)
	_, err = ext.ParseIntSet("[1,2]")
	assert.ErrorIs(t, err, ext.ErrFormat)
}

func TestKeyValues(t *testing.T) {
	kv, err := ext.ParseKeyValues("{ host : localhost , port:8080,db:mydb}")
	require.NoError(t, err)
	expected := ext.KeyValues{"host": "localhost", "port": "8080", "db": "mydb"}
	if diff := cmp.Diff(expected, kv); diff != "" {
		t.Errorf("key values mismatch (-want +got):\n%s", diff)
	}

	kv, err = ext.ParseKeyValues("{}")
	require.NoError(t, err)
	assert.Empty(t, kv)

	for _, s := range []string{"{key1,key2}", "{:value}", "key:value"} {
		_, err = ext.ParseKeyValues(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		in       string
		min, max int
	}{
		{"1..100", 1, 100},
		{"10-50", 10, 50},
		{"-10..10", -10, 10},
		{"-10--5", -10, -5},
		{"7..7", 7, 7},
	}
	for _, tt := range tests {
		r, err := ext.ParseRange(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, ext.Range{Min: tt.min, Max: tt.max}, r, tt.in)
	}

	_, err := ext.ParseRange("100..10")
	assert.EqualError(t, err, `invalid format: range "100..10", expected min <= max`)
	_, err = ext.ParseRange("42")
	assert.ErrorIs(t, err, ext.ErrFormat)
	_, err = ext.ParseRange("a..b")
	assert.Error(t, err)

	r := ext.Range{Min: 1, Max: 3}
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(4))
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in string
		d  time.Duration
	}{
		{"500ms", 500 * time.Millisecond},
		{"30s", 30 * time.Second},
		{"5m", 5 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
	}
	for _, tt := range tests {
		d, err := ext.ParseDuration(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.d, d, tt.in)
	}

	for _, s := range []string{"10x", "5w", "ms", "10", "", "1h30m", "-5s"} {
		_, err := ext.ParseDuration(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
	_, err := ext.ParseDuration("999999999999d")
	var oor *doptions.ValueOutOfRangeError
	assert.ErrorAs(t, err, &oor)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in    string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WaRnInG", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"crit", slog.LevelError + 4},
		{"info+2", slog.LevelInfo + 2},
	}
	for _, tt := range tests {
		l, err := ext.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.level, l, tt.in)
	}
	for _, s := range []string{"invalid", "trace", ""} {
		_, err := ext.ParseLevel(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
}

func TestIPv4(t *testing.T) {
	a, err := ext.ParseIPv4("192.168.1.10")
	require.NoError(t, err)
	assert.Equal(t, netip.AddrFrom4([4]byte{192, 168, 1, 10}), a)

	for _, s := range []string{"256.1.1.1", "1.2.3", "::1", "host"} {
		_, err = ext.ParseIPv4(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
}

func TestDatabaseConfig(t *testing.T) {
	c, err := ext.ParseDatabaseConfig("db.example.com:6543/orders@admin")
	require.NoError(t, err)
	assert.Equal(t, ext.DatabaseConfig{Host: "db.example.com", Port: 6543, Database: "orders", User: "admin"}, c)

	c, err = ext.ParseDatabaseConfig("localhost/test@me")
	require.NoError(t, err)
	assert.Equal(t, uint16(ext.DefaultDatabasePort), c.Port)
	assert.Equal(t, "localhost", c.Host)

	for _, s := range []string{"localhost/test", "localhost@me", "/test@me", "localhost/@me"} {
		_, err = ext.ParseDatabaseConfig(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
	_, err = ext.ParseDatabaseConfig("localhost:70000/test@me")
	var oor *doptions.ValueOutOfRangeError
	assert.ErrorAs(t, err, &oor)
}

func TestColor(t *testing.T) {
	c, err := ext.ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, ext.Color{R: 255, G: 128, B: 0}, c)
	assert.Equal(t, "#ff8000", c.String())

	c, err = ext.ParseColor("rgb(1, 2, 3)")
	require.NoError(t, err)
	assert.Equal(t, ext.Color{R: 1, G: 2, B: 3}, c)

	for _, s := range []string{"#fff", "#gg0000", "rgb(1,2)", "red"} {
		_, err = ext.ParseColor(s)
		assert.ErrorIs(t, err, ext.ErrFormat, s)
	}
	_, err = ext.ParseColor("rgb(1,2,300)")
	assert.EqualError(t, err, "value out of range for uint8: 300 (0 - 255)")
}

func TestIdentifiers(t *testing.T) {
	u, err := ext.ParseUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", u.String())
	_, err = ext.ParseUUID("not-a-uuid")
	assert.ErrorIs(t, err, ext.ErrFormat)

	v, err := ext.ParseVersion("v1.4.2")
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", v.String())
	_, err = ext.ParseVersion("one")
	assert.ErrorIs(t, err, ext.ErrFormat)

	c, err := ext.ParseConstraint(">= 1.2, < 2")
	require.NoError(t, err)
	assert.True(t, c.Check(semver.MustParse("1.9.0")))
	assert.False(t, c.Check(semver.MustParse("2.0.0")))
	_, err = ext.ParseConstraint("~~~")
	assert.ErrorIs(t, err, ext.ErrFormat)
}

func TestRegister(t *testing.T) {
	c := doptions.NewConfig()
	require.NoError(t, ext.Register(c.Registry))
	err := ext.Register(c.Registry)
	assert.ErrorContains(t, err, "converter for ext.Point already registered")

	app, err := doptions.CustomApp(c)
	require.NoError(t, err)
	var (
		timeout time.Duration
		level   slog.Level
		addr    netip.Addr
		id      uuid.UUID
		version *semver.Version
		hosts   ext.StringList
	)
	for spec, target := range map[string]any{
		"--timeout":   &timeout,
		"--log-level": &level,
		"--bind":      &addr,
		"--id":        &id,
		"--version":   &version,
		"--hosts":     &hosts,
	} {
		_, err := app.AddOption(spec, target)
		require.NoError(t, err, spec)
	}

	err = app.Parse([]string{
		"--timeout", "30s",
		"--log-level", "info",
		"--bind", "0.0.0.0",
		"--id", "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"--version", "2.1.0",
		"--hosts", "[localhost,example.com]",
	})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)
	assert.Equal(t, slog.LevelInfo, level)
	assert.Equal(t, netip.IPv4Unspecified(), addr)
	assert.Equal(t, uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"), id)
	require.NotNil(t, version)
	assert.Equal(t, uint64(2), version.Major())
	assert.Equal(t, ext.StringList{"localhost", "example.com"}, hosts)

	// the registered converter replaces the builtin int64 conversion
	err = app.Parse([]string{"--timeout", "1500"})
	assert.ErrorIs(t, err, ext.ErrFormat)
}
