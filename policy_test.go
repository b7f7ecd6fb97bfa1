package doptions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavisLCVB/doptions"
)

func TestDefaultPolicy(t *testing.T) {
	p := doptions.DefaultPolicy()
	expected := doptions.Policy{
		ShortNameMaxLength: 3,
		LongNameMaxLength:  100,
		AllowDashes:        true,
		AllowUnderscores:   true,
	}
	if diff := cmp.Diff(expected, p); diff != "" {
		t.Errorf("default policy mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, p.Validate())
}

func TestDecodePolicyYAML(t *testing.T) {
	p, err := doptions.DecodePolicyYAML([]byte(`
short_name_max_length: 2
allow_dots: true
allow_underscores: false
reserved_names: [help, version]
`))
	require.NoError(t, err)
	expected := doptions.Policy{
		ShortNameMaxLength: 2,
		LongNameMaxLength:  100,
		AllowDots:          true,
		AllowDashes:        true,
		ReservedNames:      []string{"help", "version"},
	}
	if diff := cmp.Diff(expected, p); diff != "" {
		t.Errorf("policy mismatch (-want +got):\n%s", diff)
	}

	p, err = doptions.DecodePolicyYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, doptions.DefaultPolicy(), p)

	_, err = doptions.DecodePolicyYAML([]byte("short_max: 2\n"))
	assert.ErrorContains(t, err, "short_max")

	_, err = doptions.DecodePolicyYAML([]byte("short_name_max_length: 100\n"))
	assert.EqualError(t, err, "invalid policy: long name max length 100 must exceed short name max length 100")
}

func TestDecodePolicyTOML(t *testing.T) {
	p, err := doptions.DecodePolicyTOML([]byte(`
long_name_max_length = 20
allow_dashes = false
reserved_names = ["help"]
`))
	require.NoError(t, err)
	expected := doptions.Policy{
		ShortNameMaxLength: 3,
		LongNameMaxLength:  20,
		AllowUnderscores:   true,
		ReservedNames:      []string{"help"},
	}
	if diff := cmp.Diff(expected, p); diff != "" {
		t.Errorf("policy mismatch (-want +got):\n%s", diff)
	}

	_, err = doptions.DecodePolicyTOML([]byte("colour = true\n"))
	assert.EqualError(t, err, `decoding policy: unknown key "colour"`)

	_, err = doptions.DecodePolicyTOML([]byte("short_name_max_length = 0\n"))
	assert.EqualError(t, err, "invalid policy: short name max length 0 is less than 1")
}

func TestLoadPolicyFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	p, err := doptions.LoadPolicyFile(write("policy.yml", "short_name_max_length: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, p.ShortNameMaxLength)

	p, err = doptions.LoadPolicyFile(write("policy.toml", "short_name_max_length = 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, p.ShortNameMaxLength)

	path := write("policy.json", "{}")
	_, err = doptions.LoadPolicyFile(path)
	assert.EqualError(t, err, `policy file "`+path+`": unsupported extension ".json"`)

	_, err = doptions.LoadPolicyFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPolicyAppliedToApplication(t *testing.T) {
	c := doptions.NewConfig()
	p, err := doptions.DecodePolicyYAML([]byte("short_name_max_length: 1\nreserved_names: [help]\n"))
	require.NoError(t, err)
	c.Policy = p
	app, err := doptions.CustomApp(c)
	require.NoError(t, err)

	var s string
	o, err := app.AddOption("ab", &s)
	require.NoError(t, err)
	assert.Equal(t, "--ab", o.LongName())

	_, err = app.AddOption("-ab", &s)
	assert.EqualError(t, err, `name "ab" has invalid size 2 (short: 1-1)`)

	var help bool
	_, err = app.AddOption("--help", &help)
	assert.EqualError(t, err, `invalid name: "help" (reserved)`)

	_, err = app.AddOption("-x,--extra", &s)
	assert.NoError(t, err)
}
