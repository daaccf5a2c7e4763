/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Tests for configuration loading
 */

package ippclient

import (
	"testing"
	"time"

	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test loading of INI configuration
func TestConfLoadINI(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	conf, err := LoadConfiguration("testdata/ipp-tool.conf",
		"testdata/nonexistent.conf")
	require.NoError(t, err)

	assert.Equal(t, "ipp://printer.local/ipp/print", conf.PrinterURI)
	assert.Equal(t, "de-de", conf.Language)
	assert.Equal(t, ipp.Version20, conf.Version)
	assert.Equal(t, Authentication{AuthBasic, "alice", "secret"}, conf.Auth)
	assert.Equal(t, 10*time.Second, conf.Timeout)
	assert.Equal(t, int64(256*1024), conf.MaxResponseSize)
	assert.Equal(t, zerolog.DebugLevel, conf.LogLevel)
	assert.False(t, conf.LogConsole)
	assert.Equal(t, "", conf.LogFile)
}

// Test that later files override earlier ones, and TOML
func TestConfLoadOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	conf, err := LoadConfiguration("testdata/ipp-tool.conf",
		"testdata/override.toml")
	require.NoError(t, err)

	assert.Equal(t, "ipps://other.local:8443/ipp/print", conf.PrinterURI)
	assert.Equal(t, "de-de", conf.Language)
	assert.Equal(t, 90*time.Second, conf.Timeout)
	assert.Equal(t, int64(2*1024*1024), conf.MaxResponseSize)
	assert.Equal(t, zerolog.TraceLevel, conf.LogLevel)
	assert.True(t, conf.LogConsole)
	assert.Equal(t, "/var/log/ipp-tool/ipp-tool.log", conf.LogFile)
}

// Test defaults and the environment override
func TestConfDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	conf, err := LoadConfiguration()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), conf)

	t.Setenv(EnvLogLevel, "WARN")
	conf, err = LoadConfiguration()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, conf.LogLevel)

	t.Setenv(EnvLogLevel, "loud")
	_, err = LoadConfiguration()
	assert.ErrorContains(t, err, "IPP_LOG_LEVEL")
}

// Test rejection of bad files
func TestConfLoadErrors(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	_, err := LoadConfiguration("testdata/bad-size.conf")
	assert.ErrorContains(t, err, `max-response-size: "12Q": invalid size`)

	_, err = LoadConfiguration("testdata/bad-auth.toml")
	assert.ErrorContains(t, err, "requires user")
}

// Test individual keys
func TestConfKeys(t *testing.T) {
	tests := []struct {
		section, key, value string
		err                 string
		check               func(conf *Configuration)
	}{
		{"printer", "uri", "http://h/", "scheme must be ipp or ipps", nil},
		{"printer", "uri", "ipp:///x", "missing host", nil},
		{"printer", "language", "not a language", "invalid language", nil},
		{"printer", "language", "EN-gb", "", func(conf *Configuration) {
			assert.Equal(t, "en-gb", conf.Language)
		}},
		{"printer", "version", "1.0", "", func(conf *Configuration) {
			assert.Equal(t, ipp.Version10, conf.Version)
		}},
		{"printer", "version", "2", "invalid version", nil},
		{"printer", "version", "0.9", "invalid version", nil},
		{"auth", "mode", "kerberos", "must be none, requesting-user or basic", nil},
		{"transport", "timeout", "-1s", "invalid duration", nil},
		{"transport", "max-response-size", "1m", "", func(conf *Configuration) {
			assert.Equal(t, int64(1024*1024), conf.MaxResponseSize)
		}},
		{"transport", "max-response-size", "99999999999999999999K", "invalid size", nil},
		{"transport", "max-response-size", "9007199254740993K", "size too large", nil},
		{"logging", "console", "yes", "must be disable or enable", nil},
		{"logging", "console", "false", "", func(conf *Configuration) {
			assert.False(t, conf.LogConsole)
		}},
		{"logging", "level", "verbose", "invalid log level", nil},
		{"unknown", "key", "value", "", nil},
	}

	for _, test := range tests {
		conf := DefaultConfiguration()
		err := conf.apply(confRecord{test.section, test.key, test.value})

		if test.err != "" {
			assert.ErrorContains(t, err, test.key+": ")
			assert.ErrorContains(t, err, test.err)
			continue
		}

		require.NoError(t, err, "[%s] %s = %s", test.section, test.key, test.value)
		if test.check != nil {
			test.check(&conf)
		}
	}
}

// Test printer creation from configuration
func TestConfNewPrinter(t *testing.T) {
	conf := DefaultConfiguration()
	c := &Client{}

	_, err := conf.NewPrinter(c, "")
	assert.ErrorIs(t, err, ErrNoPrinter)

	conf.PrinterURI = "ipp://h/p"
	conf.Language = "fr"
	p, err := conf.NewPrinter(c, "")
	require.NoError(t, err)
	assert.Equal(t, "ipp://h/p", p.URI)
	assert.Nil(t, p.Auth)
	assert.Equal(t, "fr", p.Lang)

	conf.Auth = Authentication{Mode: AuthRequestingUser, User: "bob"}
	p, err = conf.NewPrinter(c, "ipps://other/p")
	require.NoError(t, err)
	assert.Equal(t, "ipps://other/p", p.URI)
	require.NotNil(t, p.Auth)
	assert.Equal(t, "bob", p.Auth.User)
}
