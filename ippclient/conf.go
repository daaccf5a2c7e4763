/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Client configuration
 */

package ippclient

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"gopkg.in/ini.v1"
)

const (
	// ConfFileName defines a name of the configuration file
	ConfFileName = "ipp-tool.conf"
)

// Configuration represents the client configuration
type Configuration struct {
	PrinterURI      string         // Default printer-uri
	Language        string         // attributes-natural-language
	Version         ipp.Version    // Protocol version
	Auth            Authentication // Credentials
	Timeout         time.Duration  // HTTP exchange timeout
	MaxResponseSize int64          // Maximum IPP response size
	LogLevel        zerolog.Level  // Log level
	LogConsole      bool           // Human-readable log output
	LogFile         string         // Log file, "" for stderr
}

// DefaultConfiguration returns the configuration with all
// parameters set to defaults
func DefaultConfiguration() Configuration {
	return Configuration{
		Language:        ipp.DefaultNaturalLanguage,
		Version:         ipp.DefaultVersion,
		Timeout:         DefaultTimeout,
		MaxResponseSize: DefaultMaxResponseSize,
		LogLevel:        zerolog.InfoLevel,
		LogConsole:      true,
	}
}

// DefaultConfPaths returns the default list of configuration files:
// system-wide, then per-user
func DefaultConfPaths() []string {
	paths := []string{filepath.Join("/etc", ConfFileName)}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ConfFileName))
	}
	return paths
}

// LoadConfiguration loads configuration files on a top of defaults.
//
// Files are loaded in order, so later files override earlier ones.
// Missing files are skipped. Files with ".toml" extension are parsed
// as TOML, others as INI. Both forms use the same sections and keys.
//
// The IPP_LOG_LEVEL environment variable, if set, overrides the
// configured log level.
func LoadConfiguration(paths ...string) (Configuration, error) {
	conf := DefaultConfiguration()

	for _, path := range paths {
		err := conf.load(path)
		if err != nil {
			return conf, fmt.Errorf("conf: %s: %w", path, err)
		}
	}

	if s := os.Getenv(EnvLogLevel); s != "" {
		level, err := ParseLogLevel(s)
		if err != nil {
			return conf, fmt.Errorf("conf: %s: %w", EnvLogLevel, err)
		}
		conf.LogLevel = level
	}

	if err := conf.validate(); err != nil {
		return conf, fmt.Errorf("conf: %w", err)
	}

	return conf, nil
}

// NewPrinter creates the printer object. If uri is empty, the
// configured printer-uri is used.
func (conf *Configuration) NewPrinter(c *Client, uri string) (*Printer, error) {
	if uri == "" {
		uri = conf.PrinterURI
	}
	if uri == "" {
		return nil, ErrNoPrinter
	}

	var auth *Authentication
	if conf.Auth.Mode != AuthNone {
		a := conf.Auth
		auth = &a
	}

	p := NewPrinter(c, uri, auth)
	p.Version = conf.Version
	p.Lang = conf.Language

	return p, nil
}

// confRecord is a single key = value record of configuration file
type confRecord struct {
	Section, Key, Value string
}

// Create "bad value" error
func confBadValue(rec confRecord, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", rec.Key, fmt.Sprintf(format, args...))
}

// load loads a single configuration file
func (conf *Configuration) load(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	var records []confRecord
	var err error

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		records, err = confReadTOML(path)
	} else {
		records, err = confReadINI(path)
	}

	for i := 0; err == nil && i < len(records); i++ {
		err = conf.apply(records[i])
	}

	return err
}

// confReadINI reads records of the INI file
func confReadINI(path string) ([]confRecord, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	var records []confRecord
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			records = append(records,
				confRecord{section.Name(), key.Name(), key.String()})
		}
	}

	return records, nil
}

// confReadTOML reads records of the TOML file. Only the
// [section] key = value form is recognized.
func confReadTOML(path string) ([]confRecord, error) {
	var raw map[string]map[string]interface{}
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, err
	}

	var records []confRecord
	for _, key := range meta.Keys() {
		if len(key) == 2 {
			records = append(records, confRecord{key[0], key[1],
				fmt.Sprint(raw[key[0]][key[1]])})
		}
	}

	return records, nil
}

// apply applies the record. Unknown sections and keys are ignored.
func (conf *Configuration) apply(rec confRecord) error {
	var err error

	switch rec.Section {
	case "printer":
		switch rec.Key {
		case "uri":
			err = confLoadPrinterURIKey(&conf.PrinterURI, rec)
		case "language":
			err = confLoadLanguageKey(&conf.Language, rec)
		case "version":
			err = confLoadVersionKey(&conf.Version, rec)
		}
	case "auth":
		switch rec.Key {
		case "mode":
			conf.Auth.Mode, err = ParseAuthMode(rec.Value)
			if err != nil {
				err = confBadValue(rec, "%s", err)
			}
		case "user":
			conf.Auth.User = rec.Value
		case "password":
			conf.Auth.Password = rec.Value
		}
	case "transport":
		switch rec.Key {
		case "timeout":
			err = confLoadDurationKey(&conf.Timeout, rec)
		case "max-response-size":
			err = confLoadSizeKey(&conf.MaxResponseSize, rec)
		}
	case "logging":
		switch rec.Key {
		case "level":
			conf.LogLevel, err = ParseLogLevel(rec.Value)
			if err != nil {
				err = confBadValue(rec, "%s", err)
			}
		case "console":
			err = confLoadBinaryKey(&conf.LogConsole, rec, "disable", "enable")
		case "file":
			conf.LogFile = rec.Value
		}
	}

	return err
}

// validate checks the configuration consistency
func (conf *Configuration) validate() error {
	if conf.Auth.Mode != AuthNone && conf.Auth.User == "" {
		return fmt.Errorf("auth mode %s requires user", conf.Auth.Mode)
	}
	return nil
}

// Load printer URI key
func confLoadPrinterURIKey(out *string, rec confRecord) error {
	u, err := url.Parse(rec.Value)
	switch {
	case err != nil:
		return confBadValue(rec, "%q: invalid URI", rec.Value)
	case u.Scheme != "ipp" && u.Scheme != "ipps":
		return confBadValue(rec, "%q: scheme must be ipp or ipps", rec.Value)
	case u.Host == "":
		return confBadValue(rec, "%q: missing host", rec.Value)
	}

	*out = rec.Value
	return nil
}

// Load natural language key. The value is canonicalized.
func confLoadLanguageKey(out *string, rec confRecord) error {
	tag, err := language.Parse(rec.Value)
	if err != nil {
		return confBadValue(rec, "%q: invalid language", rec.Value)
	}

	*out = strings.ToLower(tag.String())
	return nil
}

// Load protocol version key: "major.minor"
func confLoadVersionKey(out *ipp.Version, rec confRecord) error {
	major, minor, found := strings.Cut(rec.Value, ".")
	if found {
		maj, err1 := strconv.ParseUint(major, 10, 8)
		mnr, err2 := strconv.ParseUint(minor, 10, 8)
		if err1 == nil && err2 == nil && maj >= 1 {
			*out = ipp.MakeVersion(uint8(maj), uint8(mnr))
			return nil
		}
	}

	return confBadValue(rec, "%q: invalid version", rec.Value)
}

// Load duration key
func confLoadDurationKey(out *time.Duration, rec confRecord) error {
	d, err := time.ParseDuration(rec.Value)
	if err != nil || d <= 0 {
		return confBadValue(rec, "%q: invalid duration", rec.Value)
	}

	*out = d
	return nil
}

// Load the binary key. TOML-style true and false are accepted as well.
func confLoadBinaryKey(out *bool, rec confRecord, vFalse, vTrue string) error {
	switch rec.Value {
	case vFalse, "false":
		*out = false
		return nil
	case vTrue, "true":
		*out = true
		return nil
	default:
		return confBadValue(rec, "must be %s or %s", vFalse, vTrue)
	}
}

// Load size key. K and M suffixes are recognized.
func confLoadSizeKey(out *int64, rec confRecord) error {
	units := uint64(1)
	value := rec.Value

	if l := len(value); l > 0 {
		switch value[l-1] {
		case 'k', 'K':
			units = 1024
		case 'm', 'M':
			units = 1024 * 1024
		}

		if units != 1 {
			value = value[:l-1]
		}
	}

	sz, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return confBadValue(rec, "%q: invalid size", rec.Value)
	}

	if sz > uint64(math.MaxInt64)/units {
		return confBadValue(rec, "size too large")
	}

	*out = int64(sz * units)
	return nil
}
