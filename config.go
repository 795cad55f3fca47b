package reio

import (
	"bufio"
	"os"
	"regexp"

	"github.com/reiolib/reio/bytebuf"
)

// Config stores the configuration as defined in the current environment.
// Keys come from REIO_* environment variables and, when REIO_CONF names
// a readable file of KEY=VALUE lines, from that file.
var Config map[string]string

// environment variables read directly into Config
var configKeys = []string{"REIO_DEBUG", "REIO_GROWTH"}

// pat stores a valid key-value pattern line
var pat = "([A-Z0-9_]+)=(.*)"

// initConfig initializes the config map
func initConfig() error {
	re, _ := regexp.Compile(pat)

	Config = make(map[string]string)
	for _, key := range configKeys {
		if v, ok := os.LookupEnv(key); ok {
			Config[key] = v
		}
	}

	confPath, ok := os.LookupEnv("REIO_CONF")
	if !ok {
		return nil
	}

	f, err := os.Open(confPath)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		t := scanner.Text()
		if re.MatchString(t) {
			matches := re.FindStringSubmatch(t)
			Config[matches[1]] = matches[2]
		}
	}

	return scanner.Err()
}

// DefaultGrowth returns the growth policy output streams are created
// with: the policy named by REIO_GROWTH when set to something valid,
// the package default otherwise.
func DefaultGrowth() bytebuf.GrowthPolicy {
	if v, ok := Config["REIO_GROWTH"]; ok {
		if g, err := bytebuf.ParseGrowthPolicy(v); err == nil {
			return g
		}
	}
	return bytebuf.DefaultGrowthPolicy
}
