package config

import (
	"os"
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/assemble"
)

// Environment variables for the environment tier of the backfill defaults.
const (
	EnvContributor  = "DATAVERSE_DEFAULT_AUTHOR"
	EnvContactEmail = "DATAVERSE_DEFAULT_EMAIL"
	EnvDescription  = "DATAVERSE_DEFAULT_DESCRIPTION"
)

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvDefaults reads the environment tier. A nil lookup reads the process
// environment. Blank values count as unset.
func EnvDefaults(lookup LookupFunc) assemble.Defaults {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	return assemble.Defaults{
		Contributor:  get(EnvContributor),
		ContactEmail: get(EnvContactEmail),
		Description:  get(EnvDescription),
	}
}
