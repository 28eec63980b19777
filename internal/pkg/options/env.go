package options

import (
	"strings"
)

const envPrefix = "CCLOUD_"

// envNamingConvention maps a flag name to the ENV variable name,
// eg. "base-url" -> "CCLOUD_BASE_URL".
type envNamingConvention struct{}

func (*envNamingConvention) Replace(flagName string) string {
	if flagName == "" {
		panic("flag name cannot be empty")
	}
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
