package options

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/utils"
)

// Options contains parsed flags and ENV variables.
type Options struct {
	Verbose         bool   `flag:"verbose"`          // verbose mode, print details to console
	LogFilePath     string `flag:"log-file"`         // path to the log file
	NonInteractive  bool   `flag:"non-interactive"`  // disable all prompts, use defaults
	BaseURL         string `flag:"base-url"`         // connector management service URL
	CredentialsFile string `flag:"credentials-file"` // path to a JSON credentials file
	Connector       string `flag:"connector"`        // name of the source connector
	Environment     string `flag:"environment"`      // environment ID
	Cluster         string `flag:"cluster"`          // cluster ID
}

func NewOptions() *Options {
	return &Options{}
}

// BindPersistentFlags for all commands.
func (o *Options) BindPersistentFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.String("base-url", "", "connector management service URL")
	flags.String("credentials-file", "", `path to a JSON file with "email" and "password"`)
	flags.Bool("non-interactive", false, "disable interactive prompts")
	flags.BoolP("verbose", "v", false, "print details")
}

// BindMigrationFlags for the migration sub-commands.
func (o *Options) BindMigrationFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.StringP("connector", "c", "", "name of the source connector")
	flags.StringP("environment", "e", "", "environment ID")
	flags.StringP("cluster", "k", "", "cluster ID")
}

// Validate required options - defined by field name.
func (o *Options) Validate(required []string) string {
	errs := utils.NewMultiError()
	envNaming := &envNamingConvention{}
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)

	// Iterate over required fields
	for _, fieldName := range required {
		fieldType, exists := types.FieldByName(fieldName)
		fieldNameHumanReadable := strcase.ToDelimited(fieldName, ' ')
		if !exists {
			panic(fmt.Sprintf("field \"%s\" doesn't exist in Options struct", fieldName))
		}

		if reflection.FieldByName(fieldName).Len() > 0 {
			continue
		}

		// Create error message by field type
		if flag := fieldType.Tag.Get("flag"); len(flag) > 0 {
			errs.Addf(
				`Missing %s. Please use "--%s" flag or ENV variable "%s".`,
				fieldNameHumanReadable,
				flag,
				envNaming.Replace(flag),
			)
		} else {
			errs.Addf(`Missing %s.`, fieldNameHumanReadable)
		}
	}

	if errs.Len() == 0 {
		return ""
	}
	return errs.Error()
}

// Load all sources of Options - flags, envs, ".env" file.
func (o *Options) Load(flags *pflag.FlagSet) (warnings []string, err error) {
	// Env parser
	envNaming := &envNamingConvention{}
	parser := viper.NewWithOptions(viper.EnvKeyReplacer(envNaming))

	// Bind flags
	if err = parser.BindPFlags(flags); err != nil {
		return
	}

	// Bind ENV variables
	parser.AutomaticEnv()

	// Load ".env" file from the working directory if present.
	// Existing ENVs take precedence.
	if warning := loadDotEnv(); warning != "" {
		warnings = append(warnings, warning)
	}

	// For each Options struct field with "flag" tag -> load value from parser
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)
	for i := 0; i < reflection.NumField(); i++ {
		if flag := types.Field(i).Tag.Get("flag"); len(flag) > 0 {
			if value := parser.Get(flag); value != nil {
				field := reflection.Field(i)
				switch field.Kind() {
				case reflect.Bool:
					field.SetBool(parser.GetBool(flag))
				default:
					field.SetString(parser.GetString(flag))
				}
			}
		}
	}

	return warnings, nil
}

// Dump Options for debugging, hiding nothing, there are no secrets here.
func (o *Options) Dump() string {
	var pairs []string
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)
	for i := 0; i < reflection.NumField(); i++ {
		pairs = append(pairs, fmt.Sprintf(`%s: "%v"`, types.Field(i).Name, reflection.Field(i).Interface()))
	}
	sort.Strings(pairs)
	return fmt.Sprintf("Parsed options: %s", strings.Join(pairs, ", "))
}

func loadDotEnv() (warning string) {
	if info, err := os.Stat(".env"); err != nil || info.IsDir() {
		return ""
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Sprintf(`cannot load ".env" file: %s`, err)
	}
	return ""
}
