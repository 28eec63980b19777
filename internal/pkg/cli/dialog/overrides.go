package dialog

import (
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
)

// Ingestion modes of the Storage Write API connector.
const (
	IngestionModeStreaming    = "STREAMING"
	IngestionModeBatchLoading = "BATCH LOADING"
	IngestionModeUpsert       = "UPSERT"
	IngestionModeUpsertDelete = "UPSERT_DELETE"
)

// Auto create tables options.
const (
	AutoCreateTablesNonPartitioned  = "NON-PARTITIONED"
	AutoCreateTablesByIngestionTime = "PARTITION by INGESTION TIME"
	AutoCreateTablesByField         = "PARTITION by FIELD"
	AutoCreateTablesDisabled        = "DISABLED"
)

// Commit interval bounds for the BATCH LOADING mode, in seconds.
const (
	CommitIntervalMin     = 60
	CommitIntervalMax     = 14400
	CommitIntervalDefault = "60"
)

// Overrides are the operator-supplied values the mapping tables cannot
// infer. They are layered on the transformed config last, so they
// always win.
type Overrides struct {
	Name                 string
	IngestionMode        string
	UseIntegerForInt8    bool
	CommitInterval       string
	AutoCreateTables     string
	PartitioningType     string
	TimestampField       string
	UseDateTimeFormatter bool
}

// ApplyTo layers the overrides onto the transformed configuration.
func (o *Overrides) ApplyTo(config *connector.Config) {
	config.Set("name", o.Name)

	if o.IngestionMode != "" {
		config.Set("ingestion.mode", o.IngestionMode)
		config.Set("use.integer.for.int8.int16", boolString(o.UseIntegerForInt8))
		config.Set("use.date.time.formatter", boolString(o.UseDateTimeFormatter))

		if o.IngestionMode == IngestionModeBatchLoading {
			config.Set("commit.interval", o.CommitInterval)
		}
		if o.AutoCreateTables != AutoCreateTablesDisabled {
			config.Set("auto.create.tables", o.AutoCreateTables)
			config.Set("partitioning.type", o.PartitioningType)
			if o.TimestampField != "" {
				config.Set("timestamp.partition.field.name", o.TimestampField)
			}
		}
	}
}

// AskOverrides collects the migration overrides for the variant.
// Returns ok=false when the operator cancelled a prompt.
func (d *Dialogs) AskOverrides(variant *mapping.Variant, sourceName string) (*Overrides, bool) {
	overrides := &Overrides{}

	name, ok := d.askNewName(sourceName, sourceName+variant.NewNameSuffix)
	if !ok {
		return nil, false
	}
	overrides.Name = name

	// The remaining overrides exist only in the BigQuery variant.
	if variant.Name != "bigquery" {
		return overrides, true
	}

	if ok := d.askIngestionMode(overrides); !ok {
		return nil, false
	}
	if ok := d.askIntegerCasting(overrides); !ok {
		return nil, false
	}
	if ok := d.askAutoCreateTables(overrides); !ok {
		return nil, false
	}

	overrides.UseDateTimeFormatter = d.Confirm(&prompt.Confirm{
		Label: "Do you want to use DateTimeFormatter?",
		Description: "The \"use.date.time.formatter\" setting controls how timestamp values are processed:\n" +
			"  - no (default) - SimpleDateFormat for timestamp parsing\n" +
			"  - yes - DateTimeFormatter for better timestamp support\n" +
			"DateTimeFormatter supports a wider range of timestamp formats and epochs.\n" +
			"Note: the output might vary between the two formatters for the same input.",
	})

	return overrides, true
}

// askNewName loops until the new name differs from the source name.
func (d *Dialogs) askNewName(sourceName, defaultName string) (string, bool) {
	for {
		name, ok := d.Ask(&prompt.Question{
			Label:     "New connector name",
			Default:   defaultName,
			Validator: prompt.ValueRequired,
		})
		if !ok {
			return "", false
		}
		if name != sourceName {
			return name, true
		}
		d.Printf("The new connector name must be different from the source connector name.")
		if !d.IsInteractive() {
			return "", false
		}
	}
}

func (d *Dialogs) askIngestionMode(overrides *Overrides) bool {
	mode, ok := d.Select(&prompt.Select{
		Label: "Ingestion mode",
		Description: "Ingestion mode selection:\n" +
			"  - STREAMING - lower latency, higher cost\n" +
			"  - BATCH LOADING - higher latency, lower cost\n" +
			"  - UPSERT - for upsert operations\n" +
			"  - UPSERT_DELETE - for upsert and delete operations",
		Options: []string{
			IngestionModeStreaming,
			IngestionModeBatchLoading,
			IngestionModeUpsert,
			IngestionModeUpsertDelete,
		},
		Default:    IngestionModeStreaming,
		UseDefault: true,
	})
	if !ok {
		return false
	}
	overrides.IngestionMode = mode

	switch mode {
	case IngestionModeUpsert, IngestionModeUpsertDelete:
		d.Printf("DISCLAIMER: For %s mode, the records must have key fields.", mode)
	case IngestionModeBatchLoading:
		interval, ok := d.Ask(&prompt.Question{
			Label: "Commit interval in seconds",
			Description: "For BATCH LOADING mode, you need to set a commit interval.\n" +
				"This is the interval when the connector attempts to commit streamed records.\n" +
				"IMPORTANT: on every commit interval, a task calls the CreateWriteStream API\n" +
				"which is subject to quota limits. Be careful with frequent commits.\n" +
				"Valid range: 60 seconds (1 minute) to 14,400 seconds (4 hours).",
			Default:   CommitIntervalDefault,
			Validator: prompt.IntInRange(CommitIntervalMin, CommitIntervalMax),
		})
		if !ok {
			return false
		}
		overrides.CommitInterval = interval
	}

	return true
}

func (d *Dialogs) askIntegerCasting(overrides *Overrides) bool {
	overrides.UseIntegerForInt8 = d.Confirm(&prompt.Confirm{
		Label: "Do you want INT8 and INT16 fields to be cast to INTEGER instead of FLOAT?",
		Description: "In the new Storage Write API connector, INT8 (BYTE) and INT16 (SHORT) fields are\n" +
			"by default cast to FLOAT type in BigQuery. You can choose to cast them to INTEGER instead.\n" +
			"This affects both auto table creation and schema updates.",
	})
	return true
}

func (d *Dialogs) askAutoCreateTables(overrides *Overrides) bool {
	autoCreate, ok := d.Select(&prompt.Select{
		Label: "Auto create tables",
		Description: "Auto create tables configuration:\n" +
			"  - NON-PARTITIONED - creates tables without partitioning\n" +
			"  - PARTITION by INGESTION TIME - creates tables partitioned by ingestion time\n" +
			"  - PARTITION by FIELD - creates tables partitioned by a specific timestamp field\n" +
			"  - DISABLED - disable auto table creation (tables must exist beforehand)",
		Options: []string{
			AutoCreateTablesNonPartitioned,
			AutoCreateTablesByIngestionTime,
			AutoCreateTablesByField,
			AutoCreateTablesDisabled,
		},
		Default:    AutoCreateTablesNonPartitioned,
		UseDefault: true,
	})
	if !ok {
		return false
	}
	overrides.AutoCreateTables = autoCreate

	if autoCreate == AutoCreateTablesByIngestionTime || autoCreate == AutoCreateTablesByField {
		partitioning, ok := d.Select(&prompt.Select{
			Label:       "Partitioning type",
			Description: "Choose the time partitioning type for your tables.",
			Options:     []string{"HOUR", "DAY", "MONTH", "YEAR"},
			Default:     "DAY",
			UseDefault:  true,
		})
		if !ok {
			return false
		}
		overrides.PartitioningType = partitioning

		if autoCreate == AutoCreateTablesByField {
			field, ok := d.Ask(&prompt.Question{
				Label: "Timestamp field name for partitioning",
				Description: "You selected \"PARTITION by FIELD\" which requires specifying a timestamp field.\n" +
					"This field should contain the timestamp value used for partitioning.\n" +
					"Example field names: \"timestamp\", \"created_at\", \"event_time\".",
				Validator: prompt.ValueRequired,
			})
			if !ok {
				return false
			}
			overrides.TimestampField = field
		}
	}

	return true
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
