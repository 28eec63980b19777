package mapping

// Target enum values for "auto.update.schemas" in the Storage Write API
// connector. The legacy connector used a boolean flag.
const (
	AutoUpdateSchemasAddNewFields = "ADD NEW FIELDS"
	AutoUpdateSchemasDisabled     = "DISABLED"
)

// BigQuery describes the BigQuery legacy (InsertAll) sink -> Storage
// Write API sink migration.
func BigQuery() *Variant {
	return &Variant{
		Name:           "bigquery",
		ConnectorClass: "BigQueryStorageSink",
		Constants: []Default{
			// Legacy connector supports only service account auth via keyfile.
			{Key: "authentication.method", Value: "Google cloud service account"},
		},
		Fields: map[string]string{
			"keyfile":                       "keyfile",
			"project":                       "project",
			"datasets":                      "datasets",
			"defaultDataset":                "defaultDataset",
			"topics":                        "topics",
			"sanitize.topics":               "sanitize.topics",
			"sanitize.field.names":          "sanitize.field.names",
			"auto.update.schemas":           "auto.update.schemas",
			"input.data.format":             "input.data.format",
			"input.key.format":              "input.key.format",
			"table.name.format":             "topic2table.map",
			"topic2table.map":               "topic2table.map",
			"bigquery.retry.count":          "bigQueryRetry",
			"bigquery.thread.pool.size":     "threadPoolSize",
			"buffer.count.records":          "queueSize",
			"sanitize.field.names.in.array": "sanitize.field.names.in.array",
		},
		Passthrough: []string{
			"kafka.api.key",
			"kafka.api.secret",
			"kafka.service.account.id",
			"kafka.auth.mode",
			"kafka.endpoint",
			"kafka.region",
			"schema.registry.url",
			"schema.registry.basic.auth.user.info",
			"max.poll.interval.ms",
			"max.poll.records",
			"cloud.environment",
			"cloud.provider",
		},
		Unsupported: map[string]string{
			"allow.schema.unionization":                "Schema unionization is not supported in V2 connector. This feature allowed combining record schemas with existing BigQuery table schemas.",
			"all.bq.fields.nullable":                   "All BigQuery fields nullable setting is not supported in V2 connector. This controlled whether all fields were made nullable.",
			"convert.double.special.values":            "Double special values conversion is not supported in V2 connector. This handled +Infinity, -Infinity, and NaN conversions.",
			"allow.bigquery.required.field.relaxation": "BigQuery required field relaxation is not supported in V2 connector. This allowed relaxing required field constraints.",
		},
		Reserved: []string{"name", "connector.class", "tasks.max", "authentication.method"},
		Conversions: []Conversion{
			{
				Key: "auto.update.schemas",
				Convert: func(value string, notify Notifier) string {
					switch value {
					case "true":
						notify(`Converted "auto.update.schemas": "true" -> "%s"`, AutoUpdateSchemasAddNewFields)
						return AutoUpdateSchemasAddNewFields
					case "false":
						notify(`Converted "auto.update.schemas": "false" -> "%s"`, AutoUpdateSchemasDisabled)
						return AutoUpdateSchemasDisabled
					default:
						notify(`Warning: unexpected "auto.update.schemas" value "%s", falling back to "%s"`, value, AutoUpdateSchemasDisabled)
						return AutoUpdateSchemasDisabled
					}
				},
			},
		},
		DerivedKeys: []Derived{
			// Mirrors the final sanitize.field.names value.
			{
				Key:  "sanitize.field.names.in.array",
				From: "sanitize.field.names",
				Calc: func(finalValue string) string {
					if finalValue == "true" {
						return "true"
					}
					return "false"
				},
			},
		},
		Defaults: []Default{
			{Key: "input.key.format", Value: "BYTES"},
			{Key: "sanitize.topics", Value: "true"},
			{Key: "sanitize.field.names", Value: "false"},
			{Key: "auto.update.schemas", Value: AutoUpdateSchemasDisabled},
			{Key: "topic2table.map", Value: ""},
			{Key: "topic2clustering.fields.map", Value: ""},
		},
		NewNameSuffix: "-v2",
		BreakingChanges: []BreakingChange{
			{Tag: "TIMESTAMP", Text: "TIMESTAMP values are now interpreted as microseconds since epoch instead of seconds. This may cause data to be written to incorrect time periods."},
			{Tag: "DATE", Text: "DATE fields now support INT values in range -719162 to 2932896, which was not supported in Legacy API."},
			{Tag: "DATETIME_FORMAT", Text: "DATE, TIME, DATETIME, TIMESTAMP fields now support only a subset of the datetime canonical format that was supported in Legacy API."},
			{Tag: "DATA_TYPES", Text: "Storage Write API has different data type support compared to Legacy InsertAll API. Some data types may not be compatible."},
			{Tag: "INT8, INT16", Text: "INT8 and INT16 fields are now cast to FLOAT type in BigQuery. You can choose to cast them to INTEGER instead in next steps."},
		},
	}
}
