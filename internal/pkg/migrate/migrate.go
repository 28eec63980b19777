// Package migrate sequences one connector migration: fetch the source
// state, transform the configuration, collect operator input and create
// the new connector. No remote mutation happens before the final step,
// so an abort at any point has no side effects.
package migrate

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/api/connect"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/dialog"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/transform"
)

// ErrAborted means the operator declined a consent prompt. It is not a
// failure, the run ends cleanly without any remote change.
var ErrAborted = errors.New("migration cancelled")

// State of the migration flow, advanced by Run.
type State string

const (
	StateAwaitingConsent     State = "AwaitingConsent"
	StateFetchingStatus      State = "FetchingStatus"
	StateFetchingOffsets     State = "FetchingOffsets"
	StateFetchingConfig      State = "FetchingConfig"
	StateCheckingUnsupported State = "CheckingUnsupported"
	StateCollectingOverrides State = "CollectingOverrides"
	StateTransforming        State = "Transforming"
	StateResolvingSecrets    State = "ResolvingSecrets"
	StateConfirmingFinal     State = "ConfirmingFinal"
	StateCreating            State = "Creating"
	StateDone                State = "Done"
	StateAborted             State = "Aborted"
)

type Flow struct {
	Variant     *mapping.Variant
	Api         *connect.Api
	Dialogs     *dialog.Dialogs
	Logger      *zap.SugaredLogger
	Environment string
	Cluster     string
	Connector   string

	state State
}

// State returns the current flow state, for tests and diagnostics.
func (f *Flow) State() State {
	return f.state
}

// Run drives the migration to StateDone, StateAborted, or the first
// error. Every risky step requires an explicit operator confirmation.
func Run(f *Flow) error {
	d := f.Dialogs

	f.state = StateAwaitingConsent
	if !d.ConfirmBreakingChanges(f.Variant) {
		return f.abort()
	}

	f.state = StateFetchingStatus
	f.Logger.Infof("Fetching source connector's status...")
	state, err := f.Api.ConnectorStatus(f.Environment, f.Cluster, f.Connector)
	if err != nil {
		return err
	}
	f.Logger.Infof(`Connector status for "%s": %s`, f.Connector, state)
	if state != connector.StatePaused && !d.ConfirmNotPaused(f.Connector, state) {
		return f.abort()
	}

	f.state = StateFetchingOffsets
	f.Logger.Infof("Fetching source connector's offsets...")
	offsets, err := f.Api.ConnectorOffsets(f.Environment, f.Cluster, f.Connector)
	if err != nil {
		return err
	}

	f.state = StateFetchingConfig
	f.Logger.Infof("Fetching source connector's config...")
	source, err := f.Api.ConnectorConfig(f.Environment, f.Cluster, f.Connector)
	if err != nil {
		return err
	}

	f.state = StateCheckingUnsupported
	f.Logger.Infof("Checking for unsupported configurations...")
	if !d.ConfirmUnsupportedKeys(f.Variant, f.Variant.UnsupportedIn(source)) {
		return f.abort()
	}

	f.state = StateCollectingOverrides
	overrides, ok := d.AskOverrides(f.Variant, f.Connector)
	if !ok {
		return f.abort()
	}

	f.state = StateTransforming
	f.Logger.Infof("Transforming source connector's config...")
	target, err := transform.Transform(source, f.Variant, func(format string, args ...any) {
		f.Logger.Infof(format, args...)
	})
	if err != nil {
		return err
	}

	// Operator overrides are layered last, they always win.
	overrides.ApplyTo(target)

	f.state = StateResolvingSecrets
	if err := d.ResolveSecrets(target); err != nil {
		return err
	}

	f.state = StateConfirmingFinal
	if !d.ConfirmFinalConfig(target) {
		return f.abort()
	}

	f.state = StateCreating
	f.Logger.Infof("Creating new connector with offsets copied from the source connector...")
	created, err := f.Api.CreateConnector(f.Environment, f.Cluster, overrides.Name, target, offsets)
	if err != nil {
		return err
	}

	f.state = StateDone
	f.Logger.Infof(`Connector "%s" created successfully.`, overrides.Name)
	if createdState, found := created.Get("state"); found {
		f.Logger.Infof("Created connector state: %v", createdState)
	}
	f.Logger.Infof("Next steps:")
	f.Logger.Infof("  1. Verify the new connector is running properly.")
	f.Logger.Infof("  2. Check data integrity in the target system.")
	f.Logger.Infof("  3. Keep the source connector paused until verified.")
	return nil
}

func (f *Flow) abort() error {
	f.state = StateAborted
	return ErrAborted
}
