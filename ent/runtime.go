// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/braid-labs/braid/ent/commandlog"
	"github.com/braid-labs/braid/ent/oauthtoken"
	"github.com/braid-labs/braid/ent/pendingaction"
	"github.com/braid-labs/braid/ent/pipelinelink"
	"github.com/braid-labs/braid/ent/pipelinesteplog"
	"github.com/braid-labs/braid/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commandlogFields := schema.CommandLog{}.Fields()
	_ = commandlogFields
	// commandlogDescCreatedAt is the schema descriptor for created_at field.
	commandlogDescCreatedAt := commandlogFields[10].Descriptor()
	// commandlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	commandlog.DefaultCreatedAt = commandlogDescCreatedAt.Default.(func() time.Time)
	oauthtokenFields := schema.OAuthToken{}.Fields()
	_ = oauthtokenFields
	// oauthtokenDescCreatedAt is the schema descriptor for created_at field.
	oauthtokenDescCreatedAt := oauthtokenFields[8].Descriptor()
	// oauthtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	oauthtoken.DefaultCreatedAt = oauthtokenDescCreatedAt.Default.(func() time.Time)
	// oauthtokenDescUpdatedAt is the schema descriptor for updated_at field.
	oauthtokenDescUpdatedAt := oauthtokenFields[9].Descriptor()
	// oauthtoken.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	oauthtoken.DefaultUpdatedAt = oauthtokenDescUpdatedAt.Default.(func() time.Time)
	// oauthtoken.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	oauthtoken.UpdateDefaultUpdatedAt = oauthtokenDescUpdatedAt.UpdateDefault.(func() time.Time)
	pendingactionFields := schema.PendingAction{}.Fields()
	_ = pendingactionFields
	// pendingactionDescCreatedAt is the schema descriptor for created_at field.
	pendingactionDescCreatedAt := pendingactionFields[8].Descriptor()
	// pendingaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendingaction.DefaultCreatedAt = pendingactionDescCreatedAt.Default.(func() time.Time)
	pipelinelinkFields := schema.PipelineLink{}.Fields()
	_ = pipelinelinkFields
	// pipelinelinkDescCreatedAt is the schema descriptor for created_at field.
	pipelinelinkDescCreatedAt := pipelinelinkFields[10].Descriptor()
	// pipelinelink.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinelink.DefaultCreatedAt = pipelinelinkDescCreatedAt.Default.(func() time.Time)
	// pipelinelinkDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinelinkDescUpdatedAt := pipelinelinkFields[11].Descriptor()
	// pipelinelink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinelink.DefaultUpdatedAt = pipelinelinkDescUpdatedAt.Default.(func() time.Time)
	// pipelinelink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinelink.UpdateDefaultUpdatedAt = pipelinelinkDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinesteplogFields := schema.PipelineStepLog{}.Fields()
	_ = pipelinesteplogFields
	// pipelinesteplogDescAttempt is the schema descriptor for attempt field.
	pipelinesteplogDescAttempt := pipelinesteplogFields[7].Descriptor()
	// pipelinesteplog.DefaultAttempt holds the default value on creation for the attempt field.
	pipelinesteplog.DefaultAttempt = pipelinesteplogDescAttempt.Default.(int)
	// pipelinesteplogDescCreatedAt is the schema descriptor for created_at field.
	pipelinesteplogDescCreatedAt := pipelinesteplogFields[12].Descriptor()
	// pipelinesteplog.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinesteplog.DefaultCreatedAt = pipelinesteplogDescCreatedAt.Default.(func() time.Time)
}
