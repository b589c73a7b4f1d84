// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CommandLog is the predicate function for commandlog builders.
type CommandLog func(*sql.Selector)

// OAuthToken is the predicate function for oauthtoken builders.
type OAuthToken func(*sql.Selector)

// PendingAction is the predicate function for pendingaction builders.
type PendingAction func(*sql.Selector)

// PipelineLink is the predicate function for pipelinelink builders.
type PipelineLink func(*sql.Selector)

// PipelineStepLog is the predicate function for pipelinesteplog builders.
type PipelineStepLog func(*sql.Selector)
