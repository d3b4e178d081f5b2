// Code generated by ent, DO NOT EDIT.

package agentexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-project/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldID, id))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldStageID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldSessionID, v))
}

// ParentExecutionID applies equality check predicate on the "parent_execution_id" field. It's identical to ParentExecutionIDEQ.
func ParentExecutionID(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldParentExecutionID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldAgentName, v))
}

// AgentIndex applies equality check predicate on the "agent_index" field. It's identical to AgentIndexEQ.
func AgentIndex(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldAgentIndex, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldStartedAt, v))
}

// PausedAt applies equality check predicate on the "paused_at" field. It's identical to PausedAtEQ.
func PausedAt(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldPausedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// IterationStrategy applies equality check predicate on the "iteration_strategy" field. It's identical to IterationStrategyEQ.
func IterationStrategy(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldIterationStrategy, v))
}

// LlmBackend applies equality check predicate on the "llm_backend" field. It's identical to LlmBackendEQ.
func LlmBackend(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldLlmBackend, v))
}

// LlmProvider applies equality check predicate on the "llm_provider" field. It's identical to LlmProviderEQ.
func LlmProvider(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldLlmProvider, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldTask, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldStageID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldSessionID, v))
}

// ParentExecutionIDEQ applies the EQ predicate on the "parent_execution_id" field.
func ParentExecutionIDEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldParentExecutionID, v))
}

// ParentExecutionIDNEQ applies the NEQ predicate on the "parent_execution_id" field.
func ParentExecutionIDNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldParentExecutionID, v))
}

// ParentExecutionIDIn applies the In predicate on the "parent_execution_id" field.
func ParentExecutionIDIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldParentExecutionID, vs...))
}

// ParentExecutionIDNotIn applies the NotIn predicate on the "parent_execution_id" field.
func ParentExecutionIDNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldParentExecutionID, vs...))
}

// ParentExecutionIDGT applies the GT predicate on the "parent_execution_id" field.
func ParentExecutionIDGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldParentExecutionID, v))
}

// ParentExecutionIDGTE applies the GTE predicate on the "parent_execution_id" field.
func ParentExecutionIDGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldParentExecutionID, v))
}

// ParentExecutionIDLT applies the LT predicate on the "parent_execution_id" field.
func ParentExecutionIDLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldParentExecutionID, v))
}

// ParentExecutionIDLTE applies the LTE predicate on the "parent_execution_id" field.
func ParentExecutionIDLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldParentExecutionID, v))
}

// ParentExecutionIDContains applies the Contains predicate on the "parent_execution_id" field.
func ParentExecutionIDContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldParentExecutionID, v))
}

// ParentExecutionIDHasPrefix applies the HasPrefix predicate on the "parent_execution_id" field.
func ParentExecutionIDHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldParentExecutionID, v))
}

// ParentExecutionIDHasSuffix applies the HasSuffix predicate on the "parent_execution_id" field.
func ParentExecutionIDHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldParentExecutionID, v))
}

// ParentExecutionIDIsNil applies the IsNil predicate on the "parent_execution_id" field.
func ParentExecutionIDIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldParentExecutionID))
}

// ParentExecutionIDNotNil applies the NotNil predicate on the "parent_execution_id" field.
func ParentExecutionIDNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldParentExecutionID))
}

// ParentExecutionIDEqualFold applies the EqualFold predicate on the "parent_execution_id" field.
func ParentExecutionIDEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldParentExecutionID, v))
}

// ParentExecutionIDContainsFold applies the ContainsFold predicate on the "parent_execution_id" field.
func ParentExecutionIDContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldParentExecutionID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldAgentName, v))
}

// AgentIndexEQ applies the EQ predicate on the "agent_index" field.
func AgentIndexEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldAgentIndex, v))
}

// AgentIndexNEQ applies the NEQ predicate on the "agent_index" field.
func AgentIndexNEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldAgentIndex, v))
}

// AgentIndexIn applies the In predicate on the "agent_index" field.
func AgentIndexIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldAgentIndex, vs...))
}

// AgentIndexNotIn applies the NotIn predicate on the "agent_index" field.
func AgentIndexNotIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldAgentIndex, vs...))
}

// AgentIndexGT applies the GT predicate on the "agent_index" field.
func AgentIndexGT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldAgentIndex, v))
}

// AgentIndexGTE applies the GTE predicate on the "agent_index" field.
func AgentIndexGTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldAgentIndex, v))
}

// AgentIndexLT applies the LT predicate on the "agent_index" field.
func AgentIndexLT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldAgentIndex, v))
}

// AgentIndexLTE applies the LTE predicate on the "agent_index" field.
func AgentIndexLTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldAgentIndex, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldStartedAt))
}

// PausedAtEQ applies the EQ predicate on the "paused_at" field.
func PausedAtEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldPausedAt, v))
}

// PausedAtNEQ applies the NEQ predicate on the "paused_at" field.
func PausedAtNEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldPausedAt, v))
}

// PausedAtIn applies the In predicate on the "paused_at" field.
func PausedAtIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldPausedAt, vs...))
}

// PausedAtNotIn applies the NotIn predicate on the "paused_at" field.
func PausedAtNotIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldPausedAt, vs...))
}

// PausedAtGT applies the GT predicate on the "paused_at" field.
func PausedAtGT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldPausedAt, v))
}

// PausedAtGTE applies the GTE predicate on the "paused_at" field.
func PausedAtGTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldPausedAt, v))
}

// PausedAtLT applies the LT predicate on the "paused_at" field.
func PausedAtLT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldPausedAt, v))
}

// PausedAtLTE applies the LTE predicate on the "paused_at" field.
func PausedAtLTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldPausedAt, v))
}

// PausedAtIsNil applies the IsNil predicate on the "paused_at" field.
func PausedAtIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldPausedAt))
}

// PausedAtNotNil applies the NotNil predicate on the "paused_at" field.
func PausedAtNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldPausedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldDurationMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// IterationStrategyEQ applies the EQ predicate on the "iteration_strategy" field.
func IterationStrategyEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldIterationStrategy, v))
}

// IterationStrategyNEQ applies the NEQ predicate on the "iteration_strategy" field.
func IterationStrategyNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldIterationStrategy, v))
}

// IterationStrategyIn applies the In predicate on the "iteration_strategy" field.
func IterationStrategyIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldIterationStrategy, vs...))
}

// IterationStrategyNotIn applies the NotIn predicate on the "iteration_strategy" field.
func IterationStrategyNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldIterationStrategy, vs...))
}

// IterationStrategyGT applies the GT predicate on the "iteration_strategy" field.
func IterationStrategyGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldIterationStrategy, v))
}

// IterationStrategyGTE applies the GTE predicate on the "iteration_strategy" field.
func IterationStrategyGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldIterationStrategy, v))
}

// IterationStrategyLT applies the LT predicate on the "iteration_strategy" field.
func IterationStrategyLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldIterationStrategy, v))
}

// IterationStrategyLTE applies the LTE predicate on the "iteration_strategy" field.
func IterationStrategyLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldIterationStrategy, v))
}

// IterationStrategyContains applies the Contains predicate on the "iteration_strategy" field.
func IterationStrategyContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldIterationStrategy, v))
}

// IterationStrategyHasPrefix applies the HasPrefix predicate on the "iteration_strategy" field.
func IterationStrategyHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldIterationStrategy, v))
}

// IterationStrategyHasSuffix applies the HasSuffix predicate on the "iteration_strategy" field.
func IterationStrategyHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldIterationStrategy, v))
}

// IterationStrategyEqualFold applies the EqualFold predicate on the "iteration_strategy" field.
func IterationStrategyEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldIterationStrategy, v))
}

// IterationStrategyContainsFold applies the ContainsFold predicate on the "iteration_strategy" field.
func IterationStrategyContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldIterationStrategy, v))
}

// LlmBackendEQ applies the EQ predicate on the "llm_backend" field.
func LlmBackendEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldLlmBackend, v))
}

// LlmBackendNEQ applies the NEQ predicate on the "llm_backend" field.
func LlmBackendNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldLlmBackend, v))
}

// LlmBackendIn applies the In predicate on the "llm_backend" field.
func LlmBackendIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldLlmBackend, vs...))
}

// LlmBackendNotIn applies the NotIn predicate on the "llm_backend" field.
func LlmBackendNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldLlmBackend, vs...))
}

// LlmBackendGT applies the GT predicate on the "llm_backend" field.
func LlmBackendGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldLlmBackend, v))
}

// LlmBackendGTE applies the GTE predicate on the "llm_backend" field.
func LlmBackendGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldLlmBackend, v))
}

// LlmBackendLT applies the LT predicate on the "llm_backend" field.
func LlmBackendLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldLlmBackend, v))
}

// LlmBackendLTE applies the LTE predicate on the "llm_backend" field.
func LlmBackendLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldLlmBackend, v))
}

// LlmBackendContains applies the Contains predicate on the "llm_backend" field.
func LlmBackendContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldLlmBackend, v))
}

// LlmBackendHasPrefix applies the HasPrefix predicate on the "llm_backend" field.
func LlmBackendHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldLlmBackend, v))
}

// LlmBackendHasSuffix applies the HasSuffix predicate on the "llm_backend" field.
func LlmBackendHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldLlmBackend, v))
}

// LlmBackendIsNil applies the IsNil predicate on the "llm_backend" field.
func LlmBackendIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldLlmBackend))
}

// LlmBackendNotNil applies the NotNil predicate on the "llm_backend" field.
func LlmBackendNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldLlmBackend))
}

// LlmBackendEqualFold applies the EqualFold predicate on the "llm_backend" field.
func LlmBackendEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldLlmBackend, v))
}

// LlmBackendContainsFold applies the ContainsFold predicate on the "llm_backend" field.
func LlmBackendContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldLlmBackend, v))
}

// LlmProviderEQ applies the EQ predicate on the "llm_provider" field.
func LlmProviderEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmProviderNEQ applies the NEQ predicate on the "llm_provider" field.
func LlmProviderNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldLlmProvider, v))
}

// LlmProviderIn applies the In predicate on the "llm_provider" field.
func LlmProviderIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldLlmProvider, vs...))
}

// LlmProviderNotIn applies the NotIn predicate on the "llm_provider" field.
func LlmProviderNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldLlmProvider, vs...))
}

// LlmProviderGT applies the GT predicate on the "llm_provider" field.
func LlmProviderGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldLlmProvider, v))
}

// LlmProviderGTE applies the GTE predicate on the "llm_provider" field.
func LlmProviderGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldLlmProvider, v))
}

// LlmProviderLT applies the LT predicate on the "llm_provider" field.
func LlmProviderLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldLlmProvider, v))
}

// LlmProviderLTE applies the LTE predicate on the "llm_provider" field.
func LlmProviderLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldLlmProvider, v))
}

// LlmProviderContains applies the Contains predicate on the "llm_provider" field.
func LlmProviderContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldLlmProvider, v))
}

// LlmProviderHasPrefix applies the HasPrefix predicate on the "llm_provider" field.
func LlmProviderHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldLlmProvider, v))
}

// LlmProviderHasSuffix applies the HasSuffix predicate on the "llm_provider" field.
func LlmProviderHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldLlmProvider, v))
}

// LlmProviderIsNil applies the IsNil predicate on the "llm_provider" field.
func LlmProviderIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldLlmProvider))
}

// LlmProviderNotNil applies the NotNil predicate on the "llm_provider" field.
func LlmProviderNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldLlmProvider))
}

// LlmProviderEqualFold applies the EqualFold predicate on the "llm_provider" field.
func LlmProviderEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldLlmProvider, v))
}

// LlmProviderContainsFold applies the ContainsFold predicate on the "llm_provider" field.
func LlmProviderContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldLlmProvider, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldTask, v))
}

// TaskIsNil applies the IsNil predicate on the "task" field.
func TaskIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldTask))
}

// TaskNotNil applies the NotNil predicate on the "task" field.
func TaskNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldTask))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldTask, v))
}

// ConversationSnapshotIsNil applies the IsNil predicate on the "conversation_snapshot" field.
func ConversationSnapshotIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldConversationSnapshot))
}

// ConversationSnapshotNotNil applies the NotNil predicate on the "conversation_snapshot" field.
func ConversationSnapshotNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldConversationSnapshot))
}

// HasStage applies the HasEdge predicate on the "stage" edge.
func HasStage() predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageWith applies the HasEdge predicate on the "stage" edge with a given conditions (other predicates).
func HasStageWith(preds ...predicate.Stage) predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := newStageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AlertSession) predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTimelineEvents applies the HasEdge predicate on the "timeline_events" edge.
func HasTimelineEvents() predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTimelineEventsWith applies the HasEdge predicate on the "timeline_events" edge with a given conditions (other predicates).
func HasTimelineEventsWith(preds ...predicate.TimelineEvent) predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := newTimelineEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMcpInteractions applies the HasEdge predicate on the "mcp_interactions" edge.
func HasMcpInteractions() predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMcpInteractionsWith applies the HasEdge predicate on the "mcp_interactions" edge with a given conditions (other predicates).
func HasMcpInteractionsWith(preds ...predicate.MCPInteraction) predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := newMcpInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubAgentTimelineEvents applies the HasEdge predicate on the "sub_agent_timeline_events" edge.
func HasSubAgentTimelineEvents() predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubAgentTimelineEventsTable, SubAgentTimelineEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubAgentTimelineEventsWith applies the HasEdge predicate on the "sub_agent_timeline_events" edge with a given conditions (other predicates).
func HasSubAgentTimelineEventsWith(preds ...predicate.TimelineEvent) predicate.AgentExecution {
	return predicate.AgentExecution(func(s *sql.Selector) {
		step := newSubAgentTimelineEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentExecution) predicate.AgentExecution {
	return predicate.AgentExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentExecution) predicate.AgentExecution {
	return predicate.AgentExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentExecution) predicate.AgentExecution {
	return predicate.AgentExecution(sql.NotPredicates(p))
}
