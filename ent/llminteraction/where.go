// Code generated by ent, DO NOT EDIT.

package llminteraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-project/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldSessionID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldStageID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldExecutionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldCreatedAt, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldModelName, v))
}

// LastMessageID applies equality check predicate on the "last_message_id" field. It's identical to LastMessageIDEQ.
func LastMessageID(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldLastMessageID, v))
}

// ThinkingContent applies equality check predicate on the "thinking_content" field. It's identical to ThinkingContentEQ.
func ThinkingContent(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldThinkingContent, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldTotalTokens, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldErrorMessage, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldSessionID, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDIsNil applies the IsNil predicate on the "stage_id" field.
func StageIDIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldStageID))
}

// StageIDNotNil applies the NotNil predicate on the "stage_id" field.
func StageIDNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldStageID))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldStageID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldExecutionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldCreatedAt, v))
}

// InteractionTypeEQ applies the EQ predicate on the "interaction_type" field.
func InteractionTypeEQ(v InteractionType) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldInteractionType, v))
}

// InteractionTypeNEQ applies the NEQ predicate on the "interaction_type" field.
func InteractionTypeNEQ(v InteractionType) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldInteractionType, v))
}

// InteractionTypeIn applies the In predicate on the "interaction_type" field.
func InteractionTypeIn(vs ...InteractionType) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldInteractionType, vs...))
}

// InteractionTypeNotIn applies the NotIn predicate on the "interaction_type" field.
func InteractionTypeNotIn(vs ...InteractionType) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldInteractionType, vs...))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldModelName, v))
}

// LastMessageIDEQ applies the EQ predicate on the "last_message_id" field.
func LastMessageIDEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldLastMessageID, v))
}

// LastMessageIDNEQ applies the NEQ predicate on the "last_message_id" field.
func LastMessageIDNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldLastMessageID, v))
}

// LastMessageIDIn applies the In predicate on the "last_message_id" field.
func LastMessageIDIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldLastMessageID, vs...))
}

// LastMessageIDNotIn applies the NotIn predicate on the "last_message_id" field.
func LastMessageIDNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldLastMessageID, vs...))
}

// LastMessageIDGT applies the GT predicate on the "last_message_id" field.
func LastMessageIDGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldLastMessageID, v))
}

// LastMessageIDGTE applies the GTE predicate on the "last_message_id" field.
func LastMessageIDGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldLastMessageID, v))
}

// LastMessageIDLT applies the LT predicate on the "last_message_id" field.
func LastMessageIDLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldLastMessageID, v))
}

// LastMessageIDLTE applies the LTE predicate on the "last_message_id" field.
func LastMessageIDLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldLastMessageID, v))
}

// LastMessageIDContains applies the Contains predicate on the "last_message_id" field.
func LastMessageIDContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldLastMessageID, v))
}

// LastMessageIDHasPrefix applies the HasPrefix predicate on the "last_message_id" field.
func LastMessageIDHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldLastMessageID, v))
}

// LastMessageIDHasSuffix applies the HasSuffix predicate on the "last_message_id" field.
func LastMessageIDHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldLastMessageID, v))
}

// LastMessageIDIsNil applies the IsNil predicate on the "last_message_id" field.
func LastMessageIDIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldLastMessageID))
}

// LastMessageIDNotNil applies the NotNil predicate on the "last_message_id" field.
func LastMessageIDNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldLastMessageID))
}

// LastMessageIDEqualFold applies the EqualFold predicate on the "last_message_id" field.
func LastMessageIDEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldLastMessageID, v))
}

// LastMessageIDContainsFold applies the ContainsFold predicate on the "last_message_id" field.
func LastMessageIDContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldLastMessageID, v))
}

// ThinkingContentEQ applies the EQ predicate on the "thinking_content" field.
func ThinkingContentEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldThinkingContent, v))
}

// ThinkingContentNEQ applies the NEQ predicate on the "thinking_content" field.
func ThinkingContentNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldThinkingContent, v))
}

// ThinkingContentIn applies the In predicate on the "thinking_content" field.
func ThinkingContentIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldThinkingContent, vs...))
}

// ThinkingContentNotIn applies the NotIn predicate on the "thinking_content" field.
func ThinkingContentNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldThinkingContent, vs...))
}

// ThinkingContentGT applies the GT predicate on the "thinking_content" field.
func ThinkingContentGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldThinkingContent, v))
}

// ThinkingContentGTE applies the GTE predicate on the "thinking_content" field.
func ThinkingContentGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldThinkingContent, v))
}

// ThinkingContentLT applies the LT predicate on the "thinking_content" field.
func ThinkingContentLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldThinkingContent, v))
}

// ThinkingContentLTE applies the LTE predicate on the "thinking_content" field.
func ThinkingContentLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldThinkingContent, v))
}

// ThinkingContentContains applies the Contains predicate on the "thinking_content" field.
func ThinkingContentContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldThinkingContent, v))
}

// ThinkingContentHasPrefix applies the HasPrefix predicate on the "thinking_content" field.
func ThinkingContentHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldThinkingContent, v))
}

// ThinkingContentHasSuffix applies the HasSuffix predicate on the "thinking_content" field.
func ThinkingContentHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldThinkingContent, v))
}

// ThinkingContentIsNil applies the IsNil predicate on the "thinking_content" field.
func ThinkingContentIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldThinkingContent))
}

// ThinkingContentNotNil applies the NotNil predicate on the "thinking_content" field.
func ThinkingContentNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldThinkingContent))
}

// ThinkingContentEqualFold applies the EqualFold predicate on the "thinking_content" field.
func ThinkingContentEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldThinkingContent, v))
}

// ThinkingContentContainsFold applies the ContainsFold predicate on the "thinking_content" field.
func ThinkingContentContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldThinkingContent, v))
}

// ResponseMetadataIsNil applies the IsNil predicate on the "response_metadata" field.
func ResponseMetadataIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldResponseMetadata))
}

// ResponseMetadataNotNil applies the NotNil predicate on the "response_metadata" field.
func ResponseMetadataNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldResponseMetadata))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldOutputTokens))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalTokensIsNil applies the IsNil predicate on the "total_tokens" field.
func TotalTokensIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldTotalTokens))
}

// TotalTokensNotNil applies the NotNil predicate on the "total_tokens" field.
func TotalTokensNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldTotalTokens))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldDurationMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AlertSession) predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStage applies the HasEdge predicate on the "stage" edge.
func HasStage() predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageWith applies the HasEdge predicate on the "stage" edge with a given conditions (other predicates).
func HasStageWith(preds ...predicate.Stage) predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := newStageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentExecution applies the HasEdge predicate on the "agent_execution" edge.
func HasAgentExecution() predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentExecutionWith applies the HasEdge predicate on the "agent_execution" edge with a given conditions (other predicates).
func HasAgentExecutionWith(preds ...predicate.AgentExecution) predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := newAgentExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLastMessage applies the HasEdge predicate on the "last_message" edge.
func HasLastMessage() predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LastMessageTable, LastMessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLastMessageWith applies the HasEdge predicate on the "last_message" edge with a given conditions (other predicates).
func HasLastMessageWith(preds ...predicate.Message) predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := newLastMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTimelineEvents applies the HasEdge predicate on the "timeline_events" edge.
func HasTimelineEvents() predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTimelineEventsWith applies the HasEdge predicate on the "timeline_events" edge with a given conditions (other predicates).
func HasTimelineEventsWith(preds ...predicate.TimelineEvent) predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := newTimelineEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMInteraction) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMInteraction) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMInteraction) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.NotPredicates(p))
}
