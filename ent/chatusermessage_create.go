// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/chat"
	"github.com/tarsy-project/tarsy/ent/chatusermessage"
	"github.com/tarsy-project/tarsy/ent/stage"
)

// ChatUserMessageCreate is the builder for creating a ChatUserMessage entity.
type ChatUserMessageCreate struct {
	config
	mutation *ChatUserMessageMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *ChatUserMessageCreate) SetChatID(v string) *ChatUserMessageCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChatUserMessageCreate) SetContent(v string) *ChatUserMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *ChatUserMessageCreate) SetAuthor(v string) *ChatUserMessageCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatUserMessageCreate) SetCreatedAt(v time.Time) *ChatUserMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatUserMessageCreate) SetNillableCreatedAt(v *time.Time) *ChatUserMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatUserMessageCreate) SetID(v string) *ChatUserMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *ChatUserMessageCreate) SetChat(v *Chat) *ChatUserMessageCreate {
	return _c.SetChatID(v.ID)
}

// SetStageID sets the "stage" edge to the Stage entity by ID.
func (_c *ChatUserMessageCreate) SetStageID(id string) *ChatUserMessageCreate {
	_c.mutation.SetStageID(id)
	return _c
}

// SetNillableStageID sets the "stage" edge to the Stage entity by ID if the given value is not nil.
func (_c *ChatUserMessageCreate) SetNillableStageID(id *string) *ChatUserMessageCreate {
	if id != nil {
		_c = _c.SetStageID(*id)
	}
	return _c
}

// SetStage sets the "stage" edge to the Stage entity.
func (_c *ChatUserMessageCreate) SetStage(v *Stage) *ChatUserMessageCreate {
	return _c.SetStageID(v.ID)
}

// Mutation returns the ChatUserMessageMutation object of the builder.
func (_c *ChatUserMessageCreate) Mutation() *ChatUserMessageMutation {
	return _c.mutation
}

// Save creates the ChatUserMessage in the database.
func (_c *ChatUserMessageCreate) Save(ctx context.Context) (*ChatUserMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatUserMessageCreate) SaveX(ctx context.Context) *ChatUserMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatUserMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatUserMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatUserMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatusermessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatUserMessageCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ChatUserMessage.chat_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ChatUserMessage.content"`)}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "ChatUserMessage.author"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatUserMessage.created_at"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "ChatUserMessage.chat"`)}
	}
	return nil
}

func (_c *ChatUserMessageCreate) sqlSave(ctx context.Context) (*ChatUserMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ChatUserMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatUserMessageCreate) createSpec() (*ChatUserMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatUserMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatusermessage.Table, sqlgraph.NewFieldSpec(chatusermessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chatusermessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(chatusermessage.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatusermessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatusermessage.ChatTable,
			Columns: []string{chatusermessage.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   chatusermessage.StageTable,
			Columns: []string{chatusermessage.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatUserMessageCreateBulk is the builder for creating many ChatUserMessage entities in bulk.
type ChatUserMessageCreateBulk struct {
	config
	err      error
	builders []*ChatUserMessageCreate
}

// Save creates the ChatUserMessage entities in the database.
func (_c *ChatUserMessageCreateBulk) Save(ctx context.Context) ([]*ChatUserMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatUserMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatUserMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChatUserMessageCreateBulk) SaveX(ctx context.Context) []*ChatUserMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatUserMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatUserMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
