package postgres

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mattervault/internal/query"
)

type userRow struct{}

func newUserSource() *rowSource[userRow] {
	return newRowSource[userRow](nil,
		builder().Select("*").From("users"),
		builder().Select("COUNT(*)").From("users"),
		"last_name ASC", "first_name ASC")
}

func TestRowSource_DefaultOrderApplies(t *testing.T) {
	sqlStr, args, err := newUserSource().materializeSQL()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, "SELECT * FROM users ORDER BY last_name ASC, first_name ASC", sqlStr)
}

func TestRowSource_OrderByReplacesDefaultOrder(t *testing.T) {
	src := newUserSource().OrderBy([]query.OrderField{
		{Path: "last_name", Desc: true},
		{Path: "first_name", Desc: true},
		{Path: "date_of_birth"},
	})

	sqlStr, _, err := src.(*rowSource[userRow]).materializeSQL()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM users ORDER BY last_name DESC, first_name DESC, date_of_birth ASC",
		sqlStr)
}

func TestRowSource_SliceAddsOffsetAndLimit(t *testing.T) {
	src := newUserSource().
		OrderBy([]query.OrderField{{Path: "last_name"}}).
		Slice(20, 10)

	sqlStr, _, err := src.(*rowSource[userRow]).materializeSQL()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM users ORDER BY last_name ASC LIMIT 10 OFFSET 20",
		sqlStr)
}

func TestRowSource_DerivedSourcesDoNotMutateParent(t *testing.T) {
	base := newUserSource()
	_ = base.OrderBy([]query.OrderField{{Path: "email", Desc: true}})
	_ = base.Slice(50, 5)

	sqlStr, _, err := base.materializeSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users ORDER BY last_name ASC, first_name ASC", sqlStr)
}

func TestRowSource_WhereArgsSurviveOrdering(t *testing.T) {
	src := newRowSource[userRow](nil,
		builder().Select("*").From("documents").Where(sq.Eq{"matter_id": "m-1"}),
		builder().Select("COUNT(*)").From("documents").Where(sq.Eq{"matter_id": "m-1"}),
		"created_at DESC")

	sqlStr, args, err := src.OrderBy([]query.OrderField{{Path: "title"}}).
		Slice(0, 25).(*rowSource[userRow]).materializeSQL()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM documents WHERE matter_id = $1 ORDER BY title ASC LIMIT 25 OFFSET 0",
		sqlStr)
	assert.Equal(t, []interface{}{"m-1"}, args)
}
