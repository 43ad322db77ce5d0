package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("rdv_bookings").
		Where(squirrel.Eq{"id": "abc"}).
		Where(squirrel.Eq{"status": "pending"}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM rdv_bookings WHERE id = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{"abc", "pending"}, args)

	query, _, err = Update("rdv_bookings").Set("status", "confirmed").Where(squirrel.Eq{"id": "abc"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE rdv_bookings SET status = $1 WHERE id = $2", query)

	query, _, err = Insert("rdv_bookings").Columns("id", "status").Values("abc", "pending").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO rdv_bookings (id,status) VALUES ($1,$2)", query)
}
