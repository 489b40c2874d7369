package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestHandleError(t *testing.T) {
	assert.NoError(t, HandleError(nil))

	err := HandleError(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "NOT_FOUND")

	err = HandleError(errors.New("sql: database is closed"))
	assert.Contains(t, err.Error(), "DATABASE_CONNECTION_ERROR")

	err = HandleError(errors.New("UNIQUE constraint failed: guestbook_entries.id"))
	assert.Contains(t, err.Error(), "UNIQUE_CONSTRAINT")
}
