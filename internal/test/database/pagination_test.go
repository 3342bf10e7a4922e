package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"textile-tryon-backend/internal/database"
)

func TestPageOffset_FirstPageStartsAtZero(t *testing.T) {
	// The default request (page 1, size 20) must see the first rows.
	assert.Equal(t, 0, database.PageOffset(1, 20))
}

func TestPageOffset_LaterPages(t *testing.T) {
	assert.Equal(t, 20, database.PageOffset(2, 20))
	assert.Equal(t, 40, database.PageOffset(3, 20))
	assert.Equal(t, 10, database.PageOffset(2, 10))
}

func TestPageOffset_ClampsBelowFirstPage(t *testing.T) {
	assert.Equal(t, 0, database.PageOffset(0, 20))
	assert.Equal(t, 0, database.PageOffset(-3, 20))
}
