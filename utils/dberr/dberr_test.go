package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/bhrc-portal/utils/dberr"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'BHRC-2024-0001' for key 'certificate_number'"}
	assert.True(t, dberr.IsDuplicate(dup))
	assert.True(t, dberr.IsDuplicate(fmt.Errorf("insert: %w", dup)))
	assert.False(t, dberr.IsDuplicate(&mysql.MySQLError{Number: 1452}))
	assert.False(t, dberr.IsDuplicate(errors.New("duplicate")))
	assert.False(t, dberr.IsDuplicate(nil))
}
