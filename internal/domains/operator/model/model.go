package model

import (
	"resort/shared/model"
	"time"
)

const (
	TableName  = "operators"
	EntityName = "operator"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// Operator is a resort staff account allowed into the back office.
type Operator struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	FullName  string     `db:"full_name"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

func (o Operator) Found() bool {
	return o.ID != ""
}
