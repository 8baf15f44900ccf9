// Package user defines the User record: a contact with a validated e-mail
// address, phone number and age, plus a free-form name.
package user

import (
	"fmt"

	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
	"github.com/jsamuelsen11/validated-entities/internal/domain/schema"
)

// Field names of the User type.
const (
	FieldEmail = "email"
	FieldPhone = "phone"
	FieldAge   = "age"
	FieldName  = "name"
)

// Type is the User binding table. email, phone and age select the e-mail,
// phone and age rules; name selects none.
var Type = entity.MustDefine("User",
	schema.Text(FieldEmail),
	schema.Text(FieldPhone),
	schema.Integer(FieldAge),
	schema.Text(FieldName),
)

// User is a typed view over a User entity.
type User struct {
	e *entity.Entity
}

// New creates a User. Fields are validated in the order email, phone, age,
// name; the first rejected value is returned as a *domain.ValidationError and
// no User is created.
func New(email, phone string, age int, name string) (*User, error) {
	e, err := entity.New(Type, map[string]any{
		FieldEmail: email,
		FieldPhone: phone,
		FieldAge:   age,
		FieldName:  name,
	})
	if err != nil {
		return nil, err
	}
	return &User{e: e}, nil
}

// FromEntity wraps an entity created from Type.
func FromEntity(e *entity.Entity) (*User, error) {
	if e == nil || e.Type() == nil {
		return nil, fmt.Errorf("%w: entity has no type", entity.ErrInvalidType)
	}
	if e.Type() != Type {
		return nil, fmt.Errorf("%w: %s is not a User", entity.ErrInvalidType, e.Type().Name())
	}
	return &User{e: e}, nil
}

// Entity returns the underlying entity.
func (u *User) Entity() *entity.Entity { return u.e }

func (u *User) Email() string { return u.text(FieldEmail) }
func (u *User) Phone() string { return u.text(FieldPhone) }
func (u *User) Name() string  { return u.text(FieldName) }

// Age returns the stored age whatever integer kind it was written as.
func (u *User) Age() int {
	v, _ := u.e.Get(FieldAge)
	n, _ := schema.AsInteger(v)
	return int(n)
}

func (u *User) SetEmail(email string) error { return u.e.Set(FieldEmail, email) }
func (u *User) SetPhone(phone string) error { return u.e.Set(FieldPhone, phone) }
func (u *User) SetAge(age int) error        { return u.e.Set(FieldAge, age) }
func (u *User) SetName(name string) error   { return u.e.Set(FieldName, name) }

// String renders the user as "User(name, email, phone, age)".
func (u *User) String() string {
	return fmt.Sprintf("User(%s, %s, %s, %d)", u.Name(), u.Email(), u.Phone(), u.Age())
}

func (u *User) text(field string) string {
	v, _ := u.e.Get(field)
	s, _ := v.(string)
	return s
}
