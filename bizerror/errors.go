package bizerror

import (
	"errors"
	"net/http"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("record not found")

	// ErrSlotConflict: the (member, date, halfDay) tuple is already occupied.
	ErrSlotConflict = errors.New("slot occupied")
	// ErrDropBlocked: drop target is a weekend, holiday or leave day.
	ErrDropBlocked = errors.New("drop target blocked")
	// ErrNoCapacity: not enough free half-days to place the requested duration.
	ErrNoCapacity = errors.New("no capacity for requested duration")
	// ErrInvalidGesture: drag gesture operation is not legal in its current state.
	ErrInvalidGesture = errors.New("invalid drag gesture")
)

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

const mysqlDuplicateEntry = 1062

// IsDuplicateKey reports whether err is a MySQL unique index violation.
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
