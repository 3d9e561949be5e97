package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devolve o código de um BusinessError, ou "".
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

var (
	// ErrReferentialConflict: exclusão recusada porque há registros dependentes.
	ErrReferentialConflict = errors.New("referential_conflict")

	ErrNotFound = errors.New("not_found")
)
