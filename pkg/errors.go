package pkg

import "fmt"

// ErrConfig reports a configuration step that failed.
type ErrConfig struct {
	Cause string
	Info  string
	Err   error
}

func (e ErrConfig) Error() string {
	if e.Info == "" {
		return fmt.Sprintf("%s; got error: %s", e.Cause, e.Err)
	}
	return fmt.Sprintf("%s; got error: %s; info: %s", e.Cause, e.Err, e.Info)
}

func (e ErrConfig) Unwrap() error {
	return e.Err
}
