package config

import (
	"github.com/ezrec/lzvm/translate"
)

var f = translate.From

var (
	ErrConfigFormat = translate.Error("unknown configuration format")
	ErrConfigType   = translate.Error("value has the wrong type")
)

// ErrMachineUnknown is returned when a machine name is not configured.
type ErrMachineUnknown string

func (err ErrMachineUnknown) Error() string {
	return f("machine '%v' unknown", string(err))
}

// ErrConfigValue locates an invalid configuration value.
type ErrConfigValue struct {
	Key string
	Err error
}

func (err *ErrConfigValue) Error() string {
	if err.Err == nil {
		return f("'%v' invalid", err.Key)
	}
	return f("'%v' invalid: %v", err.Key, err.Err)
}

func (err *ErrConfigValue) Unwrap() error {
	return err.Err
}
