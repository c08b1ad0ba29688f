package io

import (
	"github.com/ezrec/lzvm/translate"
)

var (
	// Channel errors
	ErrChannelFull = translate.Error("channel full")
	ErrTapeInput   = translate.Error("tape has no input")
	ErrTapeOutput  = translate.Error("tape has no output")
)
