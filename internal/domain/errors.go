package domain

import "errors"

var (
	ErrShopNotFound   = errors.New("shop not found")
	ErrDeviceNotFound = errors.New("device not found")
)
