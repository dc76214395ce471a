package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrQRCodeExists     = errors.New("QR code already exists")
)
