package models

// CustomError carries a stable platform error code alongside the message.
// The code is what reaches Kafka events and API responses.
type CustomError struct {
	Code    string
	Message string
}

func (e CustomError) Error() string {
	return e.Message
}
func (e CustomError) ErrorCode() string {
	return e.Code
}
