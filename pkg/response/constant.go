package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage = "Something went wrong"
	ValidationErrorMsg  = "Validation error"

	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
