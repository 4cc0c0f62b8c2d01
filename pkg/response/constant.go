package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal Server Error"

	InternalServerErrorCode = 500
)
