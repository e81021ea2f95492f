package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Import-specific ───────────────────────────────────────────────
	ErrDecodeFailed        ErrCode = "DECODE_FAILED"
	ErrUnrecognizedFormat  ErrCode = "UNRECOGNIZED_FORMAT"
	ErrInvalidQuestionKind ErrCode = "INVALID_QUESTION_KIND"
	ErrBatchNotFound       ErrCode = "BATCH_NOT_FOUND"
	ErrNothingToCommit     ErrCode = "NOTHING_TO_COMMIT"

	// ─── Upload ────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."

	// ─── Import-specific ───────────────────────────────────────────────
	case ErrDecodeFailed:
		return "The uploaded file could not be read. Check the file encoding and format."
	case ErrUnrecognizedFormat:
		return "The uploaded file does not match any supported question layout."
	case ErrInvalidQuestionKind:
		return "Unknown question kind. Expected mcq, compiler or legacy."
	case ErrBatchNotFound:
		return "This import batch has expired or does not exist. Upload the file again."
	case ErrNothingToCommit:
		return "There are no new questions to commit in this batch."

	// ─── Upload ────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "File size exceeds the limit."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
