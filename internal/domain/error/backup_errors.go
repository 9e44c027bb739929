package error

import "errors"

// Backup / merge-import domain errors.
var (
	// ErrBackupNotObject is returned when the backup document is not a JSON object.
	ErrBackupNotObject = errors.New("backup must be a JSON object")

	// ErrBackupTooLarge is returned when the backup payload exceeds the size cap.
	ErrBackupTooLarge = errors.New("backup file too large")

	// ErrBackupEmpty is returned when the backup contains no usable records.
	ErrBackupEmpty = errors.New("backup contains no valid data")

	// ErrBackupMalformed is returned when the backup cannot be decoded.
	ErrBackupMalformed = errors.New("backup file is malformed")

	// ErrImportFailed is returned when the merge batch could not be committed;
	// nothing was persisted.
	ErrImportFailed = errors.New("import failed, no changes were applied")
)

// BackupErrorCode defines error codes for backup errors.
type BackupErrorCode string

const (
	ErrCodeBackupNotObject BackupErrorCode = "BKP-010001"
	ErrCodeBackupTooLarge  BackupErrorCode = "BKP-010002"
	ErrCodeBackupEmpty     BackupErrorCode = "BKP-010003"
	ErrCodeBackupMalformed BackupErrorCode = "BKP-010004"
	ErrCodeImportFailed    BackupErrorCode = "BKP-020001"
)

// BackupError represents a backup/import error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
