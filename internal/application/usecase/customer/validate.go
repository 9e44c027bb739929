// Package customer contains customer-related use cases.
package customer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

const (
	// MaxNameLength is the maximum allowed length for customer names.
	MaxNameLength = 100
	// MaxPhoneLength is the maximum allowed length for phone numbers.
	MaxPhoneLength = 20
	// MaxAddressLength is the maximum allowed length for addresses.
	MaxAddressLength = 200
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]*$`)

// validateProfile normalizes and validates the editable customer fields.
// It returns the trimmed values.
func validateProfile(name, phone, address string) (string, string, string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if name == "" {
		return "", "", "", domainerror.NewCustomerError(
			domainerror.ErrCodeEmptyCustomerName,
			"name",
			"customer name is required",
			domainerror.ErrEmptyCustomerName,
		)
	}
	// Limits count characters, not bytes; Devanagari names take three bytes
	// per rune.
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", "", "", domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNameTooLong,
			"name",
			fmt.Sprintf("name must not exceed %d characters", MaxNameLength),
			domainerror.ErrCustomerNameTooLong,
		)
	}
	if utf8.RuneCountInString(phone) > MaxPhoneLength || !phonePattern.MatchString(phone) {
		return "", "", "", domainerror.NewCustomerError(
			domainerror.ErrCodeInvalidPhone,
			"phone",
			"phone may only contain digits, spaces and +-()",
			domainerror.ErrInvalidPhone,
		)
	}
	if utf8.RuneCountInString(address) > MaxAddressLength {
		return "", "", "", domainerror.NewCustomerError(
			domainerror.ErrCodeAddressTooLong,
			"address",
			fmt.Sprintf("address must not exceed %d characters", MaxAddressLength),
			domainerror.ErrAddressTooLong,
		)
	}
	return name, phone, address, nil
}
