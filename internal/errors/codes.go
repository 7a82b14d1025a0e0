// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Credential errors. Wrong password, wrong token and stale referrer all
	// collapse into PERMISSION_DENIED so the response never reveals which
	// check failed.
	CodePermissionDenied Code = "PERMISSION_DENIED"

	// Request errors
	CodeSystemUnknown    Code = "SYSTEM_UNKNOWN"
	CodeCharacterEmptyID Code = "CHARACTER_EMPTY_ID"
	CodeCharacterInvalid Code = "CHARACTER_INVALID"

	// Rule table errors
	CodeRulesUnknownDependency Code = "RULES_UNKNOWN_DEPENDENCY"
	CodeRulesUnknownParameter  Code = "RULES_UNKNOWN_PARAMETER"
	CodeRulesDuplicateKey      Code = "RULES_DUPLICATE_KEY"

	// Dice errors
	CodeDiceInvalidSides Code = "DICE_INVALID_SIDES"
	CodeDiceNotSettled   Code = "DICE_NOT_SETTLED"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound

	case CodePermissionDenied:
		return http.StatusForbidden

	case CodeSystemUnknown,
		CodeCharacterEmptyID,
		CodeCharacterInvalid,
		CodeRulesUnknownDependency,
		CodeRulesUnknownParameter,
		CodeRulesDuplicateKey,
		CodeDiceInvalidSides,
		CodeDiceNotSettled:
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
