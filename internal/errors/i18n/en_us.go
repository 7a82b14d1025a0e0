package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown          = "UNKNOWN"
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"

	CodeSystemUnknown    = "SYSTEM_UNKNOWN"
	CodeCharacterEmptyID = "CHARACTER_EMPTY_ID"
	CodeCharacterInvalid = "CHARACTER_INVALID"

	CodeRulesUnknownDependency = "RULES_UNKNOWN_DEPENDENCY"
	CodeRulesUnknownParameter  = "RULES_UNKNOWN_PARAMETER"
	CodeRulesDuplicateKey      = "RULES_DUPLICATE_KEY"

	CodeDiceInvalidSides = "DICE_INVALID_SIDES"
	CodeDiceNotSettled   = "DICE_NOT_SETTLED"
)

var enUSCatalog = NewCatalog("en-US", map[Code]string{
	CodeUnknown:  "An unexpected error occurred",
	CodeNotFound: "A character with id '{{.ID}}' does not exist",

	// The same message covers wrong password, wrong token and stale
	// referrer on purpose.
	CodePermissionDenied: "Incorrect password for character with id '{{.ID}}'",

	CodeSystemUnknown:    "Unknown game system '{{.System}}'",
	CodeCharacterEmptyID: "Character id cannot be empty",
	CodeCharacterInvalid: "Character document is invalid",

	CodeRulesUnknownDependency: "Rule '{{.Key}}' depends on unknown parameter '{{.Dependency}}'",
	CodeRulesUnknownParameter:  "Unknown parameter '{{.Key}}'",
	CodeRulesDuplicateKey:      "Duplicate rule key '{{.Key}}'",

	CodeDiceInvalidSides: "Dice must have at least one side",
	CodeDiceNotSettled:   "Dice are still rolling",
})

func init() {
	RegisterCatalog("en-US", enUSCatalog)
}
