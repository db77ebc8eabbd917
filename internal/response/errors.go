package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Session lifecycle ─────────────────────────────────────────────
	ErrNoActiveSession ErrCode = "NO_ACTIVE_SESSION"
	ErrInvalidPin      ErrCode = "INVALID_PIN"

	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrAdminAccessOnly    ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound            ErrCode = "NOT_FOUND"
	ErrQuestionSetNotFound ErrCode = "QUESTION_SET_NOT_FOUND"
	ErrNotEligible         ErrCode = "CERTIFICATE_NOT_ELIGIBLE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the user-facing French message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Session lifecycle ─────────────────────────────────────────────
	case ErrNoActiveSession:
		return "Aucune session active."
	case ErrInvalidPin:
		return "Code PIN incorrect."

	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Mot de passe administrateur incorrect."
	case ErrTokenRequired:
		return "Jeton d'authentification requis."
	case ErrTokenInvalid:
		return "Jeton d'authentification invalide."
	case ErrAdminAccessOnly:
		return "Cette ressource est réservée à l'administrateur."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation échouée. Veuillez vérifier votre saisie."
	case ErrInvalidPayload:
		return "Corps de requête invalide."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Résultat introuvable."
	case ErrQuestionSetNotFound:
		return "Questionnaire introuvable pour cette discipline."
	case ErrNotEligible:
		return "Score insuffisant pour un certificat téléchargeable."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Une erreur interne est survenue."
	default:
		return "Une erreur inattendue est survenue."
	}
}
