// Package i18n provides internationalization support for the order service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":           "Invalid request",
			"error.invalid_request_body":      "Invalid request body",
			"error.internal_error":            "An unexpected error occurred",
			"error.service_unavailable":       "Service temporarily unavailable, please try again",
			"error.unauthorized":              "Unauthorized",
			"error.invalid_staff_secret":      "Invalid staff secret",
			"error.staff_auth_disabled":       "Staff login is not configured",
			"error.invalid_api_key":           "Invalid API key",
			"error.not_found":                 "Not found",
			"error.order_not_found":           "Order not found",
			"error.unknown_category":          "Unknown menu category",
			"error.rate_limit_exceeded":       "Too many requests, please try again later",
			"error.conflict":                  "Conflict",
			"error.validation.items_required": "items: at least one item is required",
			"error.closure.invalid_date":      "date: must be MM/DD/YYYY or YYYY-MM-DD",
			"error.closure.in_past":           "date: must not be in the past",
			"error.closure.duplicate":         "The store is already closed on that date",
			"error.invalid_token":             "Invalid or expired token",
			"error.token_required":            "Authentication token is required",
			"error.timeout":                   "Request timed out",

			// Success messages
			"success.order_placed":  "Order placed successfully",
			"success.order_valid":   "Order is valid",
			"success.closure_added": "Store closure added",
		},
		"pt": {
			// Error messages
			"error.invalid_request":           "Requisição inválida",
			"error.invalid_request_body":      "Corpo da requisição inválido",
			"error.internal_error":            "Ocorreu um erro inesperado",
			"error.service_unavailable":       "Serviço temporariamente indisponível, tente novamente",
			"error.unauthorized":              "Não autorizado",
			"error.invalid_staff_secret":      "Senha da equipe inválida",
			"error.staff_auth_disabled":       "Login da equipe não está configurado",
			"error.invalid_api_key":           "Chave de API inválida",
			"error.not_found":                 "Não encontrado",
			"error.order_not_found":           "Pedido não encontrado",
			"error.unknown_category":          "Categoria do cardápio desconhecida",
			"error.rate_limit_exceeded":       "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                  "Conflito",
			"error.validation.items_required": "items: pelo menos um item é obrigatório",
			"error.closure.invalid_date":      "date: deve ser MM/DD/AAAA ou AAAA-MM-DD",
			"error.closure.in_past":           "date: não pode estar no passado",
			"error.closure.duplicate":         "A loja já está fechada nessa data",
			"error.invalid_token":             "Token inválido ou expirado",
			"error.token_required":            "Token de autenticação é obrigatório",
			"error.timeout":                   "Tempo da requisição esgotado",

			// Success messages
			"success.order_placed":  "Pedido realizado com sucesso",
			"success.order_valid":   "Pedido válido",
			"success.closure_added": "Fechamento da loja adicionado",
		},
		"nl": {
			// Error messages
			"error.invalid_request":           "Ongeldig verzoek",
			"error.invalid_request_body":      "Ongeldige aanvraag body",
			"error.internal_error":            "Er is een onverwachte fout opgetreden",
			"error.service_unavailable":       "Dienst tijdelijk niet beschikbaar, probeer het opnieuw",
			"error.unauthorized":              "Niet geautoriseerd",
			"error.invalid_staff_secret":      "Ongeldig personeelswachtwoord",
			"error.staff_auth_disabled":       "Personeelslogin is niet geconfigureerd",
			"error.invalid_api_key":           "Ongeldige API-sleutel",
			"error.not_found":                 "Niet gevonden",
			"error.order_not_found":           "Bestelling niet gevonden",
			"error.unknown_category":          "Onbekende menucategorie",
			"error.rate_limit_exceeded":       "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                  "Conflict",
			"error.validation.items_required": "items: minstens één item is vereist",
			"error.closure.invalid_date":      "date: moet MM/DD/JJJJ of JJJJ-MM-DD zijn",
			"error.closure.in_past":           "date: mag niet in het verleden liggen",
			"error.closure.duplicate":         "De winkel is op die datum al gesloten",
			"error.invalid_token":             "Ongeldig of verlopen token",
			"error.token_required":            "Authenticatietoken is vereist",
			"error.timeout":                   "Verzoek is verlopen",

			// Success messages
			"success.order_placed":  "Bestelling succesvol geplaatst",
			"success.order_valid":   "Bestelling is geldig",
			"success.closure_added": "Winkelsluiting toegevoegd",
		},
	}
}
