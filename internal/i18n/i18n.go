// Package i18n provides internationalization support for the pick-ship service.
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
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.unauthorized":            "Unauthorized",
			"error.api_key_required":        "API key is required",
			"error.invalid_api_key":         "Invalid API key",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.timeout":                 "The request timed out",
			"error.request_too_large":       "The request body is too large",
			"error.missing_input":           "Both an inventory and an order are required",
			"error.malformed_inventory":     "The inventory document is malformed",
			"error.malformed_order":         "The order document is malformed",
			"error.unknown_item_code":       "The order references an item code that is not in the inventory",
			"error.item_exceeds_capacity":   "An ordered item is heavier than the box capacity",
			"error.invalid_capacity":        "Box capacity must be a positive number",
			"error.invalid_line_item":       "Line item quantities must be at least 1 and the order must stay within the unit limit",
			"error.invalid_item":            "Inventory items need a code and a positive weight",

			"success.manifest_packed": "Order packed successfully",
		},
		"pt": {
			"error.invalid_request":         "Requisição inválida",
			"error.invalid_request_body":    "Corpo da requisição inválido",
			"error.internal_error":          "Ocorreu um erro inesperado",
			"error.unauthorized":            "Não autorizado",
			"error.api_key_required":        "Chave de API é obrigatória",
			"error.invalid_api_key":         "Chave de API inválida",
			"error.not_found":               "Não encontrado",
			"error.rate_limit_exceeded":     "Muitas requisições, tente novamente mais tarde",
			"error.timeout":                 "A requisição excedeu o tempo limite",
			"error.request_too_large":       "O corpo da requisição é grande demais",
			"error.missing_input":           "Inventário e pedido são obrigatórios",
			"error.malformed_inventory":     "O documento de inventário está malformado",
			"error.malformed_order":         "O documento do pedido está malformado",
			"error.unknown_item_code":       "O pedido referencia um código de item que não está no inventário",
			"error.item_exceeds_capacity":   "Um item do pedido é mais pesado que a capacidade da caixa",
			"error.invalid_capacity":        "A capacidade da caixa deve ser um número positivo",
			"error.invalid_line_item":       "As quantidades dos itens devem ser pelo menos 1 e o pedido deve respeitar o limite de unidades",
			"error.invalid_item":            "Itens do inventário precisam de um código e um peso positivo",

			"success.manifest_packed": "Pedido embalado com sucesso",
		},
		"nl": {
			"error.invalid_request":         "Ongeldig verzoek",
			"error.invalid_request_body":    "Ongeldige aanvraag body",
			"error.internal_error":          "Er is een onverwachte fout opgetreden",
			"error.unauthorized":            "Niet geautoriseerd",
			"error.api_key_required":        "API-sleutel is vereist",
			"error.invalid_api_key":         "Ongeldige API-sleutel",
			"error.not_found":               "Niet gevonden",
			"error.rate_limit_exceeded":     "Te veel verzoeken, probeer het later opnieuw",
			"error.timeout":                 "Het verzoek is verlopen",
			"error.request_too_large":       "De aanvraag body is te groot",
			"error.missing_input":           "Zowel een voorraad als een bestelling is vereist",
			"error.malformed_inventory":     "Het voorraaddocument is ongeldig",
			"error.malformed_order":         "Het bestellingsdocument is ongeldig",
			"error.unknown_item_code":       "De bestelling verwijst naar een artikelcode die niet in de voorraad staat",
			"error.item_exceeds_capacity":   "Een besteld artikel is zwaarder dan de doos capaciteit",
			"error.invalid_capacity":        "De doos capaciteit moet een positief getal zijn",
			"error.invalid_line_item":       "Aantallen per regel moeten minstens 1 zijn en de bestelling moet binnen de eenhedenlimiet blijven",
			"error.invalid_item":            "Voorraadartikelen hebben een code en een positief gewicht nodig",

			"success.manifest_packed": "Bestelling succesvol verpakt",
		},
	}
}
