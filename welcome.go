package bhasha

import "context"

// welcomeBody follows the greeting line. The trailing spaces after "permits"
// are part of the canonical template.
const welcomeBody = `

🏢 **Business Discovery** - Find the right business structure
📄 **Compliance & Licensing** - Get all required permits  
⏰ **Timeline Planning** - Step-by-step business setup
🌐 **Platform Integration** - Digital marketplace guidance
📁 **Document Analysis** - Upload and analyze your business documents

What would you like to explore today? You can ask me anything about starting your MSME business in India!`

// WelcomeMessage composes the welcome template for language.
//
// The greeting line comes from the locale catalog; the feature bullets and
// closing prompt are English. For English the template is returned as-is,
// otherwise the whole composed message goes through TranslateMessage.
func (t *Translator) WelcomeMessage(ctx context.Context, language string) string {
	lang := NormalizeLanguage(language)
	message := t.catalog.Greeting(lang) + welcomeBody

	if t.isSourceLang(lang) {
		return message
	}

	return t.TranslateMessage(ctx, message, lang)
}
