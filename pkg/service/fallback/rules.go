package fallback

// DefaultRules returns the built-in canned-answer rules. Order is significant:
// earlier rules take priority, so a question mentioning both "password" and
// "pay" resolves to the password answer.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"password", "reset", "forgot"},
			Answer:   "To reset your password, click the 'Forgot Password' link on the login page. Enter your email address, and we'll send you a password reset link. Click the link in the email to create a new password.",
		},
		{
			Keywords: []string{"account", "create", "signup", "sign up"},
			Answer:   "To create an account, visit our website and click the 'Sign Up' button. You'll need to provide your email address, create a password, and verify your email address.",
		},
		{
			Keywords: []string{"billing", "payment", "pay", "subscription"},
			Answer:   "We accept all major credit cards, PayPal, and bank transfers. You can update your billing information in your account settings under Billing > Payment Methods.",
		},
		{
			Keywords: []string{"upload", "file", "document"},
			Answer:   "To upload files, click the 'Upload' button in the main interface. You can drag and drop files directly into the upload area or click to browse your computer.",
		},
		{
			Keywords: []string{"share", "collaborate", "permission"},
			Answer:   "You can share documents by clicking the 'Share' button on any document. Enter the email addresses of people you want to share with and set their permission level.",
		},
		{
			Keywords: []string{"support", "help", "contact"},
			Answer:   "You can contact our support team through multiple channels: Email us at support@company.com, use the live chat feature on our website, or call us at 1-800-SUPPORT during business hours.",
		},
		{
			Keywords: []string{"mobile", "app", "phone"},
			Answer:   "Yes, we have mobile apps available for iOS and Android devices. You can download them from the App Store or Google Play Store.",
		},
		{
			Keywords: []string{"security", "privacy", "data"},
			Answer:   "We take data security seriously. All data is encrypted in transit and at rest using AES-256 encryption. We use industry-standard security measures and comply with GDPR, HIPAA, and SOC 2 standards.",
		},
		{
			Keywords: []string{"limit", "storage", "quota"},
			Answer:   "Free accounts can upload up to 1GB of files. Paid plans offer 10GB, 100GB, and unlimited storage depending on your subscription level.",
		},
	}
}

// DefaultRefusalPhrases returns the built-in phrase set used to recognize a
// completion that declines to answer
func DefaultRefusalPhrases() []string {
	return []string{
		"i'm not sure",
		"i don't know",
		"i cannot provide",
		"i'm unable to",
		"i don't have enough information",
		"i'm sorry, but",
		"unfortunately, i",
		"i cannot answer",
		"i don't have access to",
		"i'm not able to",
	}
}
