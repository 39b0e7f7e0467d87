package eval

// TestCase is a question category with phrasing variations and the
// expectation each phrasing is scored against
type TestCase struct {
	Category       string      `toml:"category"`
	BaseQuestion   string      `toml:"base_question"`
	Variations     []string    `toml:"variations"`
	Expectation    Expectation `toml:"expectation"`
	ShouldEscalate bool        `toml:"should_escalate"`
}

// Questions returns the base question followed by all variations
func (tc TestCase) Questions() []string {
	questions := make([]string, 0, len(tc.Variations)+1)
	questions = append(questions, tc.BaseQuestion)
	questions = append(questions, tc.Variations...)
	return questions
}

// DefaultCases returns the built-in evaluation corpus covering the knowledge
// base topics plus out-of-scope questions that must escalate to tickets
func DefaultCases() []TestCase {
	return []TestCase{
		{
			Category:     "Password Reset",
			BaseQuestion: "How do I reset my password?",
			Variations: []string{
				"I forgot my password, what should I do?",
				"Can you help me reset my password?",
				"What's the process for password reset?",
				"I need to change my password",
				"How can I recover my password?",
			},
			Expectation: Expectation{
				Keywords:        []string{"password", "reset", "email", "link", "forgot"},
				Phrases:         []string{"reset password", "email link", "click link"},
				KnowledgeAnswer: "To reset your password, go to the login page and click 'Forgot Password'. Enter your email address and you'll receive a reset link via email. Click the link in the email to create a new password.",
			},
		},
		{
			Category:     "Account Creation",
			BaseQuestion: "How do I create an account?",
			Variations: []string{
				"How can I sign up?",
				"What's the process to create an account?",
				"I want to register for an account",
				"How do I sign up for the service?",
				"Can you help me create an account?",
			},
			Expectation: Expectation{
				Keywords:        []string{"account", "create", "sign up", "email", "verify"},
				Phrases:         []string{"create account", "sign up", "email verification"},
				KnowledgeAnswer: "To create an account, visit our signup page and enter your email address. You'll receive a verification email. Click the verification link to activate your account and set up your password.",
			},
		},
		{
			Category:     "Payment Methods",
			BaseQuestion: "What payment methods do you accept?",
			Variations: []string{
				"How can I pay for the service?",
				"What forms of payment do you take?",
				"Do you accept credit cards?",
				"What payment options are available?",
				"Can I pay with PayPal?",
			},
			Expectation: Expectation{
				Keywords:        []string{"payment", "credit card", "paypal", "billing"},
				Phrases:         []string{"credit card", "paypal", "payment methods"},
				KnowledgeAnswer: "We accept major credit cards (Visa, MasterCard, American Express), PayPal, and bank transfers. All payments are processed securely through our payment partners.",
			},
		},
		{
			Category:     "File Upload",
			BaseQuestion: "How do I upload files?",
			Variations: []string{
				"Can I upload documents?",
				"What's the process for uploading files?",
				"How do I add files to the system?",
				"Is there a way to upload my documents?",
				"What's the file upload process?",
			},
			Expectation: Expectation{
				Keywords:        []string{"upload", "file", "drag", "drop", "browse"},
				Phrases:         []string{"upload files", "drag and drop", "file upload"},
				KnowledgeAnswer: "To upload files, simply drag and drop them into the upload area or click 'Browse' to select files from your computer. Supported formats include PDF, DOC, DOCX, and image files up to 10MB.",
			},
		},
		{
			Category:     "Document Sharing",
			BaseQuestion: "Can I share documents with others?",
			Variations: []string{
				"How do I share files with my team?",
				"Is it possible to share documents?",
				"Can I give others access to my files?",
				"How do I collaborate on documents?",
				"What are the sharing options?",
			},
			Expectation: Expectation{
				Keywords:        []string{"share", "document", "permission", "email", "access"},
				Phrases:         []string{"share documents", "permission settings", "email invitation"},
				KnowledgeAnswer: "Yes, you can share documents by clicking the 'Share' button and entering email addresses. You can set permissions for view-only or edit access. Recipients will receive an email invitation to access the shared document.",
			},
		},
		{
			Category:     "Mobile Access",
			BaseQuestion: "Do you have a mobile app?",
			Variations: []string{
				"Is there an app for my phone?",
				"Can I use this on mobile?",
				"Do you have an iOS app?",
				"Is there an Android version?",
				"Can I access this on my phone?",
			},
			Expectation: Expectation{
				Keywords:        []string{"mobile", "app", "ios", "android", "download"},
				Phrases:         []string{"mobile app", "download app", "app store"},
				KnowledgeAnswer: "Yes, we have mobile apps available for both iOS and Android. You can download them from the App Store or Google Play Store. The mobile app provides full functionality including file upload, sharing, and real-time collaboration.",
			},
		},
		{
			Category:     "Data Security",
			BaseQuestion: "Is my data secure?",
			Variations: []string{
				"How secure is my information?",
				"Is my data protected?",
				"What security measures do you have?",
				"Is my personal information safe?",
				"How do you protect my data?",
			},
			Expectation: Expectation{
				Keywords:        []string{"security", "encryption", "data", "secure", "protect"},
				Phrases:         []string{"data security", "encryption", "secure storage"},
				KnowledgeAnswer: "Your data is protected with enterprise-grade encryption both in transit and at rest. We use SSL/TLS encryption for all data transfers and AES-256 encryption for stored data. We also implement strict access controls and regular security audits.",
			},
		},
		{
			Category:     "Unknown Questions",
			BaseQuestion: "How do I build a rocket ship?",
			Variations: []string{
				"What is the airspeed velocity of an unladen swallow?",
				"Can you fix my car engine?",
				"What's the weather forecast for tomorrow?",
				"How do I bake sourdough bread?",
				"Who won the world cup in 1974?",
			},
			ShouldEscalate: true,
		},
	}
}
