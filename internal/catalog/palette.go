package catalog

import "promptstudio/internal/domain"

// PaletteEntry is a draggable block offered by the palette.
type PaletteEntry struct {
	Type           domain.BlockType `json:"type"`
	Label          string           `json:"label"`
	Emoji          string           `json:"emoji"`
	DefaultContent string           `json:"defaultContent"`
	Description    string           `json:"description"`
}

// PaletteGroup is a titled section of the palette.
type PaletteGroup struct {
	Name    string         `json:"name"`
	Emoji   string         `json:"emoji"`
	Entries []PaletteEntry `json:"entries"`
}

var palette = []PaletteGroup{
	{
		Name:  "System & Instructions",
		Emoji: "🎭",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeSystem, Label: "System Role", Emoji: "🎭", DefaultContent: "a helpful AI assistant", Description: "Set the AI's personality and role"},
			{Type: domain.BlockTypeInstruction, Label: "Instruction", Emoji: "📝", DefaultContent: "help me analyze this text", Description: "Give clear directions"},
			{Type: domain.BlockTypeTask, Label: "Specific Task", Emoji: "🎯", DefaultContent: "summarize the key points", Description: "Define a concrete task"},
			{Type: domain.BlockTypePersona, Label: "Persona", Emoji: "👨‍💼", DefaultContent: "an expert data scientist with 10 years experience", Description: "Define detailed character traits"},
		},
	},
	{
		Name:  "Context & Background",
		Emoji: "📚",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeContext, Label: "Context Info", Emoji: "📚", DefaultContent: "this is a business email from a client", Description: "Provide background information"},
			{Type: domain.BlockTypeRole, Label: "Role Playing", Emoji: "👤", DefaultContent: "a senior marketing manager", Description: "Make AI adopt a specific role"},
			{Type: domain.BlockTypeAudience, Label: "Target Audience", Emoji: "👥", DefaultContent: "explain this to a 12-year-old", Description: "Define who the response is for"},
			{Type: domain.BlockTypeDomain, Label: "Domain Knowledge", Emoji: "🏛️", DefaultContent: "in the context of machine learning", Description: "Specify the field or domain"},
		},
	},
	{
		Name:  "Examples & Learning",
		Emoji: "💡",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeExample, Label: "Single Example", Emoji: "💡", DefaultContent: "Input: 'Hello world' → Output: 'Greeting detected'", Description: "Show one input/output example"},
			{Type: domain.BlockTypeFewShot, Label: "Multiple Examples", Emoji: "⚡", DefaultContent: "1. Happy → Positive\n2. Sad → Negative\n3. Excited → Positive", Description: "Multiple examples for pattern learning"},
			{Type: domain.BlockTypeAnalogy, Label: "Analogy", Emoji: "🔗", DefaultContent: "think of this like a library catalog system", Description: "Use analogies to explain concepts"},
			{Type: domain.BlockTypeCounterExample, Label: "Counter Example", Emoji: "❌", DefaultContent: "do NOT do this: ...", Description: "Show what not to do"},
		},
	},
	{
		Name:  "Advanced Reasoning",
		Emoji: "🧠",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeChainOfThought, Label: "Step-by-Step", Emoji: "🧠", DefaultContent: "let's think through this step by step", Description: "Encourage reasoning process"},
			{Type: domain.BlockTypeTreeOfThought, Label: "Tree of Thought", Emoji: "🌳", DefaultContent: "explore multiple reasoning paths", Description: "Consider different approaches"},
			{Type: domain.BlockTypeSelfReflection, Label: "Self-Reflection", Emoji: "🪞", DefaultContent: "review your answer and check for errors", Description: "Ask AI to critique itself"},
			{Type: domain.BlockTypeStepBack, Label: "Step Back", Emoji: "↩️", DefaultContent: "first, what are the fundamental principles here?", Description: "Start with high-level concepts"},
		},
	},
	{
		Name:  "Output Control",
		Emoji: "📋",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeFormat, Label: "Output Format", Emoji: "📋", DefaultContent: "respond in bullet points", Description: "Specify how to format the response"},
			{Type: domain.BlockTypeConstraint, Label: "Constraints", Emoji: "⚠️", DefaultContent: "keep response under 50 words", Description: "Set limits and requirements"},
			{Type: domain.BlockTypeTone, Label: "Tone & Style", Emoji: "🎨", DefaultContent: "use a friendly, conversational tone", Description: "Set the communication style"},
			{Type: domain.BlockTypeStructure, Label: "Structure", Emoji: "🏗️", DefaultContent: "organize with: 1) Summary 2) Details 3) Conclusion", Description: "Define response organization"},
		},
	},
	{
		Name:  "Quality & Safety",
		Emoji: "🛡️",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeValidation, Label: "Input Validation", Emoji: "✅", DefaultContent: "first check if the input makes sense", Description: "Validate input before processing"},
			{Type: domain.BlockTypeSafety, Label: "Safety Guidelines", Emoji: "🛡️", DefaultContent: "avoid harmful, biased, or inappropriate content", Description: "Set safety boundaries"},
			{Type: domain.BlockTypeFactCheck, Label: "Fact Checking", Emoji: "🔍", DefaultContent: "verify claims and cite sources when possible", Description: "Encourage accuracy verification"},
			{Type: domain.BlockTypeUncertainty, Label: "Handle Uncertainty", Emoji: "❓", DefaultContent: "if unsure, say so and explain your confidence level", Description: "Acknowledge limitations"},
		},
	},
	{
		Name:  "Interactive Elements",
		Emoji: "💬",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeQuestion, Label: "Ask Questions", Emoji: "❓", DefaultContent: "ask clarifying questions if needed", Description: "Encourage information gathering"},
			{Type: domain.BlockTypeClarification, Label: "Seek Clarification", Emoji: "🤔", DefaultContent: "what specific aspect would you like me to focus on?", Description: "Request more details"},
			{Type: domain.BlockTypeOptions, Label: "Provide Options", Emoji: "🔀", DefaultContent: "here are 3 different approaches you could take", Description: "Offer multiple solutions"},
			{Type: domain.BlockTypeFollowUp, Label: "Follow-up", Emoji: "➡️", DefaultContent: "would you like me to elaborate on any of these points?", Description: "Suggest next steps"},
		},
	},
	{
		Name:  "Specialized Domains",
		Emoji: "🔬",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeCode, Label: "Code Generation", Emoji: "💻", DefaultContent: "write clean, well-commented code", Description: "For programming tasks"},
			{Type: domain.BlockTypeCreative, Label: "Creative Writing", Emoji: "✍️", DefaultContent: "be imaginative and engaging", Description: "For creative content"},
			{Type: domain.BlockTypeAnalysis, Label: "Data Analysis", Emoji: "📊", DefaultContent: "provide statistical insights and trends", Description: "For analytical tasks"},
			{Type: domain.BlockTypeResearch, Label: "Research Mode", Emoji: "🔬", DefaultContent: "approach this systematically with evidence", Description: "For research-oriented tasks"},
		},
	},
	{
		Name:  "Meta & Optimization",
		Emoji: "⚙️",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeMetaPrompt, Label: "Meta Prompting", Emoji: "🔄", DefaultContent: "improve this prompt to get better results", Description: "Self-improving prompts"},
			{Type: domain.BlockTypePerformance, Label: "Performance Check", Emoji: "📈", DefaultContent: "rate the quality of your response from 1-10", Description: "Self-evaluation"},
			{Type: domain.BlockTypeIteration, Label: "Iterative Improvement", Emoji: "🔁", DefaultContent: "refine your answer based on this feedback", Description: "Continuous improvement"},
			{Type: domain.BlockTypeBenchmark, Label: "Benchmark", Emoji: "🏆", DefaultContent: "compare your approach to industry best practices", Description: "Quality comparison"},
		},
	},
	{
		Name:  "Logic & Dynamic",
		Emoji: "💡",
		Entries: []PaletteEntry{
			{Type: domain.BlockTypeIf, Label: "If Condition", Emoji: "❓", DefaultContent: "the user asks about pricing", Description: "Define a condition for conditional logic"},
			{Type: domain.BlockTypeThen, Label: "Then Action", Emoji: "✅", DefaultContent: "provide a link to the pricing page", Description: "Specify an action to take if a condition is met"},
			{Type: domain.BlockTypeLoop, Label: "Loop Action", Emoji: "🔄", DefaultContent: "for each item in the list, summarize it", Description: "Repeat an action for multiple inputs or iterations"},
			{Type: domain.BlockTypeInject, Label: "Inject Dynamic Content", Emoji: "💉", DefaultContent: "{{user_name}}", Description: "Insert dynamic data into the prompt"},
		},
	},
}
