package catalog

import "promptstudio/internal/domain"

const (
	shapeHat   = "polygon(0 0, 100% 0, 100% 70%, 90% 100%, 10% 100%, 0 70%)"
	shapeRect  = "polygon(0 0, 100% 0, 100% 100%, 0 100%)"
	shapeArrow = "polygon(0 0, 90% 0, 100% 50%, 90% 100%, 0 100%)"
	shapeNotch = "polygon(10% 0, 100% 0, 100% 100%, 10% 100%, 0 50%)"
	shapeTab   = "polygon(0 0, 100% 0, 100% 80%, 50% 100%, 0 80%)"
	shapeSlant = "polygon(0 0, 100% 0, 90% 100%, 0 100%)"
)

// gradient builds the background token for a block from its two color stops.
func gradient(from, to string) string {
	return "bg-gradient-to-r from-" + from + "/90 to-" + to + "/90"
}

var configs = map[domain.BlockType]domain.BlockConfig{
	domain.BlockTypeSystem: {
		Prefix:       "You are",
		PromptPrefix: "You are",
		Placeholder:  "a helpful assistant",
		Emoji:        "🎭",
		BgColor:      gradient("orange-400", "orange-500"),
		TextColor:    "text-white",
		Shape:        shapeHat,
		GlowColor:    "bg-orange-400",
	},
	domain.BlockTypeInstruction: {
		Prefix:       "Please",
		PromptPrefix: "Please",
		Placeholder:  "help me with...",
		Emoji:        "📝",
		BgColor:      gradient("blue-500", "blue-600"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-blue-500",
	},
	domain.BlockTypeTask: {
		Prefix:       "Task:",
		PromptPrefix: "Your task is to",
		Placeholder:  "analyze the following...",
		Emoji:        "🎯",
		BgColor:      gradient("indigo-500", "indigo-600"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-indigo-500",
	},
	domain.BlockTypePersona: {
		Prefix:       "You are",
		PromptPrefix: "You are a persona with the following traits:",
		Placeholder:  "an expert with specific traits...",
		Emoji:        "👨‍💼",
		BgColor:      gradient("cyan-500", "cyan-600"),
		TextColor:    "text-white",
		Shape:        shapeHat,
		GlowColor:    "bg-cyan-500",
	},
	domain.BlockTypeContext: {
		Prefix:       "Context:",
		PromptPrefix: "Context:",
		Placeholder:  "here is background info...",
		Emoji:        "📚",
		BgColor:      gradient("green-500", "green-600"),
		TextColor:    "text-white",
		Shape:        shapeArrow,
		GlowColor:    "bg-green-500",
	},
	domain.BlockTypeRole: {
		Prefix:       "Act as",
		PromptPrefix: "Act as",
		Placeholder:  "a professional expert...",
		Emoji:        "👤",
		BgColor:      gradient("emerald-500", "emerald-600"),
		TextColor:    "text-white",
		Shape:        shapeArrow,
		GlowColor:    "bg-emerald-500",
	},
	domain.BlockTypeAudience: {
		Prefix:       "Audience:",
		PromptPrefix: "The target audience is",
		Placeholder:  "explain for beginners...",
		Emoji:        "👥",
		BgColor:      gradient("teal-500", "teal-600"),
		TextColor:    "text-white",
		Shape:        shapeArrow,
		GlowColor:    "bg-teal-500",
	},
	domain.BlockTypeDomain: {
		Prefix:       "Domain:",
		PromptPrefix: "In the domain of",
		Placeholder:  "in the field of...",
		Emoji:        "🏛️",
		BgColor:      gradient("slate-500", "slate-600"),
		TextColor:    "text-white",
		Shape:        shapeArrow,
		GlowColor:    "bg-slate-500",
	},
	domain.BlockTypeExample: {
		Prefix:       "Example:",
		PromptPrefix: "Example:",
		Placeholder:  "Input: ... Output: ...",
		Emoji:        "💡",
		BgColor:      gradient("purple-500", "purple-600"),
		TextColor:    "text-white",
		Shape:        shapeNotch,
		GlowColor:    "bg-purple-500",
	},
	domain.BlockTypeFewShot: {
		Prefix:       "Examples:",
		PromptPrefix: "Here are a few examples:",
		Placeholder:  "1. ... 2. ... 3. ...",
		Emoji:        "⚡",
		BgColor:      gradient("violet-500", "violet-600"),
		TextColor:    "text-white",
		Shape:        shapeNotch,
		GlowColor:    "bg-violet-500",
	},
	domain.BlockTypeAnalogy: {
		Prefix:       "Think of it like:",
		PromptPrefix: "Think of this problem like:",
		Placeholder:  "a library system...",
		Emoji:        "🔗",
		BgColor:      gradient("fuchsia-500", "fuchsia-600"),
		TextColor:    "text-white",
		Shape:        shapeNotch,
		GlowColor:    "bg-fuchsia-500",
	},
	domain.BlockTypeCounterExample: {
		Prefix:       "Don't:",
		PromptPrefix: "Do NOT do this:",
		Placeholder:  "avoid doing this...",
		Emoji:        "❌",
		BgColor:      gradient("rose-500", "rose-600"),
		TextColor:    "text-white",
		Shape:        shapeNotch,
		GlowColor:    "bg-rose-500",
	},
	domain.BlockTypeChainOfThought: {
		Prefix:       "Think:",
		PromptPrefix: "Let's think step by step:",
		Placeholder:  "let's work through this step by step...",
		Emoji:        "🧠",
		BgColor:      gradient("pink-500", "pink-600"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-pink-500",
	},
	domain.BlockTypeTreeOfThought: {
		Prefix:       "Explore:",
		PromptPrefix: "Explore multiple reasoning paths:",
		Placeholder:  "consider multiple approaches...",
		Emoji:        "🌳",
		BgColor:      gradient("lime-500", "lime-600"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-lime-500",
	},
	domain.BlockTypeSelfReflection: {
		Prefix:       "Reflect:",
		PromptPrefix: "After generating your response, reflect and improve it:",
		Placeholder:  "review and improve your answer...",
		Emoji:        "🪞",
		BgColor:      gradient("sky-500", "sky-600"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-sky-500",
	},
	domain.BlockTypeStepBack: {
		Prefix:       "Step back:",
		PromptPrefix: "Before answering, step back and consider the fundamental principles:",
		Placeholder:  "what are the fundamentals?...",
		Emoji:        "↩️",
		BgColor:      gradient("stone-500", "stone-600"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-stone-500",
	},
	domain.BlockTypeFormat: {
		Prefix:       "Format:",
		PromptPrefix: "Format your response as:",
		Placeholder:  "respond in JSON format...",
		Emoji:        "📋",
		BgColor:      gradient("amber-500", "amber-600"),
		TextColor:    "text-white",
		Shape:        shapeSlant,
		GlowColor:    "bg-amber-500",
	},
	domain.BlockTypeConstraint: {
		Prefix:       "Rules:",
		PromptPrefix: "Strictly adhere to these rules:",
		Placeholder:  "keep response under 100 words...",
		Emoji:        "⚠️",
		BgColor:      gradient("red-500", "red-600"),
		TextColor:    "text-white",
		Shape:        shapeSlant,
		GlowColor:    "bg-red-500",
	},
	domain.BlockTypeTone: {
		Prefix:       "Tone:",
		PromptPrefix: "Use a tone that is",
		Placeholder:  "use a friendly style...",
		Emoji:        "🎨",
		BgColor:      gradient("yellow-500", "yellow-600"),
		TextColor:    "text-white",
		Shape:        shapeSlant,
		GlowColor:    "bg-yellow-500",
	},
	domain.BlockTypeStructure: {
		Prefix:       "Structure:",
		PromptPrefix: "Structure your response with the following sections:",
		Placeholder:  "organize with sections...",
		Emoji:        "🏗️",
		BgColor:      gradient("orange-600", "orange-700"),
		TextColor:    "text-white",
		Shape:        shapeSlant,
		GlowColor:    "bg-orange-600",
	},
	domain.BlockTypeValidation: {
		Prefix:       "Validate:",
		PromptPrefix: "First, validate the input:",
		Placeholder:  "check if input is valid...",
		Emoji:        "✅",
		BgColor:      gradient("green-600", "green-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-green-600",
	},
	domain.BlockTypeSafety: {
		Prefix:       "Safety:",
		PromptPrefix: "Adhere to safety guidelines:",
		Placeholder:  "avoid harmful content...",
		Emoji:        "🛡️",
		BgColor:      gradient("blue-700", "blue-800"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-blue-700",
	},
	domain.BlockTypeFactCheck: {
		Prefix:       "Verify:",
		PromptPrefix: "Verify all claims and cite sources:",
		Placeholder:  "check facts and cite sources...",
		Emoji:        "🔍",
		BgColor:      gradient("indigo-600", "indigo-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-indigo-600",
	},
	domain.BlockTypeUncertainty: {
		Prefix:       "If uncertain:",
		PromptPrefix: "If you are uncertain about any part of the answer, state your confidence level:",
		Placeholder:  "acknowledge limitations...",
		Emoji:        "❓",
		BgColor:      gradient("gray-500", "gray-600"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-gray-500",
	},
	domain.BlockTypeQuestion: {
		Prefix:       "Ask:",
		PromptPrefix: "Ask clarifying questions if needed:",
		Placeholder:  "what would you like to know?...",
		Emoji:        "❓",
		BgColor:      gradient("purple-600", "purple-700"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-purple-600",
	},
	domain.BlockTypeClarification: {
		Prefix:       "Clarify:",
		PromptPrefix: "Seek clarification on ambiguous points:",
		Placeholder:  "could you be more specific?...",
		Emoji:        "🤔",
		BgColor:      gradient("violet-600", "violet-700"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-violet-600",
	},
	domain.BlockTypeOptions: {
		Prefix:       "Options:",
		PromptPrefix: "Provide multiple options or approaches:",
		Placeholder:  "here are different approaches...",
		Emoji:        "🔀",
		BgColor:      gradient("emerald-600", "emerald-700"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-emerald-600",
	},
	domain.BlockTypeFollowUp: {
		Prefix:       "Next:",
		PromptPrefix: "Suggest next steps or follow-up questions:",
		Placeholder:  "would you like me to...",
		Emoji:        "➡️",
		BgColor:      gradient("teal-600", "teal-700"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-teal-600",
	},
	domain.BlockTypeCode: {
		Prefix:       "Code:",
		PromptPrefix: "Generate clean, well-commented code:",
		Placeholder:  "write clean, documented code...",
		Emoji:        "💻",
		BgColor:      gradient("slate-600", "slate-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-slate-600",
	},
	domain.BlockTypeCreative: {
		Prefix:       "Create:",
		PromptPrefix: "Be imaginative and engaging:",
		Placeholder:  "be imaginative and engaging...",
		Emoji:        "✍️",
		BgColor:      gradient("pink-600", "pink-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-pink-600",
	},
	domain.BlockTypeAnalysis: {
		Prefix:       "Analyze:",
		PromptPrefix: "Provide statistical insights and trends:",
		Placeholder:  "provide insights and trends...",
		Emoji:        "📊",
		BgColor:      gradient("blue-600", "blue-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-blue-600",
	},
	domain.BlockTypeResearch: {
		Prefix:       "Research:",
		PromptPrefix: "Approach this systematically with evidence:",
		Placeholder:  "approach systematically...",
		Emoji:        "🔬",
		BgColor:      gradient("indigo-700", "indigo-800"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-indigo-700",
	},
	domain.BlockTypeMetaPrompt: {
		Prefix:       "Meta:",
		PromptPrefix: "Improve this prompt to get better results:",
		Placeholder:  "improve this prompt...",
		Emoji:        "🔄",
		BgColor:      gradient("cyan-600", "cyan-700"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-cyan-600",
	},
	domain.BlockTypePerformance: {
		Prefix:       "Rate:",
		PromptPrefix: "Rate the quality of your response from 1-10:",
		Placeholder:  "evaluate your response...",
		Emoji:        "📈",
		BgColor:      gradient("green-700", "green-800"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-green-700",
	},
	domain.BlockTypeIteration: {
		Prefix:       "Iterate:",
		PromptPrefix: "Refine your answer based on this feedback:",
		Placeholder:  "refine based on feedback...",
		Emoji:        "🔁",
		BgColor:      gradient("yellow-600", "yellow-700"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-yellow-600",
	},
	domain.BlockTypeBenchmark: {
		Prefix:       "Compare:",
		PromptPrefix: "Benchmark your approach against industry best practices:",
		Placeholder:  "benchmark against best practices...",
		Emoji:        "🏆",
		BgColor:      gradient("amber-600", "amber-700"),
		TextColor:    "text-white",
		Shape:        shapeTab,
		GlowColor:    "bg-amber-600",
	},
	domain.BlockTypeIf: {
		Prefix:       "IF:",
		PromptPrefix: "IF the following condition is met:",
		Placeholder:  "input contains 'urgent'",
		Emoji:        "❓",
		BgColor:      gradient("orange-700", "red-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-orange-700",
	},
	domain.BlockTypeThen: {
		Prefix:       "THEN:",
		PromptPrefix: "THEN perform the following action:",
		Placeholder:  "summarize concisely",
		Emoji:        "✅",
		BgColor:      gradient("green-700", "teal-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-green-700",
	},
	domain.BlockTypeLoop: {
		Prefix:       "LOOP:",
		PromptPrefix: "REPEAT the following action:",
		Placeholder:  "for each item in the list",
		Emoji:        "🔄",
		BgColor:      gradient("purple-700", "indigo-700"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-purple-700",
	},
	domain.BlockTypeInject: {
		Prefix:       "INJECT:",
		PromptPrefix: "INJECT dynamic content here:",
		Placeholder:  "{{user_name}}",
		Emoji:        "💉",
		BgColor:      gradient("gray-700", "gray-800"),
		TextColor:    "text-white",
		Shape:        shapeRect,
		GlowColor:    "bg-gray-700",
	},
}
