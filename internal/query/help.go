package query

// HelpText is the fallback answer for questions that match no keyword.
const HelpText = `I can help you analyze your business data. Try asking:
• "What was the profit in May?"
• "Which month had highest sales?"
• "Give me business insights"
• "Show performance summary"
• "What are total expenses?"
• "How many customers on average?"`
