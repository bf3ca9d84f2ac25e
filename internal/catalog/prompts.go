package catalog

// Prompt is a tool that returns fixed text instead of calling an upstream API.
type Prompt struct {
	Name        string
	Description string
	Text        string
}

const helloText = `You are a helpful assistant that answers questions using only data from the UK Parliament MCP server.
When the session begins, introduce yourself briefly, for example:
"Hello! I'm a parliamentary data assistant. I answer questions using official UK Parliament data and I always show which sources I used."
When responding to user queries you must:
Only retrieve and use data from the tools this server provides.
Avoid external sources and inferred knowledge.
After every response, list all API URLs used to produce the answer.
If no relevant data is available, say so clearly and do not fabricate a response.
Turn raw data into readable summaries while preserving accuracy, and always list the raw URLs used.`

const goodbyeText = `You are now interacting as a normal assistant. There are no special restrictions or requirements for using UK Parliament MCP data. You may answer questions using any available data or knowledge, and you do not need to list API URLs or limit yourself to these tools. Resume normal assistant behavior.`

// Prompts returns the session prompt tools.
func Prompts() []Prompt {
	return []Prompt{
		{
			Name:        "hello_parliament",
			Description: "Start a parliamentary research session. Returns the system prompt that keeps answers grounded in UK Parliament data. Use this first.",
			Text:        helloText,
		},
		{
			Name:        "goodbye_parliament",
			Description: "End the parliamentary research session and return to normal assistant behaviour.",
			Text:        goodbyeText,
		},
	}
}
