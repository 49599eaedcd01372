// Package prompts builds the text prompts sent to the career intelligence
// model. Composition is pure string building; no I/O occurs here.
package prompts

// SystemPrompt is the persona and rule set sent as the system message on
// every analysis call.
var SystemPrompt = MustGet("system-persona")
