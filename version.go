package solid

// Version is the semantic version of the module, reported by `solid version`
// and announced by the MCP server.
const Version = "0.4.1"
