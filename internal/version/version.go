// ABOUTME: Build version information shared by the CLI and MCP server.
// ABOUTME: Version is overridable at build time via -ldflags.
package version

// Version is the server version reported to MCP clients and the CLI.
var Version = "1.1.0"
