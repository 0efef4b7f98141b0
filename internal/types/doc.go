// Package types provides shared data structures for the apphub backend.
//
// This package defines the service-provider envelope used across all
// components: service definitions, tool specifications, execution context,
// and the standard operation result.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
package types
