// Package utils provides common utility functions for the shelf-gateway application.
// It includes helper functions for coercing values out of loosely-typed API payloads
// and other shared logic that doesn't fit into domain-specific packages.
package utils
