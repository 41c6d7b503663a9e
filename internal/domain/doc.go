// Package domain contains the core domain model for spacegen.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the filesystem, or any UI. Infra/adapters map into/from these types.
package domain
