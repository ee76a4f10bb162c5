// Package authz gates bot access behind a configured user allow-list.
package authz
