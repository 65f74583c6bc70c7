// Package config resolves run settings from a YAML file, environment
// variables and interactive prompts.
//
// The three backfill defaults (contributor, contact email, description) are
// resolved in two tiers. The caller tier is a command-line flag, else the
// config file, else a prompted answer. The environment tier is read from
// DATAVERSE_DEFAULT_AUTHOR, DATAVERSE_DEFAULT_EMAIL and
// DATAVERSE_DEFAULT_DESCRIPTION and is only consulted after the caller tier.
//
// Example config file:
//
//	defaults:
//	  contributor: Jane Doe
//	  contactEmail: jane@example.org
//	authority: "10.70122"
//	identifierPrefix: FK2/
//	sanitizeDescriptions: true
//	directory: fields.yaml
package config
