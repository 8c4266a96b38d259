// Package config provides configuration management for keywhiz.
//
// Configuration is loaded from a YAML file and environment variables, with
// environment variables taking precedence. The source of each attribute is
// tracked so that "keywhizctl configuration show" can report where a value
// came from.
//
// # Configuration Sources
//
// In order of precedence (highest first):
//
//  1. Environment variables (KEYWHIZ_* prefix)
//  2. Config file (/etc/keywhiz/config/keywhiz.yml, or KEYWHIZ_CONFIG_PATH)
//  3. Built-in defaults
//
// # Attributes
//
//   - bind_address: admin API bind address
//   - port: admin API listen port
//   - log_level: process log level (debug, info, warn, error)
//   - api_list_limit_max: maximum results for listing requests
//   - acl_file: path to the declarative ACL seed file
//   - default_creator: recorded in audit columns for anonymous callers
//
// DATABASE_URL is deliberately env-only and handled by pkg/db; connection
// strings carry credentials and stay out of config files.
package config
