// Package config loads and validates configuration for the post tooling.
//
// It uses Viper to read an optional YAML file, godotenv to load an optional
// .env file, and environment variables (with a prefix) to override both.
// Keys are dotted paths; the matching variable upper-cases the path and
// replaces dots with underscores, so posts.dir becomes NEXTPOST_POSTS_DIR.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("nextpost.yml"))
package config
